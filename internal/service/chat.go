package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/pageza/alchemorsel-chat/backend/internal/types"
)

// Reply is the text chosen for a message plus an optional recipe to attach.
type Reply struct {
	Message  string
	RecipeID *int
}

// FixedResponder ignores the message and always recommends the same recipe.
type FixedResponder struct{}

// FixedReplyMessage is the text sent with every fixed reply.
const FixedReplyMessage = "오늘의 추천 요리는 토마토 파스타입니다! 신선한 토마토와 바질만 있으면 20분 안에 완성할 수 있어요. 아래 레시피를 참고해 보세요."

// Reply implements Responder
func (FixedResponder) Reply(message, username string) Reply {
	id := RecommendedRecipeID
	return Reply{Message: FixedReplyMessage, RecipeID: &id}
}

var cookingTips = []string{
	"이 레시피는 매우 맛있어 보이네요! 소금을 조금 더 넣어보세요.",
	"이 요리에는 올리브 오일을 사용하는 것이 좋을 것 같아요.",
	"요리 시간을 5분 정도 더 늘리면 더 맛있어질 것 같습니다.",
	"재료의 신선도가 매우 중요해요. 신선한 재료를 사용하세요.",
	"이 요리와 잘 어울리는 와인은 화이트 와인입니다.",
	"조리 온도를 조금 낮추고 시간을 늘리는 것이 좋을 것 같아요.",
	"이 레시피에 마늘을 추가하면 풍미가 더 좋아질 것 같아요.",
	"다음에는 허브를 조금 더 넣어보세요. 향이 더 풍부해질 거예요.",
	"이 요리는 저온에서 오래 조리하는 것이 핵심입니다.",
	"이 요리와 함께 제공할 수 있는 좋은 사이드 메뉴는 구운 야채입니다.",
}

// KeywordResponder answers greetings, recipe questions and recommendation
// requests by keyword, and falls back to a random cooking tip.
type KeywordResponder struct {
	intn func(n int) int
}

// NewKeywordResponder creates a keyword responder. A nil intn uses math/rand.
func NewKeywordResponder(intn func(n int) int) *KeywordResponder {
	if intn == nil {
		intn = rand.IntN
	}
	return &KeywordResponder{intn: intn}
}

// Reply implements Responder. Keywords are checked in order: greeting, recipe, recommend.
func (r *KeywordResponder) Reply(message, username string) Reply {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(message, "안녕") || strings.Contains(lower, "hello"):
		return Reply{Message: fmt.Sprintf("안녕하세요, %s님! 어떤 요리에 대해 알고 싶으신가요?", username)}
	case strings.Contains(message, "레시피") || strings.Contains(lower, "recipe"):
		return Reply{Message: "어떤 요리의 레시피가 필요하신가요? 재료와 함께 물어봐주세요."}
	case strings.Contains(message, "추천") || strings.Contains(lower, "recommend"):
		id := RecommendedRecipeID
		return Reply{Message: "오늘은 토마토 파스타를 추천드립니다. 신선한 토마토와 바질이 필요합니다.", RecipeID: &id}
	default:
		return Reply{Message: cookingTips[r.intn(len(cookingTips))]}
	}
}

// ChatService builds chat replies and stores any attached image
type ChatService struct {
	responder Responder
	catalog   ICatalogService
	uploads   IUploadStore
	logger    *slog.Logger
}

// NewChatService creates a new ChatService instance
func NewChatService(responder Responder, catalog ICatalogService, uploads IUploadStore, logger *slog.Logger) *ChatService {
	return &ChatService{
		responder: responder,
		catalog:   catalog,
		uploads:   uploads,
		logger:    logger,
	}
}

// Respond stores the attached image, if any, and returns the assistant's reply
func (s *ChatService) Respond(ctx context.Context, req *types.ChatRequest) (*types.ChatResponse, error) {
	resp := &types.ChatResponse{Username: types.AssistantName}

	if req.Image != nil && req.Image.Filename != "" {
		url, err := s.storeImage(ctx, req.Image)
		if err != nil {
			return nil, err
		}
		resp.ImageURL = &url
	}

	reply := s.responder.Reply(req.Message, req.Username)
	resp.Message = reply.Message

	if reply.RecipeID != nil {
		recipe, err := s.catalog.GetRecipe(ctx, *reply.RecipeID)
		if err != nil {
			return nil, fmt.Errorf("failed to load recommended recipe %d: %w", *reply.RecipeID, err)
		}
		resp.RecipeID = reply.RecipeID
		resp.Recipe = recipe
	}

	s.logger.DebugContext(ctx, "chat reply built",
		"username", req.Username,
		"recipeId", reply.RecipeID,
		"imageUrl", resp.ImageURL,
	)
	return resp, nil
}

func (s *ChatService) storeImage(ctx context.Context, img *types.ImageUpload) (string, error) {
	filename := SanitizeFilename(img.Filename)
	if filename == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, img.Filename)
	}
	if err := s.uploads.Save(ctx, filename, img.Content, img.ContentType); err != nil {
		return "", fmt.Errorf("failed to store image %s: %w", filename, err)
	}
	s.logger.DebugContext(ctx, "image stored", "filename", filename)
	return UploadURL(filename), nil
}
