package service

import "github.com/pageza/alchemorsel-chat/backend/internal/model"

// RecommendedRecipeID is the recipe attached to canned chat replies.
const RecommendedRecipeID = 1

// DefaultRecipes returns a fresh copy of the built-in recipe table.
func DefaultRecipes() []model.Recipe {
	return []model.Recipe{
		{
			ID:          1,
			Name:        "토마토 파스타",
			Description: "신선한 토마토와 바질로 만든 파스타",
			Ingredients: model.Ingredients{
				{Name: "스파게티 면", Amount: "200", Unit: "g"},
				{Name: "토마토", Amount: "3", Unit: "개"},
				{Name: "바질", Amount: "10", Unit: "장"},
				{Name: "올리브 오일", Amount: "2", Unit: "큰술"},
				{Name: "마늘", Amount: "3", Unit: "쪽"},
				{Name: "소금", Amount: "1", Unit: "작은술"},
			},
			Instructions: model.Instructions{
				{Step: 1, Instruction: "물을 끓인 후 소금을 넣고 스파게티를 삶는다", CookingTime: 8},
				{Step: 2, Instruction: "팬에 올리브 오일을 두르고 마늘을 볶는다", CookingTime: 2},
				{Step: 3, Instruction: "토마토를 넣고 소스를 만든다", CookingTime: 5},
				{Step: 4, Instruction: "삶은 면을 소스에 넣고 바질을 올린다", CookingTime: 2},
			},
			TotalTime:  17,
			Difficulty: "쉬움",
			Servings:   2,
		},
		{
			ID:          2,
			Name:        "김치찌개",
			Description: "맛있는 한국 전통 김치찌개",
			Ingredients: model.Ingredients{
				{Name: "김치", Amount: "300", Unit: "g"},
				{Name: "돼지고기", Amount: "200", Unit: "g"},
				{Name: "두부", Amount: "1/2", Unit: "모"},
				{Name: "대파", Amount: "1", Unit: "대"},
				{Name: "고춧가루", Amount: "1", Unit: "큰술"},
				{Name: "참기름", Amount: "1", Unit: "큰술"},
			},
			Instructions: model.Instructions{
				{Step: 1, Instruction: "냄비에 참기름을 두르고 돼지고기를 볶는다", CookingTime: 5},
				{Step: 2, Instruction: "김치를 넣고 같이 볶는다", CookingTime: 3},
				{Step: 3, Instruction: "물을 넣고 끓인다", CookingTime: 10},
				{Step: 4, Instruction: "두부와 대파를 넣고 마무리한다", CookingTime: 5},
			},
			TotalTime:  23,
			Difficulty: "보통",
			Servings:   2,
		},
	}
}

// DefaultNutrition returns a fresh copy of the built-in nutrition table.
func DefaultNutrition() []model.NutritionInfo {
	return []model.NutritionInfo{
		{
			RecipeID:     1,
			Calories:     450.5,
			Carbohydrate: 65.3,
			Protein:      12.8,
			Fat:          10.5,
			Sugar:        4.2,
			Sodium:       420.0,
			SaturatedFat: 2.1,
			TransFat:     0.0,
			Cholesterol:  15.0,
			DietaryFiber: f64(4.5),
			Potassium:    f64(520.0),
			VitaminA:     f64(85.0),
			VitaminC:     f64(18.5),
			Calcium:      f64(45.0),
			Iron:         f64(2.8),
		},
		{
			RecipeID:     2,
			Calories:     320.0,
			Carbohydrate: 15.6,
			Protein:      22.4,
			Fat:          15.8,
			Sugar:        3.5,
			Sodium:       950.0,
			SaturatedFat: 5.2,
			TransFat:     0.1,
			Cholesterol:  45.0,
		},
	}
}

func f64(v float64) *float64 { return &v }
