package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/alchemorsel-chat/backend/internal/logging"
	"github.com/pageza/alchemorsel-chat/backend/internal/mocks"
	"github.com/pageza/alchemorsel-chat/backend/internal/service"
)

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestGetRecipe(t *testing.T) {
	env := SetupTestEnv(t, service.FixedResponder{})

	for _, recipe := range service.DefaultRecipes() {
		expected, err := json.Marshal(recipe)
		require.NoError(t, err)

		w := get(env.Router, "/api/recipe/"+strconv.Itoa(recipe.ID))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, string(expected), w.Body.String())
	}

	var body map[string]interface{}
	w := get(env.Router, "/api/recipe/1")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body, "id")
	assert.EqualValues(t, 17, body["totalTime"])
}

func TestGetRecipeNotFound(t *testing.T) {
	env := SetupTestEnv(t, service.FixedResponder{})

	for _, path := range []string{"/api/recipe/3", "/api/recipe/0", "/api/recipe/999"} {
		w := get(env.Router, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"error":"Recipe not found"}`, w.Body.String(), path)
	}
}

func TestLookupRejectsNonIntegerIDs(t *testing.T) {
	env := SetupTestEnv(t, service.FixedResponder{})

	paths := []string{
		"/api/recipe/abc",
		"/api/recipe/-1",
		"/api/recipe/1.5",
		"/api/recipe/99999999999999999999999",
		"/api/nutrition/abc",
		"/api/nutrition/%201",
	}
	for _, path := range paths {
		w := get(env.Router, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String(), path)
	}
}

func TestGetNutrition(t *testing.T) {
	env := SetupTestEnv(t, service.FixedResponder{})

	w := get(env.Router, "/api/nutrition/1")
	require.Equal(t, http.StatusOK, w.Code)

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, 450.5, first["calories"])
	assert.Equal(t, 0.0, first["transFat"])
	assert.Equal(t, 4.5, first["dietaryFiber"])
	assert.NotContains(t, first, "recipeId")

	w = get(env.Router, "/api/nutrition/2")
	require.Equal(t, http.StatusOK, w.Code)

	var second map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, 320.0, second["calories"])
	assert.Equal(t, 950.0, second["sodium"])
	assert.NotContains(t, second, "dietaryFiber")
	assert.NotContains(t, second, "iron")
	assert.Len(t, second, 9)
}

func TestGetNutritionNotFound(t *testing.T) {
	env := SetupTestEnv(t, service.FixedResponder{})

	w := get(env.Router, "/api/nutrition/3")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Nutrition data not found"}`, w.Body.String())
}

func TestLookupStoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := logging.Discard()
	catalog := new(mocks.MockCatalogService)
	catalog.On("GetRecipe", mock.Anything, 1).Return(nil, errors.New("catalog unavailable"))
	catalog.On("GetNutrition", mock.Anything, 1).Return(nil, errors.New("catalog unavailable"))

	router := gin.New()
	group := router.Group("/api")
	NewRecipeHandler(catalog, logger).RegisterRoutes(group)
	NewNutritionHandler(catalog, logger).RegisterRoutes(group)

	for _, path := range []string{"/api/recipe/1", "/api/nutrition/1"} {
		w := get(router, path)
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.JSONEq(t, `{"error":"catalog unavailable"}`, w.Body.String(), path)
	}
	catalog.AssertExpectations(t)
}
