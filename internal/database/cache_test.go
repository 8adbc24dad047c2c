package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pageza/alchemorsel-chat/backend/internal/logging"
	"github.com/pageza/alchemorsel-chat/backend/internal/model"
	"github.com/pageza/alchemorsel-chat/backend/internal/service"
)

// countingCatalog records how often the wrapped catalog is consulted
type countingCatalog struct {
	service.ICatalogService
	recipeCalls    int
	nutritionCalls int
}

func (c *countingCatalog) GetRecipe(ctx context.Context, id int) (*model.Recipe, error) {
	c.recipeCalls++
	return c.ICatalogService.GetRecipe(ctx, id)
}

func (c *countingCatalog) GetNutrition(ctx context.Context, id int) (*model.NutritionInfo, error) {
	c.nutritionCalls++
	return c.ICatalogService.GetNutrition(ctx, id)
}

func TestCachedCatalogFallsThroughWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	defer client.Close()

	next := &countingCatalog{ICatalogService: service.NewStaticCatalog()}
	catalog := NewCachedCatalog(next, client, time.Minute, logging.Discard())

	recipe, err := catalog.GetRecipe(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "토마토 파스타", recipe.Name)

	_, err = catalog.GetNutrition(context.Background(), 5)
	assert.ErrorIs(t, err, service.ErrNutritionNotFound)
}

func TestCachedCatalogWithRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	defer client.Close()

	next := &countingCatalog{ICatalogService: service.NewStaticCatalog()}
	catalog := NewCachedCatalog(next, client, time.Minute, logging.Discard())

	for i := 0; i < 3; i++ {
		recipe, err := catalog.GetRecipe(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "김치찌개", recipe.Name)
		assert.Equal(t, 2, recipe.ID)

		info, err := catalog.GetNutrition(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, info.DietaryFiber)
		assert.Equal(t, 4.5, *info.DietaryFiber)
	}
	assert.Equal(t, 1, next.recipeCalls)
	assert.Equal(t, 1, next.nutritionCalls)

	ttl, err := client.TTL(ctx, "alchemorsel:catalog:recipe:2").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	// misses are not cached
	_, err = catalog.GetRecipe(ctx, 9)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
	_, err = catalog.GetRecipe(ctx, 9)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
	assert.Equal(t, 3, next.recipeCalls)
}
