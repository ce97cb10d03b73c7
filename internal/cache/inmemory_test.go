package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/contractorpro/contractorpro/internal/config"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryCacheDeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	cfg := config.GetDefaultConfig()
	cfg.Cache.Enabled = true
	c := NewInMemoryCache(cfg, logger.NewNoopLogger())

	c.Set(ctx, GenerateKey(PrefixInventorySummary, "user_1"), 1, DefaultExpiration)
	c.Set(ctx, GenerateKey(PrefixInventorySummary, "user_2"), 2, DefaultExpiration)
	c.Set(ctx, GenerateKey(PrefixCarbonSummary, "user_1", "proj_1"), 3, DefaultExpiration)

	c.DeleteByPrefix(ctx, GenerateKey(PrefixInventorySummary, "user_1"))

	_, ok := c.Get(ctx, GenerateKey(PrefixInventorySummary, "user_1"))
	assert.False(t, ok)
	v, ok := c.Get(ctx, GenerateKey(PrefixInventorySummary, "user_2"))
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = c.Get(ctx, GenerateKey(PrefixCarbonSummary, "user_1", "proj_1"))
	assert.True(t, ok)
}

func TestInMemoryCacheDisabled(t *testing.T) {
	ctx := context.Background()
	cfg := config.GetDefaultConfig()
	cfg.Cache.Enabled = false
	c := NewInMemoryCache(cfg, logger.NewNoopLogger())

	c.Set(ctx, "k", "v", DefaultExpiration)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestGenerateKey(t *testing.T) {
	assert.Equal(t, "carbon_summary:v1::user_1:proj_1", GenerateKey(PrefixCarbonSummary, "user_1", "proj_1"))
}

func TestKeyPrefixesDoNotOverlap(t *testing.T) {
	prefixes := []string{PrefixInventorySummary, PrefixCarbonSummary}
	for i, a := range prefixes {
		assert.True(t, strings.HasSuffix(a, ":v1:"), a)
		for j, b := range prefixes {
			if i != j {
				assert.False(t, strings.HasPrefix(a, b), "%s shadows %s", b, a)
			}
		}
	}
}
