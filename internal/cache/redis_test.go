package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"libraryapi/internal/config"
)

func TestNewRedis_RequiresAddr(t *testing.T) {
	r, err := NewRedis(context.Background(), config.RedisConfig{}, zap.NewNop())

	assert.Error(t, err)
	assert.Nil(t, r)
}

func TestRedis_DeleteNoKeys(t *testing.T) {
	r := &Redis{}

	assert.NoError(t, r.Delete(context.Background()))
}

func TestNewRedis_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	r, err := NewRedis(ctx, config.RedisConfig{Addr: "127.0.0.1:1"}, zap.NewNop())

	assert.ErrorContains(t, err, "failed to ping redis")
	assert.Nil(t, r)
}
