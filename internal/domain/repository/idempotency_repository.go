package repository

import (
	"context"

	"github.com/sandrok/posify-api/internal/domain/entity"
)

// IdempotencyRepository stores idempotency keys for replay-safe endpoints
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
