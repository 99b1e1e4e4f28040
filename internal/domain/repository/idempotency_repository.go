package repository

import (
	"context"

	"github.com/dmelo/assistech-api/internal/domain/entity"
	"github.com/google/uuid"
)

// IdempotencyRepository defines idempotency key data access
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
