package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error

	// SetAll writes every pair or none of them.
	SetAll(ctx context.Context, values map[string][]byte) error

	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
