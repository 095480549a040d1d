package settings

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, username string) (Settings, error)
	Save(ctx context.Context, s Settings) error
	Delete(ctx context.Context, username string) error
}
