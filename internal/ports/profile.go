package ports

import (
	"context"

	"clrhost-cli/internal/domain"
)

// ProfileRepository persists named run profiles.
type ProfileRepository interface {
	Save(ctx context.Context, profile domain.Profile) error
	GetByName(ctx context.Context, name string) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
}
