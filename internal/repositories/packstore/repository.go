// Package packstore defines the interface for per-guild pack persistence
package packstore

//go:generate mockgen -destination=mock/mock_repository.go -package=packstoremock github.com/noctale/noctale/internal/repositories/packstore Repository

import (
	"context"

	"github.com/noctale/noctale/internal/entities/pack"
)

// Repository defines the interface for community pack persistence.
// Builtin packs never pass through here.
type Repository interface {
	// GetGuildPacks retrieves a guild's installed packs in install order
	// Returns errors.InvalidArgument for empty guild IDs
	// Returns errors.Internal for storage failures
	GetGuildPacks(ctx context.Context, input GetGuildPacksInput) (*GetGuildPacksOutput, error)

	// Install persists a pack for a guild. Reinstalling the same
	// manifest id replaces the stored manifest in place.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Install(ctx context.Context, input InstallInput) (*InstallOutput, error)

	// Remove deletes an installed pack by manifest id
	// Returns errors.NotFound if the pack is not installed
	// Returns errors.Internal for storage failures
	Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error)
}

// GetGuildPacksInput defines the input for listing a guild's packs
type GetGuildPacksInput struct {
	GuildID string
}

// GetGuildPacksOutput defines the output for listing a guild's packs
type GetGuildPacksOutput struct {
	Packs []*pack.Pack
}

// InstallInput defines the input for installing a pack
type InstallInput struct {
	GuildID string
	Pack    *pack.Pack
}

// InstallOutput defines the output for installing a pack
type InstallOutput struct {
	Pack *pack.Pack
}

// RemoveInput defines the input for removing a pack
type RemoveInput struct {
	GuildID    string
	ManifestID string
}

// RemoveOutput defines the output for removing a pack
type RemoveOutput struct {
	Pack *pack.Pack
}
