// Package inventory defines the interface for per-guild character ownership
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/noctale/noctale/internal/repositories/inventory Repository

import (
	"context"
	"time"
)

// CharacterRecord is one owned character row.
type CharacterRecord struct {
	GuildID     string    `json:"guildId"`
	UserID      string    `json:"userId"`
	CharacterID string    `json:"characterId"`
	MediaID     string    `json:"mediaId"`
	Rating      int       `json:"rating"`
	Guaranteed  bool      `json:"guaranteed,omitempty"`
	Sacrifices  []string  `json:"sacrifices,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Repository defines the interface for inventory persistence. It is
// the sole arbiter of pull write concurrency.
type Repository interface {
	// AddCharacter inserts an owned character row atomically
	// Returns errors.AlreadyExists when the row already exists
	// Returns errors.Aborted on a write conflict, retryable
	// Returns errors.Internal for storage failures
	AddCharacter(ctx context.Context, input AddCharacterInput) (*AddCharacterOutput, error)

	// GetActiveUsersIfLiked returns the ids of recently active users who
	// like the character or any of the listed media
	GetActiveUsersIfLiked(ctx context.Context, input GetActiveUsersIfLikedInput) (*GetActiveUsersIfLikedOutput, error)

	// Like marks a character or media id as liked by a user
	Like(ctx context.Context, input LikeInput) (*LikeOutput, error)

	// Unlike removes a like
	Unlike(ctx context.Context, input LikeInput) (*LikeOutput, error)
}

// AddCharacterInput defines the input for inserting an owned character
type AddCharacterInput struct {
	GuildID     string
	UserID      string
	CharacterID string
	MediaID     string
	Rating      int
	Guaranteed  bool
	Sacrifices  []string
}

// AddCharacterOutput defines the output for inserting an owned character
type AddCharacterOutput struct {
	Record *CharacterRecord
}

// GetActiveUsersIfLikedInput defines the input for the like lookup
type GetActiveUsersIfLikedInput struct {
	GuildID     string
	CharacterID string
	MediaIDs    []string
}

// GetActiveUsersIfLikedOutput defines the output for the like lookup
type GetActiveUsersIfLikedOutput struct {
	UserIDs []string
}

// LikeTarget distinguishes what a like points at
type LikeTarget string

// Like targets
const (
	LikeTargetCharacter LikeTarget = "character"
	LikeTargetMedia     LikeTarget = "media"
)

// LikeInput defines the input for adding or removing a like
type LikeInput struct {
	GuildID  string
	UserID   string
	Target   LikeTarget
	TargetID string
}

// LikeOutput defines the output for adding or removing a like
type LikeOutput struct {
	// Empty for now, can be extended later
}
