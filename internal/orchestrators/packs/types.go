package packs

import (
	"encoding/json"

	"github.com/noctale/noctale/internal/entities/catalog"
	"github.com/noctale/noctale/internal/entities/pack"
)

// ListPacksInput defines the input for listing a guild's packs
type ListPacksInput struct {
	GuildID string
	// Type filters by provenance. Nil returns the default listing: the
	// vtubers builtin followed by the guild's community packs.
	Type *pack.Type
}

// ListPacksOutput defines the output for listing a guild's packs
type ListPacksOutput struct {
	Packs []*pack.Pack
}

// InstallInput defines the input for installing a community pack
type InstallInput struct {
	GuildID string
	// UserID is the installer, recorded on the pack.
	UserID string
	// Manifest is the raw candidate manifest document.
	Manifest json.RawMessage
}

// InstallOutput defines the output for installing a community pack
type InstallOutput struct {
	Pack *pack.Pack
}

// RemoveInput defines the input for removing a community pack
type RemoveInput struct {
	GuildID    string
	ManifestID string
}

// RemoveOutput defines the output for removing a community pack
type RemoveOutput struct {
	Pack *pack.Pack
}

// IsDisabledInput defines the input for a disabled-id check
type IsDisabledInput struct {
	GuildID string
	// ID is the compound id string to check.
	ID string
}

// IsDisabledOutput defines the output for a disabled-id check
type IsDisabledOutput struct {
	Disabled bool
}

// MediaInput defines the input for resolving media by id
type MediaInput struct {
	GuildID string
	IDs     []string
	// DefaultPackID qualifies bare local ids. Empty means bare ids are
	// dropped as malformed.
	DefaultPackID string
}

// MediaOutput defines the output for resolving media by id. The map
// only contains what was found.
type MediaOutput struct {
	Media map[string]*catalog.Media
}

// CharactersInput defines the input for resolving characters by id
type CharactersInput struct {
	GuildID       string
	IDs           []string
	DefaultPackID string
}

// CharactersOutput defines the output for resolving characters by id
type CharactersOutput struct {
	Characters map[string]*catalog.Character
}

// SearchInput defines the input for a fuzzy search
type SearchInput struct {
	GuildID string
	Search  string
	// Threshold is the minimum similarity percentage. Nil means the
	// default of 65; an explicit zero disables the cutoff.
	Threshold *int
}

// SearchMediaOutput defines the output for a fuzzy media search
type SearchMediaOutput struct {
	Results []*catalog.Media
}

// SearchCharactersOutput defines the output for a fuzzy character search
type SearchCharactersOutput struct {
	Results []*catalog.Character
}

// SearchOneMediaOutput defines the output for a single-result media search
type SearchOneMediaOutput struct {
	// Media is nil when nothing scored above the threshold.
	Media *catalog.Media
}

// SearchOneCharacterOutput defines the output for a single-result character search
type SearchOneCharacterOutput struct {
	Character *catalog.Character
}

// MediaCharactersInput defines the input for paging through a media
// entry's cast
type MediaCharactersInput struct {
	GuildID string
	// ID is the compound id of the media entry.
	ID string
	// Index is the zero-based position in the cast.
	Index int
}

// MediaCharactersOutput defines the output for one cast page
type MediaCharactersOutput struct {
	Media     *catalog.Media
	Character *catalog.Character
	Role      catalog.CharacterRole
	Total     int
	Next      bool
}

// AggregateMediaInput defines the input for aggregating a media entry
type AggregateMediaInput struct {
	GuildID string
	Media   *catalog.Media
	// Start and End window the relation lists. Nil Start means 0, nil
	// End means everything from Start on.
	Start *int
	End   *int
}

// AggregateMediaOutput defines the output for aggregating a media entry
type AggregateMediaOutput struct {
	Media *catalog.Media
}

// AggregateCharacterInput defines the input for aggregating a character
type AggregateCharacterInput struct {
	GuildID   string
	Character *catalog.Character
	Start     *int
	End       *int
}

// AggregateCharacterOutput defines the output for aggregating a character
type AggregateCharacterOutput struct {
	Character *catalog.Character
}
