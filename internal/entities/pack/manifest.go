// Package pack defines content manifests and their installed form.
package pack

import (
	"github.com/noctale/noctale/internal/entities/catalog"
)

// Type is a pack's provenance.
type Type string

// Pack types
const (
	// TypeBuiltin packs are bundled with the binary and exist for the
	// process lifetime.
	TypeBuiltin Type = "builtin"
	// TypeCommunity packs are installed per guild through the pack store.
	TypeCommunity Type = "community"
)

// ManifestMedia is the media section of a manifest.
type ManifestMedia struct {
	// New holds the disaggregated media entries this pack contributes.
	New []*catalog.Media `json:"new,omitempty"`
	// Conflicts lists compound ids this pack disables when installed.
	Conflicts []string `json:"conflicts,omitempty"`
}

// ManifestCharacters is the characters section of a manifest.
type ManifestCharacters struct {
	New       []*catalog.Character `json:"new,omitempty"`
	Conflicts []string             `json:"conflicts,omitempty"`
}

// Manifest is a named bundle of content plus its conflict and dependency
// metadata.
type Manifest struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	Image       string `json:"image,omitempty"`
	URL         string `json:"url,omitempty"`
	NSFW        bool   `json:"nsfw,omitempty"`

	Media      *ManifestMedia      `json:"media,omitempty"`
	Characters *ManifestCharacters `json:"characters,omitempty"`

	// Conflicts lists manifest ids this pack cannot coexist with.
	Conflicts []string `json:"conflicts,omitempty"`
	// Depends lists manifest ids that must be installed first.
	Depends []string `json:"depends,omitempty"`
}

// MediaEntries returns the manifest's media list, nil-safe.
func (m *Manifest) MediaEntries() []*catalog.Media {
	if m.Media == nil {
		return nil
	}
	return m.Media.New
}

// CharacterEntries returns the manifest's character list, nil-safe.
func (m *Manifest) CharacterEntries() []*catalog.Character {
	if m.Characters == nil {
		return nil
	}
	return m.Characters.New
}

// DisabledIDs returns every compound id this manifest disables.
func (m *Manifest) DisabledIDs() []string {
	var out []string
	if m.Media != nil {
		out = append(out, m.Media.Conflicts...)
	}
	if m.Characters != nil {
		out = append(out, m.Characters.Conflicts...)
	}
	return out
}

// Pack is an installed manifest with its provenance.
type Pack struct {
	Manifest    *Manifest `json:"manifest"`
	Type        Type      `json:"type"`
	InstalledBy string    `json:"installedBy,omitempty"`
}
