// Package catalog defines the content model shared by every source of
// characters and media: the external AniList catalog, community packs,
// and the builtin packs bundled with the binary.
package catalog

// SourceAniList is the reserved source name for the external catalog.
// Ids under this source resolve through the live API, never through an
// installed pack.
const SourceAniList = "anilist"

// MediaType distinguishes the two top-level catalog categories.
type MediaType string

// Media types
const (
	MediaTypeAnime MediaType = "ANIME"
	MediaTypeManga MediaType = "MANGA"
)

// MediaFormat is the release format of a media entry.
type MediaFormat string

// Media formats
const (
	FormatTV       MediaFormat = "TV"
	FormatTVShort  MediaFormat = "TV_SHORT"
	FormatMovie    MediaFormat = "MOVIE"
	FormatSpecial  MediaFormat = "SPECIAL"
	FormatOVA      MediaFormat = "OVA"
	FormatONA      MediaFormat = "ONA"
	FormatMusic    MediaFormat = "MUSIC"
	FormatManga    MediaFormat = "MANGA"
	FormatNovel    MediaFormat = "NOVEL"
	FormatOneShot  MediaFormat = "ONE_SHOT"
	FormatInternet MediaFormat = "INTERNET"
)

// MediaRelation tags an edge between two media entries.
type MediaRelation string

// Media relations
const (
	RelationAdaptation MediaRelation = "ADAPTATION"
	RelationPrequel    MediaRelation = "PREQUEL"
	RelationSequel     MediaRelation = "SEQUEL"
	RelationParent     MediaRelation = "PARENT"
	RelationContains   MediaRelation = "CONTAINS"
	RelationSideStory  MediaRelation = "SIDE_STORY"
	RelationSpinOff    MediaRelation = "SPIN_OFF"
	RelationOther      MediaRelation = "OTHER"
)

// CharacterRole is a character's billing within a media entry.
type CharacterRole string

// Character roles
const (
	RoleMain       CharacterRole = "MAIN"
	RoleSupporting CharacterRole = "SUPPORTING"
	RoleBackground CharacterRole = "BACKGROUND"
)

// Alias is the multi-locale name set of a media title or character name.
type Alias struct {
	English     string   `json:"english,omitempty"`
	Romaji      string   `json:"romaji,omitempty"`
	Native      string   `json:"native,omitempty"`
	Alternative []string `json:"alternative,omitempty"`
}

// Strings returns the distinct non-empty aliases, preferred locale first.
func (a Alias) Strings() []string {
	candidates := append([]string{a.English, a.Romaji, a.Native}, a.Alternative...)

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, s := range candidates {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Image is a hosted artwork reference.
type Image struct {
	URL    string `json:"url"`
	Artist string `json:"artist,omitempty"`
	Color  string `json:"color,omitempty"`
}

// MediaRef is a disaggregated media-to-media relation.
type MediaRef struct {
	Relation MediaRelation `json:"relation"`
	MediaID  string        `json:"mediaId"`
}

// CharacterRef is a disaggregated media-to-character relation.
type CharacterRef struct {
	Role        CharacterRole `json:"role"`
	CharacterID string        `json:"characterId"`
}

// CharacterMediaRef is a disaggregated character-to-media relation.
type CharacterMediaRef struct {
	Role    CharacterRole `json:"role"`
	MediaID string        `json:"mediaId"`
}

// MediaEdge is a resolved media-to-media relation.
type MediaEdge struct {
	Relation MediaRelation `json:"relation"`
	Node     *Media        `json:"node"`
}

// CharacterEdge is a resolved media-to-character relation.
type CharacterEdge struct {
	Role CharacterRole `json:"role"`
	Node *Character    `json:"node"`
}

// CharacterMediaEdge is a resolved character-to-media relation.
type CharacterMediaEdge struct {
	Role CharacterRole `json:"role"`
	Node *Media        `json:"node"`
}

// Relation list instantiations. Aliased so callers never spell out the
// type parameters.
type (
	// MediaRelationList relates a media entry to other media.
	MediaRelationList = EdgeList[MediaRef, MediaEdge]
	// MediaCharacterList relates a media entry to its characters.
	MediaCharacterList = EdgeList[CharacterRef, CharacterEdge]
	// CharacterMediaList relates a character to its media appearances.
	CharacterMediaList = EdgeList[CharacterMediaRef, CharacterMediaEdge]
)

// Media is a single catalog media entry. Relations and Characters are
// nil when the entry has none.
type Media struct {
	ID          string              `json:"id"`
	PackID      string              `json:"packId,omitempty"`
	Type        MediaType           `json:"type,omitempty"`
	Format      MediaFormat         `json:"format,omitempty"`
	Title       Alias               `json:"title"`
	Description string              `json:"description,omitempty"`
	Popularity  *int                `json:"popularity,omitempty"`
	Image       *Image              `json:"image,omitempty"`
	Relations   *MediaRelationList  `json:"relations,omitempty"`
	Characters  *MediaCharacterList `json:"characters,omitempty"`
}

// CompoundID returns the media's full source-qualified id.
func (m *Media) CompoundID() CompoundID {
	return CompoundID{Source: m.PackID, Local: m.ID}
}

// PopularityValue returns the popularity, or 0 when unknown.
func (m *Media) PopularityValue() int {
	if m.Popularity == nil {
		return 0
	}
	return *m.Popularity
}

// Character is a single catalog character entry.
type Character struct {
	ID          string              `json:"id"`
	PackID      string              `json:"packId,omitempty"`
	Name        Alias               `json:"name"`
	Description string              `json:"description,omitempty"`
	Popularity  *int                `json:"popularity,omitempty"`
	Gender      string              `json:"gender,omitempty"`
	Age         string              `json:"age,omitempty"`
	Image       *Image              `json:"image,omitempty"`
	Media       *CharacterMediaList `json:"media,omitempty"`
}

// CompoundID returns the character's full source-qualified id.
func (c *Character) CompoundID() CompoundID {
	return CompoundID{Source: c.PackID, Local: c.ID}
}

// PopularityValue returns the popularity, or 0 when unknown.
func (c *Character) PopularityValue() int {
	if c.Popularity == nil {
		return 0
	}
	return *c.Popularity
}
