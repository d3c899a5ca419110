package packs

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/noctale/noctale/internal/entities/catalog"
	"github.com/noctale/noctale/internal/entities/pack"
)

// DefaultSearchThreshold is the minimum similarity percentage a search
// candidate needs to be returned.
const DefaultSearchThreshold = 65

// entityOps abstracts over media and characters so resolution and
// search are written once.
type entityOps[T any] struct {
	fromPack   func(*pack.Manifest) []*T
	localID    func(*T) string
	setPackID  func(*T, string)
	aliases    func(*T) []string
	popularity func(*T) int
	byIDs      func(context.Context, []int) ([]*T, error)
	search     func(context.Context, string) ([]*T, error)
}

func mediaOps(o *orchestrator) entityOps[catalog.Media] {
	return entityOps[catalog.Media]{
		fromPack:   func(m *pack.Manifest) []*catalog.Media { return m.MediaEntries() },
		localID:    func(m *catalog.Media) string { return m.ID },
		setPackID:  func(m *catalog.Media, packID string) { m.PackID = packID },
		aliases:    func(m *catalog.Media) []string { return m.Title.Strings() },
		popularity: func(m *catalog.Media) int { return m.PopularityValue() },
		byIDs:      o.anilistClient.MediaByIDs,
		search:     o.anilistClient.SearchMedia,
	}
}

func characterOps(o *orchestrator) entityOps[catalog.Character] {
	return entityOps[catalog.Character]{
		fromPack:   func(m *pack.Manifest) []*catalog.Character { return m.CharacterEntries() },
		localID:    func(c *catalog.Character) string { return c.ID },
		setPackID:  func(c *catalog.Character, packID string) { c.PackID = packID },
		aliases:    func(c *catalog.Character) []string { return c.Name.Strings() },
		popularity: func(c *catalog.Character) int { return c.PopularityValue() },
		byIDs:      o.anilistClient.CharactersByIDs,
		search:     o.anilistClient.SearchCharacters,
	}
}

// findByID resolves a batch of compound ids against the external
// catalog and the guild's installed packs. Malformed, disabled, and
// unknown ids are dropped, never erred.
func findByID[T any](
	ctx context.Context,
	o *orchestrator,
	ops entityOps[T],
	guildID string,
	ids []string,
	defaultPackID string,
) (map[string]*T, error) {
	state, err := o.guild(ctx, guildID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(ids))
	var parsed []catalog.CompoundID
	var anilistIDs []int

	for _, literal := range ids {
		if state.disabled[literal] {
			continue
		}

		id, ok := catalog.ParseID(literal, defaultPackID)
		if !ok {
			continue
		}

		compound := id.String()
		if seen[compound] || state.disabled[compound] {
			continue
		}
		seen[compound] = true

		if id.Source == catalog.SourceAniList {
			n, err := strconv.Atoi(id.Local)
			if err != nil {
				continue
			}
			anilistIDs = append(anilistIDs, n)
			continue
		}
		parsed = append(parsed, id)
	}

	results := make(map[string]*T, len(seen))

	for _, id := range parsed {
		entity := packEntity(ops, state.packs, id)
		if entity != nil {
			results[id.String()] = entity
		}
	}

	if len(anilistIDs) > 0 {
		fetched, err := ops.byIDs(ctx, anilistIDs)
		if err != nil {
			return nil, err
		}
		for _, entity := range fetched {
			compound := catalog.SourceAniList + ":" + ops.localID(entity)
			results[compound] = entity
		}
	}

	return results, nil
}

// packEntity looks an id up in its declaring pack. The returned entity
// is a copy with its pack id stamped in, so shared builtin state is
// never mutated.
func packEntity[T any](ops entityOps[T], packs []*pack.Pack, id catalog.CompoundID) *T {
	for _, p := range packs {
		if p.Manifest.ID != id.Source {
			continue
		}
		for _, entity := range ops.fromPack(p.Manifest) {
			if ops.localID(entity) != id.Local {
				continue
			}
			clone := *entity
			ops.setPackID(&clone, id.Source)
			return &clone
		}
	}
	return nil
}

// searchMany ranks the external catalog's hit list plus every pack
// entity against the search string. Results are grouped by exact score
// descending, popularity descending within a group.
func searchMany[T any](
	ctx context.Context,
	o *orchestrator,
	ops entityOps[T],
	guildID string,
	search string,
	thresholdOverride *int,
) ([]*T, error) {
	threshold := DefaultSearchThreshold
	if thresholdOverride != nil {
		threshold = *thresholdOverride
	}

	state, err := o.guild(ctx, guildID)
	if err != nil {
		return nil, err
	}

	hits, err := ops.search(ctx, search)
	if err != nil {
		return nil, err
	}

	candidates := make([]*T, 0, len(hits))
	candidates = append(candidates, hits...)

	for _, p := range state.packs {
		for _, entity := range ops.fromPack(p.Manifest) {
			clone := *entity
			ops.setPackID(&clone, p.Manifest.ID)
			candidates = append(candidates, &clone)
		}
	}

	type scored struct {
		entity *T
		score  int
	}

	needle := strings.ToLower(search)
	var matches []scored

	for _, candidate := range candidates {
		compound := compoundOf(ops, candidate)
		if state.disabled[compound] {
			continue
		}

		aliases := ops.aliases(candidate)
		if len(aliases) == 0 {
			// short-circuit carried over from the previous iteration of
			// this search; a nameless entry voids the whole result set
			return nil, nil
		}

		score := 0
		for _, alias := range aliases {
			if s := similarityPercent(needle, strings.ToLower(alias)); s > score {
				score = s
			}
		}

		if score < threshold {
			continue
		}
		matches = append(matches, scored{entity: candidate, score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return ops.popularity(matches[i].entity) > ops.popularity(matches[j].entity)
	})

	out := make([]*T, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.entity)
	}
	return out, nil
}

func compoundOf[T any](ops entityOps[T], entity *T) string {
	// pack entities had their pack id stamped in when collected;
	// external hits arrive already tagged
	type packIDer interface{ CompoundID() catalog.CompoundID }
	if c, ok := any(entity).(packIDer); ok {
		return c.CompoundID().String()
	}
	return ""
}

func similarityPercent(a, b string) int {
	return int(math.Round(levenshtein.Similarity(a, b, nil) * 100))
}

func (o *orchestrator) Media(ctx context.Context, input *MediaInput) (*MediaOutput, error) {
	results, err := findByID(ctx, o, mediaOps(o), input.GuildID, input.IDs, input.DefaultPackID)
	if err != nil {
		return nil, err
	}
	return &MediaOutput{Media: results}, nil
}

func (o *orchestrator) Characters(ctx context.Context, input *CharactersInput) (*CharactersOutput, error) {
	results, err := findByID(ctx, o, characterOps(o), input.GuildID, input.IDs, input.DefaultPackID)
	if err != nil {
		return nil, err
	}
	return &CharactersOutput{Characters: results}, nil
}

func (o *orchestrator) SearchMedia(ctx context.Context, input *SearchInput) (*SearchMediaOutput, error) {
	results, err := searchMany(ctx, o, mediaOps(o), input.GuildID, input.Search, input.Threshold)
	if err != nil {
		return nil, err
	}
	return &SearchMediaOutput{Results: results}, nil
}

func (o *orchestrator) SearchCharacters(ctx context.Context, input *SearchInput) (*SearchCharactersOutput, error) {
	results, err := searchMany(ctx, o, characterOps(o), input.GuildID, input.Search, input.Threshold)
	if err != nil {
		return nil, err
	}
	return &SearchCharactersOutput{Results: results}, nil
}

func (o *orchestrator) SearchOneMedia(ctx context.Context, input *SearchInput) (*SearchOneMediaOutput, error) {
	results, err := searchMany(ctx, o, mediaOps(o), input.GuildID, input.Search, input.Threshold)
	if err != nil {
		return nil, err
	}

	out := &SearchOneMediaOutput{}
	if len(results) > 0 {
		out.Media = results[0]
	}
	return out, nil
}

func (o *orchestrator) SearchOneCharacter(ctx context.Context, input *SearchInput) (*SearchOneCharacterOutput, error) {
	results, err := searchMany(ctx, o, characterOps(o), input.GuildID, input.Search, input.Threshold)
	if err != nil {
		return nil, err
	}

	out := &SearchOneCharacterOutput{}
	if len(results) > 0 {
		out.Character = results[0]
	}
	return out, nil
}
