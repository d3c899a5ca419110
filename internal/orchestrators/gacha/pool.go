package gacha

import (
	"context"

	"github.com/noctale/noctale/internal/entities/catalog"
	"github.com/noctale/noctale/internal/orchestrators/packs"
	"github.com/noctale/noctale/internal/rating"
	"github.com/noctale/noctale/internal/search"
)

// The weighted tables steering a normal pull. Whether a draw lands on
// the near or far end of a range is uniform within it.
var rangeTable = WeightedTable[search.Range]{
	{Chance: 65, Value: rangeBetween(rating.LowestPopularity, 50_000)},
	{Chance: 22, Value: rangeBetween(50_000, 100_000)},
	{Chance: 9, Value: rangeBetween(100_000, 200_000)},
	{Chance: 3, Value: rangeBetween(200_000, 400_000)},
	{Chance: 1, Value: search.Range{Lower: 400_000}},
}

var roleTable = WeightedTable[catalog.CharacterRole]{
	{Chance: 10, Value: catalog.RoleMain},
	{Chance: 70, Value: catalog.RoleSupporting},
	{Chance: 20, Value: catalog.RoleBackground},
}

// Boosted variants for special events.
var boostedRangeTable = WeightedTable[search.Range]{
	{Chance: 20, Value: rangeBetween(rating.LowestPopularity, 50_000)},
	{Chance: 40, Value: rangeBetween(50_000, 100_000)},
	{Chance: 25, Value: rangeBetween(100_000, 200_000)},
	{Chance: 10, Value: rangeBetween(200_000, 400_000)},
	{Chance: 5, Value: search.Range{Lower: 400_000}},
}

var boostedRoleTable = WeightedTable[catalog.CharacterRole]{
	{Chance: 35, Value: catalog.RoleMain},
	{Chance: 65, Value: catalog.RoleSupporting},
	{Chance: 0, Value: catalog.RoleBackground},
}

func rangeBetween(lower, upper int) search.Range {
	return search.Range{Lower: lower, Upper: &upper}
}

// candidatePool is a drawn pool plus the predicate correcting it. Pack
// characters enter the range pool unfiltered, so validate is the
// authority on eligibility.
type candidatePool struct {
	entries  []search.Entry
	validate func(*catalog.Character) bool
}

func passAll(*catalog.Character) bool { return true }

// packEntries lists every character of every installed pack as a bare
// candidate id, regardless of the chosen range or role.
func (o *orchestrator) packEntries(ctx context.Context, guildID string) ([]search.Entry, error) {
	out, err := o.packsService.ListPacks(ctx, &packs.ListPacksInput{GuildID: guildID})
	if err != nil {
		return nil, err
	}

	var entries []search.Entry
	for _, p := range out.Packs {
		for _, c := range p.Manifest.CharacterEntries() {
			entries = append(entries, search.Entry{
				ID: p.Manifest.ID + ":" + c.ID,
			})
		}
	}
	return entries, nil
}

// firstEdgePopularity applies the popularity fallback chain: the
// character's own, then its first media's, then the floor.
func firstEdgePopularity(c *catalog.Character, edge catalog.CharacterMediaEdge) int {
	if c.Popularity != nil {
		return *c.Popularity
	}
	if edge.Node != nil && edge.Node.Popularity != nil {
		return *edge.Node.Popularity
	}
	return rating.LowestPopularity
}

func (o *orchestrator) rangePool(ctx context.Context, guildID string) (*candidatePool, error) {
	ranges, roles := rangeTable, roleTable
	if o.eventBoost {
		ranges, roles = boostedRangeTable, boostedRoleTable
	}

	popRange, err := ranges.Draw(o.rand)
	if err != nil {
		return nil, err
	}

	// the floor range spans all roles; narrower ranges pin one role for
	// the whole pool
	var role *catalog.CharacterRole
	if popRange.Lower > rating.LowestPopularity {
		drawn, err := roles.Draw(o.rand)
		if err != nil {
			return nil, err
		}
		role = &drawn
	}

	indexed, err := o.index.Pool(ctx, search.PoolFilter{
		Popularity: &popRange,
		Role:       role,
	})
	if err != nil {
		return nil, err
	}

	packed, err := o.packEntries(ctx, guildID)
	if err != nil {
		return nil, err
	}

	validate := func(c *catalog.Character) bool {
		if c.Popularity != nil && !popRange.Contains(*c.Popularity) {
			return false
		}

		if role != nil && !c.Media.Aggregated() {
			refs := c.Media.Refs()
			if len(refs) == 0 || refs[0].Role != *role {
				return false
			}
		}

		if c.Media.Aggregated() && len(c.Media.Edges()) > 0 {
			edge := c.Media.Edges()[0]

			if !popRange.Contains(firstEdgePopularity(c, edge)) {
				return false
			}
			if role != nil && edge.Role != *role {
				return false
			}
		}

		return true
	}

	return &candidatePool{
		entries:  append(indexed, packed...),
		validate: validate,
	}, nil
}

func (o *orchestrator) guaranteedPool(ctx context.Context, guildID string, guarantee int) (*candidatePool, error) {
	indexed, err := o.index.Pool(ctx, search.PoolFilter{Rating: &guarantee})
	if err != nil {
		return nil, err
	}

	packed, err := o.packEntries(ctx, guildID)
	if err != nil {
		return nil, err
	}

	validate := func(c *catalog.Character) bool {
		if c.Popularity != nil && rating.Stars(*c.Popularity, "") != guarantee {
			return false
		}

		if c.Media.Aggregated() && len(c.Media.Edges()) > 0 {
			edge := c.Media.Edges()[0]

			if rating.Stars(firstEdgePopularity(c, edge), edge.Role) != guarantee {
				return false
			}
		}

		return true
	}

	return &candidatePool{
		entries:  append(indexed, packed...),
		validate: validate,
	}, nil
}

func (o *orchestrator) fallbackPool(ctx context.Context, guildID string) (*candidatePool, error) {
	indexed, err := o.index.Pool(ctx, search.PoolFilter{})
	if err != nil {
		return nil, err
	}

	packed, err := o.packEntries(ctx, guildID)
	if err != nil {
		return nil, err
	}

	return &candidatePool{
		entries:  append(indexed, packed...),
		validate: passAll,
	}, nil
}
