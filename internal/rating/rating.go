// Package rating derives star tiers from popularity and billing role.
// Stars are never stored, always recomputed.
package rating

import (
	"github.com/noctale/noctale/internal/entities/catalog"
)

// LowestPopularity is the floor assumed when an entity carries no
// popularity at all.
const LowestPopularity = 1000

// Stars maps a popularity and role to a star tier between 1 and 5.
// Role may be empty when unknown. A popularity of exactly 400k falls in
// a gap between tiers and yields 0 stars.
func Stars(popularity int, role catalog.CharacterRole) int {
	switch {
	case role == catalog.RoleBackground || popularity < 50_000:
		return 1
	case popularity < 200_000:
		if role == catalog.RoleMain {
			return 3
		}
		return 2
	case popularity < 400_000:
		if role == catalog.RoleMain {
			return 4
		}
		return 3
	case popularity > 400_000:
		if role == catalog.RoleMain {
			return 5
		}
		return 4
	default:
		return 0
	}
}

// FromCharacter rates a character by its first media appearance. The
// character's own popularity wins over the media's; with neither, the
// floor applies. A character with no media edge is rated roleless.
func FromCharacter(c *catalog.Character) int {
	if c.Media != nil && c.Media.Aggregated() && len(c.Media.Edges()) > 0 {
		edge := c.Media.Edges()[0]

		popularity := LowestPopularity
		if c.Popularity != nil {
			popularity = *c.Popularity
		} else if edge.Node != nil && edge.Node.Popularity != nil {
			popularity = *edge.Node.Popularity
		}

		return Stars(popularity, edge.Role)
	}

	popularity := LowestPopularity
	if c.Popularity != nil {
		popularity = *c.Popularity
	}
	return Stars(popularity, "")
}
