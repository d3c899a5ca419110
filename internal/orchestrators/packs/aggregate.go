package packs

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/noctale/noctale/internal/clients/anilist"
	"github.com/noctale/noctale/internal/entities/catalog"
	"github.com/noctale/noctale/internal/errors"
)

// window applies the start/end pagination to a reference list. End is a
// count from start, not an absolute position.
func window[R any](refs []R, start, end *int) []R {
	s := 0
	if start != nil {
		s = *start
	}
	if s > len(refs) {
		s = len(refs)
	}

	e := len(refs)
	if end != nil && s+*end < e {
		e = s + *end
	}

	return refs[s:e]
}

func (o *orchestrator) AggregateMedia(ctx context.Context, input *AggregateMediaInput) (*AggregateMediaOutput, error) {
	if input.Media == nil {
		return nil, errors.InvalidArgument("media cannot be nil")
	}

	state, err := o.guild(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	m := input.Media

	// already aggregated: filter disabled nodes, never re-fetch
	if m.Relations.Aggregated() || m.Characters.Aggregated() {
		out := *m

		if m.Relations.Aggregated() {
			edges := make([]catalog.MediaEdge, 0, len(m.Relations.Edges()))
			for _, edge := range m.Relations.Edges() {
				if edge.Node == nil || state.disabled[edge.Node.CompoundID().String()] {
					continue
				}
				edges = append(edges, edge)
			}
			out.Relations = catalog.NewEdges[catalog.MediaRef](edges)
		}

		if m.Characters.Aggregated() {
			edges := make([]catalog.CharacterEdge, 0, len(m.Characters.Edges()))
			for _, edge := range m.Characters.Edges() {
				if edge.Node == nil || state.disabled[edge.Node.CompoundID().String()] {
					continue
				}
				edges = append(edges, edge)
			}
			out.Characters = catalog.NewEdges[catalog.CharacterRef](edges)
		}

		return &AggregateMediaOutput{Media: &out}, nil
	}

	relationRefs := window(m.Relations.Refs(), input.Start, input.End)
	characterRefs := window(m.Characters.Refs(), input.Start, input.End)

	mediaIDs := make([]string, 0, len(relationRefs))
	for _, ref := range relationRefs {
		mediaIDs = append(mediaIDs, ref.MediaID)
	}
	characterIDs := make([]string, 0, len(characterRefs))
	for _, ref := range characterRefs {
		characterIDs = append(characterIDs, ref.CharacterID)
	}

	var (
		mediaByID      map[string]*catalog.Media
		charactersByID map[string]*catalog.Character
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		mediaByID, err = findByID(gctx, o, mediaOps(o), input.GuildID, mediaIDs, m.PackID)
		return err
	})
	g.Go(func() error {
		var err error
		charactersByID, err = findByID(gctx, o, characterOps(o), input.GuildID, characterIDs, m.PackID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := *m

	relationEdges := make([]catalog.MediaEdge, 0, len(relationRefs))
	for _, ref := range relationRefs {
		id, ok := catalog.ParseID(ref.MediaID, m.PackID)
		if !ok || state.disabled[id.String()] {
			continue
		}
		node, ok := mediaByID[id.String()]
		if !ok {
			continue
		}
		relationEdges = append(relationEdges, catalog.MediaEdge{
			Relation: ref.Relation,
			Node:     node,
		})
	}
	out.Relations = catalog.NewEdges[catalog.MediaRef](relationEdges)

	characterEdges := make([]catalog.CharacterEdge, 0, len(characterRefs))
	for _, ref := range characterRefs {
		id, ok := catalog.ParseID(ref.CharacterID, m.PackID)
		if !ok || state.disabled[id.String()] {
			continue
		}
		node, ok := charactersByID[id.String()]
		if !ok {
			continue
		}
		characterEdges = append(characterEdges, catalog.CharacterEdge{
			Role: ref.Role,
			Node: node,
		})
	}
	out.Characters = catalog.NewEdges[catalog.CharacterRef](characterEdges)

	return &AggregateMediaOutput{Media: &out}, nil
}

func (o *orchestrator) AggregateCharacter(ctx context.Context, input *AggregateCharacterInput) (*AggregateCharacterOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument("character cannot be nil")
	}

	state, err := o.guild(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	c := input.Character

	if c.Media.Aggregated() {
		out := *c

		edges := make([]catalog.CharacterMediaEdge, 0, len(c.Media.Edges()))
		for _, edge := range c.Media.Edges() {
			if edge.Node == nil || state.disabled[edge.Node.CompoundID().String()] {
				continue
			}
			edges = append(edges, edge)
		}
		out.Media = catalog.NewEdges[catalog.CharacterMediaRef](edges)

		return &AggregateCharacterOutput{Character: &out}, nil
	}

	refs := window(c.Media.Refs(), input.Start, input.End)

	mediaIDs := make([]string, 0, len(refs))
	for _, ref := range refs {
		mediaIDs = append(mediaIDs, ref.MediaID)
	}

	mediaByID, err := findByID(ctx, o, mediaOps(o), input.GuildID, mediaIDs, c.PackID)
	if err != nil {
		return nil, err
	}

	out := *c

	edges := make([]catalog.CharacterMediaEdge, 0, len(refs))
	for _, ref := range refs {
		id, ok := catalog.ParseID(ref.MediaID, c.PackID)
		if !ok || state.disabled[id.String()] {
			continue
		}
		node, ok := mediaByID[id.String()]
		if !ok {
			continue
		}
		edges = append(edges, catalog.CharacterMediaEdge{
			Role: ref.Role,
			Node: node,
		})
	}
	out.Media = catalog.NewEdges[catalog.CharacterMediaRef](edges)

	return &AggregateCharacterOutput{Character: &out}, nil
}

func (o *orchestrator) MediaCharacters(ctx context.Context, input *MediaCharactersInput) (*MediaCharactersOutput, error) {
	id, ok := catalog.ParseID(input.ID, "")
	if !ok {
		return nil, errors.InvalidArgumentf("malformed media id %q", input.ID)
	}

	state, err := o.guild(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}
	if state.disabled[id.String()] {
		return nil, errors.NotFoundf("media %s not found", input.ID)
	}

	if id.Source == catalog.SourceAniList {
		n, err := strconv.Atoi(id.Local)
		if err != nil {
			return nil, errors.InvalidArgumentf("malformed media id %q", input.ID)
		}

		out, err := o.anilistClient.MediaCharacters(ctx, &anilist.MediaCharactersInput{
			MediaID: n,
			Index:   input.Index,
		})
		if err != nil {
			return nil, err
		}

		return &MediaCharactersOutput{
			Media:     out.Media,
			Character: out.Character,
			Role:      out.Role,
			Total:     out.Total,
			Next:      out.Next,
		}, nil
	}

	match := packEntity(mediaOps(o), state.packs, id)
	if match == nil {
		return nil, errors.NotFoundf("media %s not found", input.ID)
	}

	total := match.Characters.Len()

	start := input.Index
	end := 1
	aggregated, err := o.AggregateMedia(ctx, &AggregateMediaInput{
		GuildID: input.GuildID,
		Media:   match,
		Start:   &start,
		End:     &end,
	})
	if err != nil {
		return nil, err
	}

	out := &MediaCharactersOutput{
		Media: aggregated.Media,
		Total: total,
		Next:  input.Index+1 < total,
	}
	if edges := aggregated.Media.Characters.Edges(); len(edges) > 0 {
		out.Character = edges[0].Node
		out.Role = edges[0].Role
	}
	return out, nil
}
