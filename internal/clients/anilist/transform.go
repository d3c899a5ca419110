package anilist

import (
	"strconv"

	"github.com/noctale/noctale/internal/entities/catalog"
)

// Wire shapes for the GraphQL responses. Transform converts them into
// catalog entities tagged with the anilist source, edges already
// resolved one hop deep.

type apiTitle struct {
	English string `json:"english"`
	Romaji  string `json:"romaji"`
	Native  string `json:"native"`
}

type apiName struct {
	Full        string   `json:"full"`
	Native      string   `json:"native"`
	Alternative []string `json:"alternative"`
}

type apiCoverImage struct {
	ExtraLarge string `json:"extraLarge"`
	Color      string `json:"color"`
}

type apiImage struct {
	Large string `json:"large"`
}

type apiMedia struct {
	ID          int            `json:"id"`
	Type        string         `json:"type"`
	Format      string         `json:"format"`
	Popularity  *int           `json:"popularity"`
	Description string         `json:"description"`
	Synonyms    []string       `json:"synonyms"`
	Title       apiTitle       `json:"title"`
	CoverImage  *apiCoverImage `json:"coverImage"`

	Relations *struct {
		Edges []apiRelationEdge `json:"edges"`
	} `json:"relations"`
	Characters *struct {
		Edges []apiCharacterEdge `json:"edges"`
	} `json:"characters"`
}

type apiCharacter struct {
	ID          int       `json:"id"`
	Age         string    `json:"age"`
	Gender      string    `json:"gender"`
	Description string    `json:"description"`
	Name        apiName   `json:"name"`
	Image       *apiImage `json:"image"`

	Media *struct {
		Edges []apiCharacterMediaEdge `json:"edges"`
	} `json:"media"`
}

type apiRelationEdge struct {
	RelationType string    `json:"relationType"`
	Node         *apiMedia `json:"node"`
}

type apiCharacterEdge struct {
	Role string        `json:"role"`
	Node *apiCharacter `json:"node"`
}

type apiCharacterMediaEdge struct {
	CharacterRole string    `json:"characterRole"`
	Node          *apiMedia `json:"node"`
}

func (m *apiMedia) transform() *catalog.Media {
	out := &catalog.Media{
		ID:          strconv.Itoa(m.ID),
		PackID:      catalog.SourceAniList,
		Type:        catalog.MediaType(m.Type),
		Format:      catalog.MediaFormat(m.Format),
		Description: m.Description,
		Popularity:  m.Popularity,
		Title: catalog.Alias{
			English:     m.Title.English,
			Romaji:      m.Title.Romaji,
			Native:      m.Title.Native,
			Alternative: m.Synonyms,
		},
	}

	if m.CoverImage != nil && m.CoverImage.ExtraLarge != "" {
		out.Image = &catalog.Image{
			URL:   m.CoverImage.ExtraLarge,
			Color: m.CoverImage.Color,
		}
	}

	if m.Relations != nil {
		edges := make([]catalog.MediaEdge, 0, len(m.Relations.Edges))
		for _, e := range m.Relations.Edges {
			if e.Node == nil {
				continue
			}
			edges = append(edges, catalog.MediaEdge{
				Relation: catalog.MediaRelation(e.RelationType),
				Node:     e.Node.transform(),
			})
		}
		out.Relations = catalog.NewEdges[catalog.MediaRef](edges)
	}

	if m.Characters != nil {
		edges := make([]catalog.CharacterEdge, 0, len(m.Characters.Edges))
		for _, e := range m.Characters.Edges {
			if e.Node == nil {
				continue
			}
			edges = append(edges, catalog.CharacterEdge{
				Role: catalog.CharacterRole(e.Role),
				Node: e.Node.transform(),
			})
		}
		out.Characters = catalog.NewEdges[catalog.CharacterRef](edges)
	}

	return out
}

func (c *apiCharacter) transform() *catalog.Character {
	out := &catalog.Character{
		ID:          strconv.Itoa(c.ID),
		PackID:      catalog.SourceAniList,
		Description: c.Description,
		Gender:      c.Gender,
		Age:         c.Age,
		Name: catalog.Alias{
			English:     c.Name.Full,
			Native:      c.Name.Native,
			Alternative: c.Name.Alternative,
		},
	}

	if c.Image != nil && c.Image.Large != "" {
		out.Image = &catalog.Image{URL: c.Image.Large}
	}

	if c.Media != nil {
		edges := make([]catalog.CharacterMediaEdge, 0, len(c.Media.Edges))
		for _, e := range c.Media.Edges {
			if e.Node == nil {
				continue
			}
			edges = append(edges, catalog.CharacterMediaEdge{
				Role: catalog.CharacterRole(e.CharacterRole),
				Node: e.Node.transform(),
			})
		}
		out.Media = catalog.NewEdges[catalog.CharacterMediaRef](edges)
	}

	return out
}
