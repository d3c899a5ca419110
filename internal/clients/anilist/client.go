// Package anilist is the client for the external AniList catalog.
package anilist

//go:generate mockgen -destination=mock/mock_client.go -package=anilistmock github.com/noctale/noctale/internal/clients/anilist Client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/noctale/noctale/internal/entities/catalog"
	"github.com/noctale/noctale/internal/errors"
)

// Client defines the read operations the catalog exposes.
type Client interface {
	// MediaByIDs fetches media entries by their numeric ids. Unknown ids
	// are silently absent from the result.
	MediaByIDs(ctx context.Context, ids []int) ([]*catalog.Media, error)

	// CharactersByIDs fetches character entries by their numeric ids.
	// Unknown ids are silently absent from the result.
	CharactersByIDs(ctx context.Context, ids []int) ([]*catalog.Character, error)

	// SearchMedia runs a fuzzy title search, most popular first.
	SearchMedia(ctx context.Context, search string) ([]*catalog.Media, error)

	// SearchCharacters runs a fuzzy name search, most popular first.
	SearchCharacters(ctx context.Context, search string) ([]*catalog.Character, error)

	// MediaCharacters fetches the character at the given zero-based index
	// of a media entry's cast.
	MediaCharacters(ctx context.Context, input *MediaCharactersInput) (*MediaCharactersOutput, error)
}

// MediaCharactersInput identifies one slot of a media entry's cast.
type MediaCharactersInput struct {
	MediaID int
	Index   int
}

// MediaCharactersOutput is one page of a media entry's cast.
type MediaCharactersOutput struct {
	Media     *catalog.Media
	Character *catalog.Character
	Role      catalog.CharacterRole
	Total     int
	Next      bool
}

// Config contains configuration options for the AniList client.
type Config struct {
	// URL of the GraphQL endpoint (optional, defaults to the public API)
	URL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// PerPage caps search results (optional, defaults to 25)
	PerPage int
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.URL == "" {
		cfg.URL = "https://graphql.anilist.co"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.PerPage == 0 {
		cfg.PerPage = 25
	}
	return nil
}

type client struct {
	url     string
	perPage int
	http    *http.Client
}

// New creates a new AniList client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &client{
		url:     cfg.URL,
		perPage: cfg.PerPage,
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
	}, nil
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

func (c *client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return errors.Wrap(err, "failed to encode query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "anilist request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read anilist response")
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return errors.Unavailable("anilist rate limit exceeded")
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Internalf("anilist returned %d: %s", resp.StatusCode, text)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []gqlError      `json:"errors"`
	}
	if err := json.Unmarshal(text, &envelope); err != nil {
		return errors.Wrap(err, "failed to decode anilist response")
	}
	if len(envelope.Errors) > 0 {
		return errors.Internalf("anilist query failed: %s", envelope.Errors[0].Message)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return errors.Wrap(err, "failed to decode anilist data")
	}
	return nil
}

func (c *client) MediaByIDs(ctx context.Context, ids []int) ([]*catalog.Media, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var data struct {
		Page struct {
			Media []*apiMedia `json:"media"`
		} `json:"Page"`
	}
	vars := map[string]any{"ids": ids, "perPage": len(ids)}
	if err := c.query(ctx, mediaByIDsQuery, vars, &data); err != nil {
		return nil, err
	}

	out := make([]*catalog.Media, 0, len(data.Page.Media))
	for _, m := range data.Page.Media {
		out = append(out, m.transform())
	}
	return out, nil
}

func (c *client) CharactersByIDs(ctx context.Context, ids []int) ([]*catalog.Character, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var data struct {
		Page struct {
			Characters []*apiCharacter `json:"characters"`
		} `json:"Page"`
	}
	vars := map[string]any{"ids": ids, "perPage": len(ids)}
	if err := c.query(ctx, charactersByIDsQuery, vars, &data); err != nil {
		return nil, err
	}

	out := make([]*catalog.Character, 0, len(data.Page.Characters))
	for _, ch := range data.Page.Characters {
		out = append(out, ch.transform())
	}
	return out, nil
}

func (c *client) SearchMedia(ctx context.Context, search string) ([]*catalog.Media, error) {
	var data struct {
		Page struct {
			Media []*apiMedia `json:"media"`
		} `json:"Page"`
	}
	vars := map[string]any{"search": search, "perPage": c.perPage}
	if err := c.query(ctx, searchMediaQuery, vars, &data); err != nil {
		return nil, err
	}

	out := make([]*catalog.Media, 0, len(data.Page.Media))
	for _, m := range data.Page.Media {
		out = append(out, m.transform())
	}
	return out, nil
}

func (c *client) SearchCharacters(ctx context.Context, search string) ([]*catalog.Character, error) {
	var data struct {
		Page struct {
			Characters []*apiCharacter `json:"characters"`
		} `json:"Page"`
	}
	vars := map[string]any{"search": search, "perPage": c.perPage}
	if err := c.query(ctx, searchCharactersQuery, vars, &data); err != nil {
		return nil, err
	}

	out := make([]*catalog.Character, 0, len(data.Page.Characters))
	for _, ch := range data.Page.Characters {
		out = append(out, ch.transform())
	}
	return out, nil
}

func (c *client) MediaCharacters(ctx context.Context, input *MediaCharactersInput) (*MediaCharactersOutput, error) {
	var data struct {
		Media *struct {
			apiMedia
			Cast struct {
				PageInfo struct {
					Total       int  `json:"total"`
					HasNextPage bool `json:"hasNextPage"`
				} `json:"pageInfo"`
				Edges []apiCharacterEdge `json:"edges"`
			} `json:"cast"`
		} `json:"Media"`
	}
	vars := map[string]any{
		"id": input.MediaID,
		// pages are one-based on the wire
		"page": input.Index + 1,
	}
	if err := c.query(ctx, mediaCharactersQuery, vars, &data); err != nil {
		return nil, err
	}
	if data.Media == nil {
		return nil, errors.NotFoundf("media %d not found", input.MediaID)
	}

	out := &MediaCharactersOutput{
		Media: data.Media.transform(),
		Total: data.Media.Cast.PageInfo.Total,
		Next:  data.Media.Cast.PageInfo.HasNextPage,
	}
	if len(data.Media.Cast.Edges) > 0 {
		edge := data.Media.Cast.Edges[0]
		out.Character = edge.Node.transform()
		out.Role = catalog.CharacterRole(edge.Role)
	}
	return out, nil
}
