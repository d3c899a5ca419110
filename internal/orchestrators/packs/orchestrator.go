// Package packs implements the source registry: the combined view of
// builtin packs, a guild's community packs, and the external catalog.
package packs

//go:generate mockgen -destination=mock/mock_service.go -package=packsmock github.com/noctale/noctale/internal/orchestrators/packs Service

import (
	"context"
	"sync"

	"github.com/noctale/noctale/internal/builtin"
	"github.com/noctale/noctale/internal/clients/anilist"
	"github.com/noctale/noctale/internal/entities/pack"
	"github.com/noctale/noctale/internal/errors"
	"github.com/noctale/noctale/internal/repositories/packstore"
	"github.com/noctale/noctale/internal/schema"
)

// Service defines the interface for pack and catalog operations
type Service interface {
	// ListPacks returns a guild's packs, builtin entries first
	ListPacks(ctx context.Context, input *ListPacksInput) (*ListPacksOutput, error)

	// Install validates and installs a community pack for a guild
	Install(ctx context.Context, input *InstallInput) (*InstallOutput, error)

	// Remove uninstalls a community pack from a guild
	Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error)

	// IsDisabled reports whether a compound id is disabled by some
	// installed pack's conflicts list
	IsDisabled(ctx context.Context, input *IsDisabledInput) (*IsDisabledOutput, error)

	// Media resolves media entries by compound id
	Media(ctx context.Context, input *MediaInput) (*MediaOutput, error)

	// Characters resolves characters by compound id
	Characters(ctx context.Context, input *CharactersInput) (*CharactersOutput, error)

	// SearchMedia ranks media entries against a fuzzy search string
	SearchMedia(ctx context.Context, input *SearchInput) (*SearchMediaOutput, error)

	// SearchCharacters ranks characters against a fuzzy search string
	SearchCharacters(ctx context.Context, input *SearchInput) (*SearchCharactersOutput, error)

	// SearchOneMedia returns the top-ranked media entry, if any
	SearchOneMedia(ctx context.Context, input *SearchInput) (*SearchOneMediaOutput, error)

	// SearchOneCharacter returns the top-ranked character, if any
	SearchOneCharacter(ctx context.Context, input *SearchInput) (*SearchOneCharacterOutput, error)

	// MediaCharacters fetches one page of a media entry's cast
	MediaCharacters(ctx context.Context, input *MediaCharactersInput) (*MediaCharactersOutput, error)

	// AggregateMedia expands a media entry's relations one hop deep
	AggregateMedia(ctx context.Context, input *AggregateMediaInput) (*AggregateMediaOutput, error)

	// AggregateCharacter expands a character's media relations one hop deep
	AggregateCharacter(ctx context.Context, input *AggregateCharacterInput) (*AggregateCharacterOutput, error)
}

// Config holds the dependencies for the packs orchestrator
type Config struct {
	PackRepo      packstore.Repository
	AniListClient anilist.Client
	// CommunityPacks toggles whether guild-installed packs are loaded
	// at all. Install and Remove fail when disabled.
	CommunityPacks bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PackRepo == nil {
		vb.RequiredField("PackRepo")
	}
	if c.AniListClient == nil {
		vb.RequiredField("AniListClient")
	}

	return vb.Build()
}

// guildState is the cached per-guild view: installed packs plus the
// disabled-id index folded from their conflicts lists.
type guildState struct {
	packs    []*pack.Pack
	disabled map[string]bool
}

type orchestrator struct {
	packRepo       packstore.Repository
	anilistClient  anilist.Client
	communityPacks bool

	mu     sync.RWMutex
	guilds map[string]*guildState
}

// NewOrchestrator creates a new packs orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		packRepo:       cfg.PackRepo,
		anilistClient:  cfg.AniListClient,
		communityPacks: cfg.CommunityPacks,
		guilds:         make(map[string]*guildState),
	}, nil
}

// guild returns the cached state for a guild, loading it on first
// access. Install and Remove invalidate it.
func (o *orchestrator) guild(ctx context.Context, guildID string) (*guildState, error) {
	o.mu.RLock()
	state, ok := o.guilds[guildID]
	o.mu.RUnlock()
	if ok {
		return state, nil
	}

	var community []*pack.Pack
	if o.communityPacks {
		out, err := o.packRepo.GetGuildPacks(ctx, packstore.GetGuildPacksInput{GuildID: guildID})
		if err != nil {
			return nil, err
		}
		community = out.Packs
	}

	packs := make([]*pack.Pack, 0, len(community)+1)
	packs = append(packs, builtin.Vtubers())
	packs = append(packs, community...)

	disabled := make(map[string]bool)
	for _, p := range append([]*pack.Pack{builtin.AniList()}, packs...) {
		for _, id := range p.Manifest.DisabledIDs() {
			disabled[id] = true
		}
	}

	state = &guildState{packs: packs, disabled: disabled}

	o.mu.Lock()
	o.guilds[guildID] = state
	o.mu.Unlock()

	return state, nil
}

func (o *orchestrator) invalidate(guildID string) {
	o.mu.Lock()
	delete(o.guilds, guildID)
	o.mu.Unlock()
}

func (o *orchestrator) ListPacks(ctx context.Context, input *ListPacksInput) (*ListPacksOutput, error) {
	if input.GuildID == "" {
		return nil, errors.InvalidArgument("guild ID cannot be empty")
	}

	if input.Type != nil && *input.Type == pack.TypeBuiltin {
		return &ListPacksOutput{Packs: builtin.Packs()}, nil
	}

	state, err := o.guild(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil && *input.Type == pack.TypeCommunity {
		var community []*pack.Pack
		for _, p := range state.packs {
			if p.Type == pack.TypeCommunity {
				community = append(community, p)
			}
		}
		return &ListPacksOutput{Packs: community}, nil
	}

	return &ListPacksOutput{Packs: state.packs}, nil
}

func (o *orchestrator) Install(ctx context.Context, input *InstallInput) (*InstallOutput, error) {
	if input.GuildID == "" {
		return nil, errors.InvalidArgument("guild ID cannot be empty")
	}
	if !o.communityPacks {
		return nil, errors.FailedPrecondition("community packs are disabled")
	}

	manifest, err := schema.ValidateManifest(input.Manifest)
	if err != nil {
		return nil, err
	}

	state, err := o.guild(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	if err := checkRelations(manifest, state.packs); err != nil {
		return nil, err
	}

	installed := &pack.Pack{
		Manifest:    manifest,
		Type:        pack.TypeCommunity,
		InstalledBy: input.UserID,
	}

	if _, err := o.packRepo.Install(ctx, packstore.InstallInput{
		GuildID: input.GuildID,
		Pack:    installed,
	}); err != nil {
		return nil, err
	}

	o.invalidate(input.GuildID)

	return &InstallOutput{Pack: installed}, nil
}

// checkRelations enforces the symmetric conflict rule and dependency
// presence, reporting every offending id at once.
func checkRelations(candidate *pack.Manifest, installed []*pack.Pack) error {
	installedIDs := make(map[string]bool, len(installed))
	for _, p := range installed {
		installedIDs[p.Manifest.ID] = true
	}

	vb := errors.NewValidationBuilder()

	for _, id := range candidate.Conflicts {
		if installedIDs[id] {
			vb.Fieldf("conflicts", "%s is installed and conflicts with this pack", id)
		}
	}

	for _, p := range installed {
		for _, id := range p.Manifest.Conflicts {
			if id == candidate.ID {
				vb.Fieldf("conflicts", "installed pack %s conflicts with %s", p.Manifest.ID, candidate.ID)
			}
		}
	}

	for _, id := range candidate.Depends {
		if !installedIDs[id] {
			vb.Fieldf("depends", "%s is required but not installed", id)
		}
	}

	return vb.Build()
}

func (o *orchestrator) Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error) {
	if input.GuildID == "" {
		return nil, errors.InvalidArgument("guild ID cannot be empty")
	}
	if input.ManifestID == "" {
		return nil, errors.InvalidArgument("manifest ID cannot be empty")
	}
	if !o.communityPacks {
		return nil, errors.FailedPrecondition("community packs are disabled")
	}

	out, err := o.packRepo.Remove(ctx, packstore.RemoveInput{
		GuildID:    input.GuildID,
		ManifestID: input.ManifestID,
	})
	if err != nil {
		return nil, err
	}

	o.invalidate(input.GuildID)

	return &RemoveOutput{Pack: out.Pack}, nil
}

func (o *orchestrator) IsDisabled(ctx context.Context, input *IsDisabledInput) (*IsDisabledOutput, error) {
	state, err := o.guild(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	return &IsDisabledOutput{Disabled: state.disabled[input.ID]}, nil
}
