// Package gacha implements the pull engine: weighted pool selection,
// candidate sampling, and inventory persistence with retry.
package gacha

//go:generate mockgen -destination=mock/mock_service.go -package=gachamock github.com/noctale/noctale/internal/orchestrators/gacha Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/noctale/noctale/internal/entities/catalog"
	"github.com/noctale/noctale/internal/errors"
	"github.com/noctale/noctale/internal/orchestrators/packs"
	"github.com/noctale/noctale/internal/pkg/clock"
	"github.com/noctale/noctale/internal/rating"
	"github.com/noctale/noctale/internal/repositories/inventory"
	"github.com/noctale/noctale/internal/search"
)

// pullBudget bounds how long one pull may keep sampling before it
// gives up with a pool-exhaustion error.
const pullBudget = 60 * time.Second

// Service defines the interface for gacha operations
type Service interface {
	// Pull draws one character, persisting it to the user's inventory
	// when a user is given
	Pull(ctx context.Context, input *PullInput) (*PullOutput, error)
}

// PullInput defines the input for a gacha pull
type PullInput struct {
	GuildID string
	// UserID is the receiving user. Empty runs a dry pull with no
	// inventory write.
	UserID string
	// Guarantee pins the pull to a fixed star rating.
	Guarantee *int
	// Sacrifices lists inventory ids consumed to fund a guarantee.
	Sacrifices []string
}

// PullOutput defines the output for a gacha pull
type PullOutput struct {
	Character *catalog.Character
	Media     *catalog.Media
	Rating    int
}

// Config holds the dependencies for the gacha orchestrator
type Config struct {
	PacksService  packs.Service
	Index         search.Index
	InventoryRepo inventory.Repository
	Clock         clock.Clock
	Rand          Rand
	// Enabled gates the whole engine.
	Enabled bool
	// EventBoost switches to the boosted rate tables.
	EventBoost bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PacksService == nil {
		vb.RequiredField("PacksService")
	}
	if c.Index == nil {
		vb.RequiredField("Index")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.Rand == nil {
		c.Rand = NewRand()
	}

	return vb.Build()
}

type orchestrator struct {
	packsService  packs.Service
	index         search.Index
	inventoryRepo inventory.Repository
	clock         clock.Clock
	rand          Rand
	enabled       bool
	eventBoost    bool
}

// NewOrchestrator creates a new gacha orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		packsService:  cfg.PacksService,
		index:         cfg.Index,
		inventoryRepo: cfg.InventoryRepo,
		clock:         cfg.Clock,
		rand:          cfg.Rand,
		enabled:       cfg.Enabled,
		eventBoost:    cfg.EventBoost,
	}, nil
}

func (o *orchestrator) Pull(ctx context.Context, input *PullInput) (*PullOutput, error) {
	if !o.enabled {
		return nil, errors.Unavailable("gacha is disabled")
	}
	if input.GuildID == "" {
		return nil, errors.InvalidArgument("guild ID cannot be empty")
	}

	var (
		pool *candidatePool
		err  error
	)
	if input.Guarantee != nil {
		pool, err = o.guaranteedPool(ctx, input.GuildID, *input.Guarantee)
	} else {
		pool, err = o.rangePool(ctx, input.GuildID)
	}
	if err != nil {
		return nil, err
	}

	// an empty weighted pool falls back to everything; a guarantee
	// never does
	if len(pool.entries) == 0 && input.Guarantee == nil {
		pool, err = o.fallbackPool(ctx, input.GuildID)
		if err != nil {
			return nil, err
		}
	}

	if len(pool.entries) == 0 {
		return nil, errors.ResourceExhausted("gacha pool is exhausted")
	}

	// the budget is a deadline value checked once per iteration; a
	// lookup already in flight is allowed to finish
	deadline := o.clock.Now().Add(pullBudget)

	for o.clock.Now().Before(deadline) {
		characterID := pool.entries[o.rand.Intn(len(pool.entries))].ID

		candidate, err := o.resolveCandidate(ctx, input.GuildID, characterID)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			continue
		}

		edges := candidate.Media.Edges()
		if len(edges) == 0 {
			continue
		}
		edge := edges[0]

		if !pool.validate(candidate) {
			continue
		}

		disabled, err := o.packsService.IsDisabled(ctx, &packs.IsDisabledInput{
			GuildID: input.GuildID,
			ID:      edge.Node.CompoundID().String(),
		})
		if err != nil {
			return nil, err
		}
		if disabled.Disabled {
			continue
		}

		stars := rating.FromCharacter(candidate)
		if stars == 0 {
			continue
		}

		if input.UserID != "" {
			_, err := o.inventoryRepo.AddCharacter(ctx, inventory.AddCharacterInput{
				GuildID:     input.GuildID,
				UserID:      input.UserID,
				CharacterID: characterID,
				MediaID:     edge.Node.CompoundID().String(),
				Rating:      stars,
				Guaranteed:  input.Guarantee != nil,
				Sacrifices:  input.Sacrifices,
			})
			if err != nil {
				// the duplicate and write-conflict outcomes are
				// transient collisions, resampled away
				if errors.IsAlreadyExists(err) || errors.IsAborted(err) {
					slog.Debug("pull collided, resampling",
						"guild_id", input.GuildID,
						"character_id", characterID)
					continue
				}
				return nil, err
			}
		}

		media, err := o.packsService.AggregateMedia(ctx, &packs.AggregateMediaInput{
			GuildID: input.GuildID,
			Media:   edge.Node,
		})
		if err != nil {
			return nil, err
		}

		return &PullOutput{
			Character: candidate,
			Media:     media.Media,
			Rating:    stars,
		}, nil
	}

	return nil, errors.ResourceExhausted("gacha pool is exhausted")
}

// resolveCandidate fetches one pool entry and aggregates only its
// first media edge. Unresolvable entries return nil, not an error.
func (o *orchestrator) resolveCandidate(ctx context.Context, guildID, characterID string) (*catalog.Character, error) {
	out, err := o.packsService.Characters(ctx, &packs.CharactersInput{
		GuildID: guildID,
		IDs:     []string{characterID},
	})
	if err != nil {
		return nil, err
	}

	candidate, ok := out.Characters[characterID]
	if !ok {
		return nil, nil
	}

	end := 1
	aggregated, err := o.packsService.AggregateCharacter(ctx, &packs.AggregateCharacterInput{
		GuildID:   guildID,
		Character: candidate,
		End:       &end,
	})
	if err != nil {
		return nil, err
	}

	return aggregated.Character, nil
}
