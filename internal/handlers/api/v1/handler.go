// Package v1 exposes the HTTP API consumed by bot deployments.
package v1

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noctale/noctale/internal/auth"
	"github.com/noctale/noctale/internal/errors"
	"github.com/noctale/noctale/internal/orchestrators/gacha"
	"github.com/noctale/noctale/internal/orchestrators/packs"
	"github.com/noctale/noctale/internal/pkg/idgen"
)

// Config holds dependencies for the v1 handler
type Config struct {
	PacksService packs.Service
	GachaService gacha.Service
	// TokenService guards the API. Nil disables auth.
	TokenService *auth.TokenService
	// IDGen mints the reference ids attached to internal errors.
	IDGen idgen.Generator
}

// Validate ensures all required dependencies are present
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.PacksService == nil {
		vb.RequiredField("PacksService")
	}
	if cfg.GachaService == nil {
		vb.RequiredField("GachaService")
	}
	if cfg.IDGen == nil {
		cfg.IDGen = idgen.NewUUID("err")
	}

	return vb.Build()
}

// Handler serves the v1 routes.
type Handler struct {
	packsService packs.Service
	gachaService gacha.Service
	tokenService *auth.TokenService
	idGen        idgen.Generator
}

// NewHandler creates a new v1 handler with the given configuration
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		packsService: cfg.PacksService,
		gachaService: cfg.GachaService,
		tokenService: cfg.TokenService,
		idGen:        cfg.IDGen,
	}, nil
}

// Register mounts the v1 routes on the router.
func (h *Handler) Register(router gin.IRouter) {
	v1 := router.Group("/v1", auth.Middleware(h.tokenService))

	guild := v1.Group("/guilds/:guild")
	guild.POST("/pulls", h.pull)

	guild.GET("/packs", h.listPacks)
	guild.POST("/packs", h.installPack)
	guild.DELETE("/packs/:id", h.removePack)

	guild.GET("/media", h.media)
	guild.GET("/media/search", h.searchMedia)
	guild.GET("/media/:id/characters", h.mediaCharacters)

	guild.GET("/characters", h.characters)
	guild.GET("/characters/search", h.searchCharacters)
}

// respondError maps an error to its HTTP status. Internal failures get
// an opaque reference id so users never see the underlying message.
func (h *Handler) respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)

	if code == errors.CodeInternal {
		ref := h.idGen.Generate()
		slog.Error("request failed",
			"ref", ref,
			"path", c.FullPath(),
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "internal error",
			"ref":   ref,
		})
		return
	}

	c.JSON(code.HTTPStatus(), gin.H{
		"error": errors.GetMessage(err),
		"code":  code.String(),
	})
}
