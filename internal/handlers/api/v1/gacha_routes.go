package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noctale/noctale/internal/errors"
	"github.com/noctale/noctale/internal/orchestrators/gacha"
)

type pullRequest struct {
	// UserID receives the character. Empty runs a dry pull.
	UserID string `json:"userId"`
	// Guarantee pins the pull to a star rating.
	Guarantee  *int     `json:"guarantee,omitempty"`
	Sacrifices []string `json:"sacrifices,omitempty"`
}

func (h *Handler) pull(c *gin.Context) {
	var req pullRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.gachaService.Pull(c.Request.Context(), &gacha.PullInput{
		GuildID:    c.Param("guild"),
		UserID:     req.UserID,
		Guarantee:  req.Guarantee,
		Sacrifices: req.Sacrifices,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"character": out.Character,
		"media":     out.Media,
		"rating":    out.Rating,
	})
}
