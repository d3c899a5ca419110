package v1

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noctale/noctale/internal/entities/pack"
	"github.com/noctale/noctale/internal/errors"
	"github.com/noctale/noctale/internal/orchestrators/packs"
)

func (h *Handler) listPacks(c *gin.Context) {
	input := &packs.ListPacksInput{GuildID: c.Param("guild")}

	switch c.Query("type") {
	case "":
	case string(pack.TypeBuiltin):
		t := pack.TypeBuiltin
		input.Type = &t
	case string(pack.TypeCommunity):
		t := pack.TypeCommunity
		input.Type = &t
	default:
		h.respondError(c, errors.InvalidArgumentf("unknown pack type %q", c.Query("type")))
		return
	}

	out, err := h.packsService.ListPacks(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"packs": out.Packs})
}

func (h *Handler) installPack(c *gin.Context) {
	var manifest json.RawMessage
	if err := c.ShouldBindJSON(&manifest); err != nil {
		h.respondError(c, errors.InvalidArgument("invalid manifest body"))
		return
	}

	out, err := h.packsService.Install(c.Request.Context(), &packs.InstallInput{
		GuildID:  c.Param("guild"),
		UserID:   c.Query("userId"),
		Manifest: manifest,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pack": out.Pack})
}

func (h *Handler) removePack(c *gin.Context) {
	out, err := h.packsService.Remove(c.Request.Context(), &packs.RemoveInput{
		GuildID:    c.Param("guild"),
		ManifestID: c.Param("id"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pack": out.Pack})
}

// idsParam splits the comma-separated ids query parameter.
func idsParam(c *gin.Context) []string {
	raw := c.Query("ids")
	if raw == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// thresholdParam parses the optional similarity threshold.
func thresholdParam(c *gin.Context) (*int, error) {
	raw := c.Query("threshold")
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > 100 {
		return nil, errors.InvalidArgumentf("invalid threshold %q", raw)
	}
	return &n, nil
}

func (h *Handler) media(c *gin.Context) {
	out, err := h.packsService.Media(c.Request.Context(), &packs.MediaInput{
		GuildID: c.Param("guild"),
		IDs:     idsParam(c),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"media": out.Media})
}

func (h *Handler) characters(c *gin.Context) {
	out, err := h.packsService.Characters(c.Request.Context(), &packs.CharactersInput{
		GuildID: c.Param("guild"),
		IDs:     idsParam(c),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"characters": out.Characters})
}

func (h *Handler) searchMedia(c *gin.Context) {
	threshold, err := thresholdParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	out, err := h.packsService.SearchMedia(c.Request.Context(), &packs.SearchInput{
		GuildID:   c.Param("guild"),
		Search:    c.Query("q"),
		Threshold: threshold,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": out.Results})
}

func (h *Handler) searchCharacters(c *gin.Context) {
	threshold, err := thresholdParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	out, err := h.packsService.SearchCharacters(c.Request.Context(), &packs.SearchInput{
		GuildID:   c.Param("guild"),
		Search:    c.Query("q"),
		Threshold: threshold,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": out.Results})
}

func (h *Handler) mediaCharacters(c *gin.Context) {
	index := 0
	if raw := c.Query("index"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.respondError(c, errors.InvalidArgumentf("invalid index %q", raw))
			return
		}
		index = n
	}

	out, err := h.packsService.MediaCharacters(c.Request.Context(), &packs.MediaCharactersInput{
		GuildID: c.Param("guild"),
		ID:      c.Param("id"),
		Index:   index,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"media":     out.Media,
		"character": out.Character,
		"role":      out.Role,
		"total":     out.Total,
		"next":      out.Next,
	})
}
