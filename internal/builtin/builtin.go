// Package builtin bundles the packs shipped with the binary. They are
// parsed once at first use and shared by every guild.
package builtin

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/noctale/noctale/internal/entities/pack"
)

//go:embed anilist.manifest.json
var anilistRaw []byte

//go:embed vtubers.manifest.json
var vtubersRaw []byte

var (
	loadOnce sync.Once
	anilist  *pack.Pack
	vtubers  *pack.Pack
)

func load() {
	loadOnce.Do(func() {
		anilist = mustParse(anilistRaw)
		vtubers = mustParse(vtubersRaw)
	})
}

func mustParse(raw []byte) *pack.Pack {
	var m pack.Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		panic(fmt.Sprintf("builtin: bad bundled manifest: %v", err))
	}
	return &pack.Pack{Manifest: &m, Type: pack.TypeBuiltin}
}

// AniList returns the metadata-only pack representing the external
// catalog. It carries no entities of its own.
func AniList() *pack.Pack {
	load()
	return anilist
}

// Vtubers returns the bundled vtubers pack.
func Vtubers() *pack.Pack {
	load()
	return vtubers
}

// Packs returns every builtin pack.
func Packs() []*pack.Pack {
	load()
	return []*pack.Pack{anilist, vtubers}
}
