package search

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

// The bundled snapshot is regenerated offline from catalog dumps.
// TODO: replace the static snapshot with a periodic refresh job once
// the catalog exposes a bulk popularity export.

//go:embed anilist.pool.json
var snapshotRaw []byte

var (
	snapshotOnce sync.Once
	snapshot     Index
)

// Snapshot returns the index bundled with the binary.
func Snapshot() Index {
	snapshotOnce.Do(func() {
		var entries []Entry
		if err := json.Unmarshal(snapshotRaw, &entries); err != nil {
			panic(fmt.Sprintf("search: bad bundled pool snapshot: %v", err))
		}
		snapshot = NewFromEntries(entries)
	})
	return snapshot
}
