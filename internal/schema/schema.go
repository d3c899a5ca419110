// Package schema validates candidate manifests at the install boundary.
// Validation is pass/fail: callers either get a parsed manifest or an
// InvalidArgument error describing what failed.
package schema

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/noctale/noctale/internal/errors"
	"github.com/noctale/noctale/internal/entities/pack"
)

//go:embed manifest.schema.json
var manifestSchemaJSON []byte

// reservedIDs can never be claimed by a community manifest, regardless
// of schema validity. They belong to the builtin packs.
var reservedIDs = []string{"anilist", "vtubers"}

var compiled struct {
	once     sync.Once
	resolved *jsonschema.Resolved
	err      error
}

func resolved() (*jsonschema.Resolved, error) {
	compiled.once.Do(func() {
		var s jsonschema.Schema
		if err := json.Unmarshal(manifestSchemaJSON, &s); err != nil {
			compiled.err = errors.Wrap(err, "failed to parse bundled manifest schema")
			return
		}
		compiled.resolved, compiled.err = s.Resolve(nil)
	})
	return compiled.resolved, compiled.err
}

// PurgeReserved strips top-level "$"-prefixed keys (schema annotations
// users copy from pack templates) before validation and persistence.
func PurgeReserved(raw json.RawMessage) (json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.InvalidArgumentf("manifest is not a JSON object: %v", err)
	}

	for key := range doc {
		if strings.HasPrefix(key, "$") {
			delete(doc, key)
		}
	}

	purged, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-encode manifest")
	}
	return purged, nil
}

// ValidateManifest checks a raw candidate manifest and returns its
// parsed form. Reserved ids are rejected before schema evaluation.
func ValidateManifest(raw json.RawMessage) (*pack.Manifest, error) {
	purged, err := PurgeReserved(raw)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal(purged, &doc); err != nil {
		return nil, errors.InvalidArgumentf("manifest is not a JSON object: %v", err)
	}

	if id, _ := doc["id"].(string); id != "" {
		for _, reserved := range reservedIDs {
			if id == reserved {
				return nil, errors.InvalidArgumentf("%s is a reserved id", id)
			}
		}
	}

	res, err := resolved()
	if err != nil {
		return nil, err
	}

	if err := res.Validate(doc); err != nil {
		return nil, errors.InvalidArgumentf("manifest does not match the pack schema: %v", err)
	}

	var manifest pack.Manifest
	if err := json.Unmarshal(purged, &manifest); err != nil {
		return nil, errors.InvalidArgumentf("manifest could not be decoded: %v", err)
	}

	return &manifest, nil
}
