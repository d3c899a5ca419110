package catalog

import (
	"bytes"
	"encoding/json"
)

// EdgeList holds an entity's relation list in exactly one of two states:
// disaggregated id references (the form manifests store) or resolved
// edges, one hop deep. The state is fixed at construction; aggregation
// replaces the whole list rather than mutating it, so an aggregated list
// is never re-resolved.
type EdgeList[R, E any] struct {
	refs       []R
	edges      []E
	aggregated bool
}

// NewRefs returns a disaggregated list.
func NewRefs[R, E any](refs []R) *EdgeList[R, E] {
	return &EdgeList[R, E]{refs: refs}
}

// NewEdges returns an aggregated list. A nil slice becomes an empty one
// so the aggregated state survives a marshal round-trip.
func NewEdges[R, E any](edges []E) *EdgeList[R, E] {
	if edges == nil {
		edges = []E{}
	}
	return &EdgeList[R, E]{edges: edges, aggregated: true}
}

// Aggregated reports whether the list carries resolved edges. A nil list
// counts as disaggregated and empty.
func (l *EdgeList[R, E]) Aggregated() bool {
	return l != nil && l.aggregated
}

// Refs returns the disaggregated references, nil when aggregated.
func (l *EdgeList[R, E]) Refs() []R {
	if l == nil {
		return nil
	}
	return l.refs
}

// Edges returns the resolved edges, nil when disaggregated.
func (l *EdgeList[R, E]) Edges() []E {
	if l == nil {
		return nil
	}
	return l.edges
}

// Len returns the number of entries in whichever state the list is in.
func (l *EdgeList[R, E]) Len() int {
	if l == nil {
		return 0
	}
	if l.aggregated {
		return len(l.edges)
	}
	return len(l.refs)
}

// MarshalJSON writes references as a bare array (manifest wire form) and
// edges wrapped in an "edges" object.
func (l *EdgeList[R, E]) MarshalJSON() ([]byte, error) {
	if l.aggregated {
		return json.Marshal(struct {
			Edges []E `json:"edges"`
		}{Edges: l.edges})
	}
	return json.Marshal(l.refs)
}

// UnmarshalJSON discriminates on the wire shape: arrays are references,
// objects carry edges.
func (l *EdgeList[R, E]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapper struct {
			Edges []E `json:"edges"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return err
		}
		if wrapper.Edges == nil {
			wrapper.Edges = []E{}
		}
		*l = EdgeList[R, E]{edges: wrapper.Edges, aggregated: true}
		return nil
	}

	var refs []R
	if err := json.Unmarshal(data, &refs); err != nil {
		return err
	}
	*l = EdgeList[R, E]{refs: refs}
	return nil
}
