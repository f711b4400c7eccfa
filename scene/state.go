package scene

import (
	"encoding/json"
	"fmt"
)

// Node is one element of the scene tree. Children are ordered; the order is
// semantically meaningful and preserved exactly as constructed.
type Node struct {
	Kind     Kind    `json:"kind"`
	Params   Params  `json:"params,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// State is the full versioned document exchanged with a consumer.
type State struct {
	Version int   `json:"version"`
	Root    *Node `json:"root"`
}

// UnmarshalJSON decodes a node, dispatching the params payload to the typed
// parameter struct for the node's kind and validating it.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind     Kind            `json:"kind"`
		Params   json.RawMessage `json:"params"`
		Children []*Node         `json:"children"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !knownKind(raw.Kind) {
		return fmt.Errorf("unknown node kind %q", raw.Kind)
	}
	params, err := decodeParams(raw.Kind, raw.Params)
	if err != nil {
		return err
	}
	n.Kind = raw.Kind
	n.Params = params
	n.Children = raw.Children
	return nil
}

// DecodeState parses and validates a serialized document. A well-formed
// document round-trips losslessly through Marshal and DecodeState.
func DecodeState(data []byte) (*State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the document version, that the tree is rooted in a root
// node, and every node's kind, params, and parent->child placement.
func (s *State) Validate() error {
	if s.Version != Version {
		return fmt.Errorf("document version %d does not match schema revision %d", s.Version, Version)
	}
	if s.Root == nil {
		return fmt.Errorf("document has no root node")
	}
	if s.Root.Kind != KindRoot {
		return fmt.Errorf("document root has kind %q, want %q", s.Root.Kind, KindRoot)
	}
	return s.Root.validate()
}

func (n *Node) validate() error {
	if !knownKind(n.Kind) {
		return fmt.Errorf("unknown node kind %q", n.Kind)
	}
	if n.Kind == KindRoot && n.Params != nil {
		return &ParamError{Kind: KindRoot, Reason: "the root node takes no params"}
	}
	if n.Params != nil {
		if err := n.Params.Validate(); err != nil {
			return err
		}
	} else if req := paramFields[n.Kind].required; len(req) > 0 {
		return missingField(n.Kind, req[0])
	}
	for _, c := range n.Children {
		if !AllowedChild(n.Kind, c.Kind) {
			return &StructuralError{Parent: n.Kind, Child: c.Kind}
		}
		if err := c.validate(); err != nil {
			return err
		}
	}
	return nil
}
