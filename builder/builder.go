// Package builder provides a fluent API for constructing scene-description
// documents. Handles are scoped views into one shared tree: an operation
// either attaches a new node and returns a handle scoped to it, or attaches
// an annotation child and returns the receiver so further annotations can be
// chained without re-navigating. Every operation validates structure and
// params before attaching; on failure the tree is left untouched.
//
// Example:
//
//	b := builder.NewRoot()
//	d, err := b.Download("https://example.org/1cbs.cif")
//	p, err := d.Parse(scene.FormatMmcif)
//	s, err := p.Structure(scene.StructureParams{})
//	c, err := s.Component(scene.SelectorProtein)
//	_, err = c.Representation(scene.RepresentationParams{Type: scene.RepresentationCartoon})
//	doc := b.State()
package builder

import (
	"github.com/molscene/go-molscene/scene"
)

// Tree is the arena backing one document under construction. Nodes live in a
// flat slice; parent->child links are index pairs, so a node is created and
// attached exactly once and cycles cannot occur.
type Tree struct {
	nodes []node
}

type node struct {
	kind     scene.Kind
	params   scene.Params
	children []int
}

// handle is a scoped view into a tree: the node further operations attach to.
type handle struct {
	t   *Tree
	idx int
}

// Root is the handle scoped to the document root.
type Root struct{ handle }

// Download is the handle scoped to a download node.
type Download struct{ handle }

// Parse is the handle scoped to a parse node.
type Parse struct{ handle }

// Structure is the handle scoped to a structure node. Annotation operations
// (labels, focus, transforms) chain on it directly.
type Structure struct{ handle }

// Component is the handle scoped to a component node.
type Component struct{ handle }

// Representation is the handle scoped to a representation node. Coloring
// operations chain on it directly.
type Representation struct{ handle }

// NewRoot starts a new document and returns the handle scoped to its root.
func NewRoot() *Root {
	t := &Tree{nodes: []node{{kind: scene.KindRoot}}}
	return &Root{handle{t: t, idx: 0}}
}

// append validates and attaches a new child node under parent, returning its
// index. On any validation failure no node is attached.
func (t *Tree) append(parent int, kind scene.Kind, params scene.Params) (int, error) {
	if !scene.AllowedChild(t.nodes[parent].kind, kind) {
		return 0, &scene.StructuralError{Parent: t.nodes[parent].kind, Child: kind}
	}
	if params != nil {
		if err := params.Validate(); err != nil {
			return 0, err
		}
	}
	t.nodes = append(t.nodes, node{kind: kind, params: params})
	idx := len(t.nodes) - 1
	t.nodes[parent].children = append(t.nodes[parent].children, idx)
	return idx, nil
}

// State materializes the document rooted at the tree's root. It is a pure
// read of the current state; there is no finalize step, and the same handle
// can keep extending the tree afterwards.
func (h handle) State() *scene.State {
	return &scene.State{Version: scene.Version, Root: h.t.materialize(0)}
}

func (t *Tree) materialize(idx int) *scene.Node {
	n := t.nodes[idx]
	out := &scene.Node{Kind: n.kind, Params: n.params}
	for _, c := range n.children {
		out.Children = append(out.Children, t.materialize(c))
	}
	return out
}

// Download attaches a download node referencing a structure file by URL and
// returns a handle scoped to it.
func (r *Root) Download(url string) (*Download, error) {
	idx, err := r.t.append(r.idx, scene.KindDownload, scene.DownloadParams{URL: url})
	if err != nil {
		return nil, err
	}
	return &Download{handle{t: r.t, idx: idx}}, nil
}

// Camera attaches a camera node and returns the root handle, so scene
// branches and the camera can be set up from the same handle.
func (r *Root) Camera(params scene.CameraParams) (*Root, error) {
	if _, err := r.t.append(r.idx, scene.KindCamera, params); err != nil {
		return nil, err
	}
	return r, nil
}

// Parse attaches a parse node for the given format.
func (d *Download) Parse(format scene.ParseFormat) (*Parse, error) {
	idx, err := d.t.append(d.idx, scene.KindParse, scene.ParseParams{Format: format})
	if err != nil {
		return nil, err
	}
	return &Parse{handle{t: d.t, idx: idx}}, nil
}

// Structure attaches a structure node. An empty params.Kind defaults to
// "model".
func (p *Parse) Structure(params scene.StructureParams) (*Structure, error) {
	if params.Kind == "" {
		params.Kind = scene.StructureModel
	}
	idx, err := p.t.append(p.idx, scene.KindStructure, params)
	if err != nil {
		return nil, err
	}
	return &Structure{handle{t: p.t, idx: idx}}, nil
}

// Component attaches a component node selecting a subset of the structure.
// An empty selector defaults to "all". A structure handle may spawn any
// number of sibling components.
func (s *Structure) Component(selector scene.ComponentSelector) (*Component, error) {
	if selector == "" {
		selector = scene.SelectorAll
	}
	idx, err := s.t.append(s.idx, scene.KindComponent, scene.ComponentParams{Selector: selector})
	if err != nil {
		return nil, err
	}
	return &Component{handle{t: s.t, idx: idx}}, nil
}

// Label attaches an inline label and returns the structure handle. Repeated
// calls append further label children in call order.
func (s *Structure) Label(params scene.LabelParams) (*Structure, error) {
	if _, err := s.t.append(s.idx, scene.KindLabel, params); err != nil {
		return nil, err
	}
	return s, nil
}

// LabelFromCif attaches a label sourced from a CIF category of the parsed
// file and returns the structure handle.
func (s *Structure) LabelFromCif(params scene.LabelFromCifParams) (*Structure, error) {
	if _, err := s.t.append(s.idx, scene.KindLabelFromCif, params); err != nil {
		return nil, err
	}
	return s, nil
}

// LabelFromURL attaches a label sourced from an external annotation resource
// and returns the structure handle.
func (s *Structure) LabelFromURL(params scene.LabelFromURLParams) (*Structure, error) {
	if _, err := s.t.append(s.idx, scene.KindLabelFromURL, params); err != nil {
		return nil, err
	}
	return s, nil
}

// LabelFromJSON attaches a label sourced from an inline JSON payload and
// returns the structure handle.
func (s *Structure) LabelFromJSON(params scene.LabelFromJSONParams) (*Structure, error) {
	if _, err := s.t.append(s.idx, scene.KindLabelFromJSON, params); err != nil {
		return nil, err
	}
	return s, nil
}

// Focus attaches a focus annotation and returns the structure handle.
func (s *Structure) Focus(params scene.FocusParams) (*Structure, error) {
	if _, err := s.t.append(s.idx, scene.KindFocus, params); err != nil {
		return nil, err
	}
	return s, nil
}

// Transform attaches a geometric transform and returns the structure handle.
func (s *Structure) Transform(params scene.TransformParams) (*Structure, error) {
	if _, err := s.t.append(s.idx, scene.KindTransform, params); err != nil {
		return nil, err
	}
	return s, nil
}

// Representation attaches a representation node styling the component. An
// empty params.Type defaults to "cartoon".
func (c *Component) Representation(params scene.RepresentationParams) (*Representation, error) {
	if params.Type == "" {
		params.Type = scene.RepresentationCartoon
	}
	idx, err := c.t.append(c.idx, scene.KindRepresentation, params)
	if err != nil {
		return nil, err
	}
	return &Representation{handle{t: c.t, idx: idx}}, nil
}

// Color attaches an inline color and returns the representation handle.
// Repeated calls append further color children in call order.
func (r *Representation) Color(params scene.ColorParams) (*Representation, error) {
	if _, err := r.t.append(r.idx, scene.KindColor, params); err != nil {
		return nil, err
	}
	return r, nil
}

// ColorFromCif attaches a color sourced from a CIF category of the parsed
// file and returns the representation handle.
func (r *Representation) ColorFromCif(params scene.ColorFromCifParams) (*Representation, error) {
	if _, err := r.t.append(r.idx, scene.KindColorFromCif, params); err != nil {
		return nil, err
	}
	return r, nil
}

// ColorFromURL attaches a color sourced from an external annotation resource
// and returns the representation handle.
func (r *Representation) ColorFromURL(params scene.ColorFromURLParams) (*Representation, error) {
	if _, err := r.t.append(r.idx, scene.KindColorFromURL, params); err != nil {
		return nil, err
	}
	return r, nil
}

// ColorFromJSON attaches a color sourced from an inline JSON payload and
// returns the representation handle.
func (r *Representation) ColorFromJSON(params scene.ColorFromJSONParams) (*Representation, error) {
	if _, err := r.t.append(r.idx, scene.KindColorFromJSON, params); err != nil {
		return nil, err
	}
	return r, nil
}

// Focus attaches a focus annotation and returns the representation handle.
func (r *Representation) Focus(params scene.FocusParams) (*Representation, error) {
	if _, err := r.t.append(r.idx, scene.KindFocus, params); err != nil {
		return nil, err
	}
	return r, nil
}
