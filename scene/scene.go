// Package scene defines the molecular scene-description format: a versioned
// tree of typed nodes (download, parse, structure, component, representation,
// annotations, camera) that tells a viewer what to render and how, without
// containing any rendering logic itself.
package scene

// Version is the schema revision stamped on every produced document.
// A consumer must understand this revision to interpret the tree.
const Version = 1

// Kind identifies the type of a scene node and determines which parameter
// shape and which child kinds are legal for it.
type Kind string

const (
	KindRoot            Kind = "root"
	KindDownload        Kind = "download"
	KindParse           Kind = "parse"
	KindStructure       Kind = "structure"
	KindComponent       Kind = "component"
	KindRepresentation  Kind = "representation"
	KindLabel           Kind = "label"
	KindLabelFromCif    Kind = "label-from-cif"
	KindLabelFromURL    Kind = "label-from-url"
	KindLabelFromJSON   Kind = "label-from-json"
	KindColor           Kind = "color"
	KindColorFromCif    Kind = "color-from-cif"
	KindColorFromInline Kind = "color-from-inline"
	KindColorFromJSON   Kind = "color-from-json"
	KindColorFromURL    Kind = "color-from-url"
	KindFocus           Kind = "focus-from-inline"
	KindTransform       Kind = "transform"
	KindCamera          Kind = "camera"
)

// Kinds returns every node kind in the schema.
func Kinds() []Kind {
	return []Kind{
		KindRoot,
		KindDownload,
		KindParse,
		KindStructure,
		KindComponent,
		KindRepresentation,
		KindLabel,
		KindLabelFromCif,
		KindLabelFromURL,
		KindLabelFromJSON,
		KindColor,
		KindColorFromCif,
		KindColorFromInline,
		KindColorFromJSON,
		KindColorFromURL,
		KindFocus,
		KindTransform,
		KindCamera,
	}
}

// allowedChildren is the parent->child legality table. A kind absent from
// the table is a leaf.
var allowedChildren = map[Kind][]Kind{
	KindRoot:     {KindDownload, KindCamera},
	KindDownload: {KindParse},
	KindParse:    {KindStructure},
	KindStructure: {
		KindComponent,
		KindLabel,
		KindLabelFromCif,
		KindLabelFromURL,
		KindLabelFromJSON,
		KindFocus,
		KindTransform,
	},
	KindComponent: {KindRepresentation},
	KindRepresentation: {
		KindColor,
		KindColorFromCif,
		KindColorFromInline,
		KindColorFromJSON,
		KindColorFromURL,
		KindFocus,
	},
}

// AllowedChild reports whether child may be attached under parent.
func AllowedChild(parent, child Kind) bool {
	for _, k := range allowedChildren[parent] {
		if k == child {
			return true
		}
	}
	return false
}
