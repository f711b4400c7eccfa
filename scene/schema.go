package scene

import (
	"encoding/json"
	"errors"
	"fmt"
)

// fieldSpec declares the legal parameter keys for one kind. A key outside
// required+optional is rejected, not silently retained.
type fieldSpec struct {
	required []string
	optional []string
}

// inlineFields are the addressing keys shared by inline label, color, and
// focus annotations.
var inlineFields = []string{
	"label_entity_id",
	"label_asym_id",
	"auth_asym_id",
	"label_seq_id",
	"auth_seq_id",
	"pdbx_PDB_ins_code",
	"beg_label_seq_id",
	"end_label_seq_id",
	"beg_auth_seq_id",
	"end_auth_seq_id",
	"residue_index",
	"atom_id",
	"atom_index",
}

// paramFields is the per-kind parameter key table consulted when decoding a
// document. The root kind takes no params and is absent.
var paramFields = map[Kind]fieldSpec{
	KindDownload: {required: []string{"url"}},
	KindParse:    {required: []string{"format"}},
	KindStructure: {
		required: []string{"kind"},
		optional: []string{
			"assembly_id", "assembly_index", "model_index",
			"block_index", "block_header", "radius", "ijk_min", "ijk_max",
		},
	},
	KindComponent: {required: []string{"selector"}},
	KindRepresentation: {
		required: []string{"type"},
		optional: []string{"color"},
	},
	KindLabel: {
		required: []string{"schema", "text"},
		optional: inlineFields,
	},
	KindLabelFromCif:  {required: []string{"schema", "category_name"}},
	KindLabelFromURL:  {required: []string{"schema", "url", "format"}},
	KindLabelFromJSON: {required: []string{"schema", "data"}},
	KindColor: {
		required: []string{"schema", "color"},
		optional: append([]string{"tooltip"}, inlineFields...),
	},
	KindColorFromInline: {
		required: []string{"schema", "color"},
		optional: append([]string{"tooltip"}, inlineFields...),
	},
	KindColorFromCif:  {required: []string{"schema", "category_name"}},
	KindColorFromURL:  {required: []string{"schema", "url", "format"}},
	KindColorFromJSON: {required: []string{"schema", "data"}},
	KindFocus: {
		required: []string{"schema"},
		optional: inlineFields,
	},
	KindTransform: {
		optional: []string{"transformation", "rotation", "translation"},
	},
	KindCamera: {required: []string{"position", "direction", "radius"}},
}

func knownKind(k Kind) bool {
	if k == KindRoot {
		return true
	}
	_, ok := paramFields[k]
	return ok
}

func (f fieldSpec) declared(key string) bool {
	for _, k := range f.required {
		if k == key {
			return true
		}
	}
	for _, k := range f.optional {
		if k == key {
			return true
		}
	}
	return false
}

// decodeParams decodes and validates the raw params payload of a node of the
// given kind: every present key must be declared for the kind, every required
// key must be present, and the typed value must pass Validate.
func decodeParams(kind Kind, raw json.RawMessage) (Params, error) {
	if kind == KindRoot {
		if len(raw) > 0 {
			return nil, &ParamError{Kind: kind, Reason: "the root node takes no params"}
		}
		return nil, nil
	}
	spec := paramFields[kind]

	keys := map[string]json.RawMessage{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &keys); err != nil {
			return nil, &ParamError{Kind: kind, Reason: "params must be an object"}
		}
	}
	for key := range keys {
		if !spec.declared(key) {
			return nil, unknownField(kind, key)
		}
	}
	for _, key := range spec.required {
		if _, ok := keys[key]; !ok {
			return nil, missingField(kind, key)
		}
	}
	// An absent params object stays absent, so documents round-trip exactly.
	if len(raw) == 0 {
		return nil, nil
	}

	switch kind {
	case KindDownload:
		return unmarshalParams[DownloadParams](kind, raw)
	case KindParse:
		return unmarshalParams[ParseParams](kind, raw)
	case KindStructure:
		return unmarshalParams[StructureParams](kind, raw)
	case KindComponent:
		return unmarshalParams[ComponentParams](kind, raw)
	case KindRepresentation:
		return unmarshalParams[RepresentationParams](kind, raw)
	case KindLabel:
		return unmarshalParams[LabelParams](kind, raw)
	case KindLabelFromCif:
		return unmarshalParams[LabelFromCifParams](kind, raw)
	case KindLabelFromURL:
		return unmarshalParams[LabelFromURLParams](kind, raw)
	case KindLabelFromJSON:
		return unmarshalParams[LabelFromJSONParams](kind, raw)
	case KindColor, KindColorFromInline:
		return unmarshalParams[ColorParams](kind, raw)
	case KindColorFromCif:
		return unmarshalParams[ColorFromCifParams](kind, raw)
	case KindColorFromURL:
		return unmarshalParams[ColorFromURLParams](kind, raw)
	case KindColorFromJSON:
		return unmarshalParams[ColorFromJSONParams](kind, raw)
	case KindFocus:
		return unmarshalParams[FocusParams](kind, raw)
	case KindTransform:
		return unmarshalParams[TransformParams](kind, raw)
	case KindCamera:
		return unmarshalParams[CameraParams](kind, raw)
	}
	return nil, fmt.Errorf("unknown node kind %q", kind)
}

func unmarshalParams[T Params](kind Kind, raw json.RawMessage) (Params, error) {
	var p T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				return nil, &ParamError{Kind: kind, Field: typeErr.Field, Reason: "has wrong type"}
			}
			return nil, &ParamError{Kind: kind, Reason: err.Error()}
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
