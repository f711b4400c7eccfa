package scene

// Params is the parameter payload of a node. Each kind has its own concrete
// parameter type; Validate checks enum values, tuple arity, and required
// fields whose absence is observable on the typed value.
type Params interface {
	Validate() error
}

// ParseFormat names the file format of a downloaded structure.
type ParseFormat string

const (
	FormatMmcif ParseFormat = "mmcif"
	FormatBcif  ParseFormat = "bcif"
	FormatPdb   ParseFormat = "pdb"
)

// StructureKind selects how a parsed model is expanded into a structure.
type StructureKind string

const (
	StructureModel           StructureKind = "model"
	StructureAssembly        StructureKind = "assembly"
	StructureSymmetry        StructureKind = "symmetry"
	StructureCrystalSymmetry StructureKind = "crystal-symmetry"
)

// ComponentSelector names a predefined subset of a structure.
type ComponentSelector string

const (
	SelectorAll      ComponentSelector = "all"
	SelectorPolymer  ComponentSelector = "polymer"
	SelectorProtein  ComponentSelector = "protein"
	SelectorNucleic  ComponentSelector = "nucleic"
	SelectorBranched ComponentSelector = "branched"
	SelectorLigand   ComponentSelector = "ligand"
	SelectorIon      ComponentSelector = "ion"
	SelectorWater    ComponentSelector = "water"
)

// RepresentationType names a rendering style for a component.
type RepresentationType string

const (
	RepresentationBallAndStick RepresentationType = "ball-and-stick"
	RepresentationCartoon      RepresentationType = "cartoon"
	RepresentationSurface      RepresentationType = "surface"
)

// AddressSchema names the granularity at which an annotation addresses a
// structure (whole structure, chain, residue, atom, and the auth_ variants).
type AddressSchema string

const (
	SchemaWholeStructure   AddressSchema = "whole-structure"
	SchemaEntity           AddressSchema = "entity"
	SchemaChain            AddressSchema = "chain"
	SchemaAuthChain        AddressSchema = "auth-chain"
	SchemaResidue          AddressSchema = "residue"
	SchemaAuthResidue      AddressSchema = "auth-residue"
	SchemaResidueRange     AddressSchema = "residue-range"
	SchemaAuthResidueRange AddressSchema = "auth-residue-range"
	SchemaAtom             AddressSchema = "atom"
	SchemaAuthAtom         AddressSchema = "auth-atom"
)

// AnnotationFormat names the encoding of an external annotation resource.
type AnnotationFormat string

const (
	AnnotationCif  AnnotationFormat = "cif"
	AnnotationJSON AnnotationFormat = "json"
)

// Int returns a pointer to v, for the optional integer selector fields.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for optional float fields such as the
// structure symmetry radius.
func Float(v float64) *float64 { return &v }

// InlineSelector carries the addressing fields shared by inline label, color,
// and focus annotations. All fields are optional; integer selectors are
// pointers so that index 0 stays representable. End indices are inclusive.
// residue_index and atom_index are 0-based positions in the source file.
type InlineSelector struct {
	LabelEntityID string `json:"label_entity_id,omitempty"`
	LabelAsymID   string `json:"label_asym_id,omitempty"`
	AuthAsymID    string `json:"auth_asym_id,omitempty"`
	LabelSeqID    *int   `json:"label_seq_id,omitempty"`
	AuthSeqID     *int   `json:"auth_seq_id,omitempty"`
	PdbxInsCode   string `json:"pdbx_PDB_ins_code,omitempty"`
	BegLabelSeqID *int   `json:"beg_label_seq_id,omitempty"`
	EndLabelSeqID *int   `json:"end_label_seq_id,omitempty"`
	BegAuthSeqID  *int   `json:"beg_auth_seq_id,omitempty"`
	EndAuthSeqID  *int   `json:"end_auth_seq_id,omitempty"`
	ResidueIndex  *int   `json:"residue_index,omitempty"`
	AtomID        *int   `json:"atom_id,omitempty"`
	AtomIndex     *int   `json:"atom_index,omitempty"`
}

// DownloadParams references a structure file by URL. The core never fetches
// it; the URL is carried for the consumer.
type DownloadParams struct {
	URL string `json:"url"`
}

func (p DownloadParams) Validate() error {
	if p.URL == "" {
		return missingField(KindDownload, "url")
	}
	return nil
}

// ParseParams tells the consumer how to parse a downloaded file.
type ParseParams struct {
	Format ParseFormat `json:"format"`
}

func (p ParseParams) Validate() error {
	switch p.Format {
	case FormatMmcif, FormatBcif, FormatPdb:
		return nil
	case "":
		return missingField(KindParse, "format")
	}
	return badEnum(KindParse, "format", string(p.Format))
}

// StructureParams selects a structure from a parsed file.
type StructureParams struct {
	Kind StructureKind `json:"kind"`
	// AssemblyID names which assembly to load.
	AssemblyID string `json:"assembly_id,omitempty"`
	// AssemblyIndex is the 0-based assembly index.
	AssemblyIndex *int `json:"assembly_index,omitempty"`
	// ModelIndex is the 0-based model index when multiple NMR frames are present.
	ModelIndex *int `json:"model_index,omitempty"`
	// BlockIndex is the 0-based block index when multiple data blocks are present.
	BlockIndex *int `json:"block_index,omitempty"`
	// BlockHeader references a data block by its header.
	BlockHeader string `json:"block_header,omitempty"`
	// Radius around model coordinates when loading symmetry mates.
	Radius *float64 `json:"radius,omitempty"`
	// IjkMin and IjkMax are the bottom-left and top-right Miller indices.
	IjkMin []int `json:"ijk_min,omitempty"`
	IjkMax []int `json:"ijk_max,omitempty"`
}

func (p StructureParams) Validate() error {
	switch p.Kind {
	case StructureModel, StructureAssembly, StructureSymmetry, StructureCrystalSymmetry:
	case "":
		return missingField(KindStructure, "kind")
	default:
		return badEnum(KindStructure, "kind", string(p.Kind))
	}
	if err := intTuple(KindStructure, "ijk_min", p.IjkMin, 3); err != nil {
		return err
	}
	return intTuple(KindStructure, "ijk_max", p.IjkMax, 3)
}

// ComponentParams selects a named subset of a structure.
type ComponentParams struct {
	Selector ComponentSelector `json:"selector"`
}

func (p ComponentParams) Validate() error {
	switch p.Selector {
	case SelectorAll, SelectorPolymer, SelectorProtein, SelectorNucleic,
		SelectorBranched, SelectorLigand, SelectorIon, SelectorWater:
		return nil
	case "":
		return missingField(KindComponent, "selector")
	}
	return badEnum(KindComponent, "selector", string(p.Selector))
}

// RepresentationParams applies a rendering style to a component. Color is a
// named color or a hex string.
type RepresentationParams struct {
	Type  RepresentationType `json:"type"`
	Color string             `json:"color,omitempty"`
}

func (p RepresentationParams) Validate() error {
	switch p.Type {
	case RepresentationBallAndStick, RepresentationCartoon, RepresentationSurface:
		return nil
	case "":
		return missingField(KindRepresentation, "type")
	}
	return badEnum(KindRepresentation, "type", string(p.Type))
}

// LabelParams attaches an inline text label to the addressed part of a
// structure.
type LabelParams struct {
	InlineSelector
	Schema AddressSchema `json:"schema"`
	Text   string        `json:"text"`
}

func (p LabelParams) Validate() error {
	if err := addressSchema(KindLabel, p.Schema); err != nil {
		return err
	}
	if p.Text == "" {
		return missingField(KindLabel, "text")
	}
	return nil
}

// LabelFromCifParams sources labels from a CIF category of the parsed file.
type LabelFromCifParams struct {
	Schema       AddressSchema `json:"schema"`
	CategoryName string        `json:"category_name"`
}

func (p LabelFromCifParams) Validate() error {
	if err := addressSchema(KindLabelFromCif, p.Schema); err != nil {
		return err
	}
	if p.CategoryName == "" {
		return missingField(KindLabelFromCif, "category_name")
	}
	return nil
}

// LabelFromURLParams sources labels from an external annotation resource.
type LabelFromURLParams struct {
	Schema AddressSchema    `json:"schema"`
	URL    string           `json:"url"`
	Format AnnotationFormat `json:"format"`
}

func (p LabelFromURLParams) Validate() error {
	if err := addressSchema(KindLabelFromURL, p.Schema); err != nil {
		return err
	}
	if p.URL == "" {
		return missingField(KindLabelFromURL, "url")
	}
	return annotationFormat(KindLabelFromURL, p.Format)
}

// LabelFromJSONParams sources labels from an inline JSON payload.
type LabelFromJSONParams struct {
	Schema AddressSchema `json:"schema"`
	Data   string        `json:"data"`
}

func (p LabelFromJSONParams) Validate() error {
	if err := addressSchema(KindLabelFromJSON, p.Schema); err != nil {
		return err
	}
	if p.Data == "" {
		return missingField(KindLabelFromJSON, "data")
	}
	return nil
}

// ColorParams colors the addressed part of a representation. Used by both
// the color and color-from-inline kinds.
type ColorParams struct {
	InlineSelector
	Schema  AddressSchema `json:"schema"`
	Color   string        `json:"color"`
	Tooltip string        `json:"tooltip,omitempty"`
}

func (p ColorParams) Validate() error {
	if err := addressSchema(KindColor, p.Schema); err != nil {
		return err
	}
	if p.Color == "" {
		return missingField(KindColor, "color")
	}
	return nil
}

// ColorFromCifParams sources colors from a CIF category of the parsed file.
type ColorFromCifParams struct {
	Schema       AddressSchema `json:"schema"`
	CategoryName string        `json:"category_name"`
}

func (p ColorFromCifParams) Validate() error {
	if err := addressSchema(KindColorFromCif, p.Schema); err != nil {
		return err
	}
	if p.CategoryName == "" {
		return missingField(KindColorFromCif, "category_name")
	}
	return nil
}

// ColorFromURLParams sources colors from an external annotation resource.
type ColorFromURLParams struct {
	Schema AddressSchema    `json:"schema"`
	URL    string           `json:"url"`
	Format AnnotationFormat `json:"format"`
}

func (p ColorFromURLParams) Validate() error {
	if err := addressSchema(KindColorFromURL, p.Schema); err != nil {
		return err
	}
	if p.URL == "" {
		return missingField(KindColorFromURL, "url")
	}
	return annotationFormat(KindColorFromURL, p.Format)
}

// ColorFromJSONParams sources colors from an inline JSON payload.
type ColorFromJSONParams struct {
	Schema AddressSchema `json:"schema"`
	Data   string        `json:"data"`
}

func (p ColorFromJSONParams) Validate() error {
	if err := addressSchema(KindColorFromJSON, p.Schema); err != nil {
		return err
	}
	if p.Data == "" {
		return missingField(KindColorFromJSON, "data")
	}
	return nil
}

// FocusParams directs the camera focus to the addressed part of a structure
// or representation.
type FocusParams struct {
	InlineSelector
	Schema AddressSchema `json:"schema"`
}

func (p FocusParams) Validate() error {
	return addressSchema(KindFocus, p.Schema)
}

// TransformParams carries a geometric transform for a structure. The matrix
// fields are column-major, multiplied from the left. The core carries the
// values; it performs no coordinate math.
type TransformParams struct {
	// Transformation is a full 4x4 matrix (16 values).
	Transformation []float64 `json:"transformation,omitempty"`
	// Rotation is a 3x3 matrix (9 values).
	Rotation    []float64 `json:"rotation,omitempty"`
	Translation []float64 `json:"translation,omitempty"`
}

func (p TransformParams) Validate() error {
	if err := floatTuple(KindTransform, "transformation", p.Transformation, 16); err != nil {
		return err
	}
	if err := floatTuple(KindTransform, "rotation", p.Rotation, 9); err != nil {
		return err
	}
	return floatTuple(KindTransform, "translation", p.Translation, 3)
}

// CameraParams positions the camera. All fields are required.
type CameraParams struct {
	Position  []float64 `json:"position"`
	Direction []float64 `json:"direction"`
	Radius    float64   `json:"radius"`
}

func (p CameraParams) Validate() error {
	if p.Position == nil {
		return missingField(KindCamera, "position")
	}
	if err := floatTuple(KindCamera, "position", p.Position, 3); err != nil {
		return err
	}
	if p.Direction == nil {
		return missingField(KindCamera, "direction")
	}
	return floatTuple(KindCamera, "direction", p.Direction, 3)
}

func addressSchema(kind Kind, s AddressSchema) error {
	switch s {
	case SchemaWholeStructure, SchemaEntity, SchemaChain, SchemaAuthChain,
		SchemaResidue, SchemaAuthResidue, SchemaResidueRange,
		SchemaAuthResidueRange, SchemaAtom, SchemaAuthAtom:
		return nil
	case "":
		return missingField(kind, "schema")
	}
	return badEnum(kind, "schema", string(s))
}

func annotationFormat(kind Kind, f AnnotationFormat) error {
	switch f {
	case AnnotationCif, AnnotationJSON:
		return nil
	case "":
		return missingField(kind, "format")
	}
	return badEnum(kind, "format", string(f))
}

func floatTuple(kind Kind, field string, v []float64, arity int) error {
	if v != nil && len(v) != arity {
		return badArity(kind, field, arity, len(v))
	}
	return nil
}

func intTuple(kind Kind, field string, v []int, arity int) error {
	if v != nil && len(v) != arity {
		return badArity(kind, field, arity, len(v))
	}
	return nil
}
