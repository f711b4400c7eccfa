package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func testDocument() *State {
	return &State{
		Version: Version,
		Root: &Node{
			Kind: KindRoot,
			Children: []*Node{
				{
					Kind:   KindDownload,
					Params: DownloadParams{URL: "https://example.org/1cbs.cif"},
					Children: []*Node{
						{
							Kind:   KindParse,
							Params: ParseParams{Format: FormatMmcif},
							Children: []*Node{
								{
									Kind: KindStructure,
									Params: StructureParams{
										Kind:       StructureAssembly,
										AssemblyID: "1",
										Radius:     Float(5),
										IjkMin:     []int{-1, -1, -1},
										IjkMax:     []int{1, 1, 1},
									},
									Children: []*Node{
										{
											Kind: KindLabel,
											Params: LabelParams{
												InlineSelector: InlineSelector{AuthAsymID: "A", AuthSeqID: Int(120)},
												Schema:         SchemaAuthResidue,
												Text:           "Residue 1",
											},
										},
										{
											Kind:   KindComponent,
											Params: ComponentParams{Selector: SelectorProtein},
											Children: []*Node{
												{
													Kind:   KindRepresentation,
													Params: RepresentationParams{Type: RepresentationCartoon, Color: "white"},
													Children: []*Node{
														{
															Kind: KindColor,
															Params: ColorParams{
																InlineSelector: InlineSelector{LabelAsymID: "A", LabelSeqID: Int(64)},
																Schema:         SchemaResidue,
																Color:          "red",
																Tooltip:        "binding site",
															},
														},
													},
												},
											},
										},
										{
											Kind: KindTransform,
											Params: TransformParams{
												Rotation:    []float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
												Translation: []float64{0, 0, 1},
											},
										},
									},
								},
							},
						},
					},
				},
				{
					Kind: KindCamera,
					Params: CameraParams{
						Position:  []float64{0, 0, 100},
						Direction: []float64{0, 0, -1},
						Radius:    50,
					},
				},
			},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	doc := testDocument()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded, err := DecodeState(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(doc, decoded) {
		t.Errorf("round-trip changed the document:\nbuilt:   %+v\ndecoded: %+v", doc, decoded)
	}

	again, err := json.Marshal(decoded)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("serialization not stable:\nfirst:  %s\nsecond: %s", data, again)
	}
}

func TestDecodePreservesChildOrder(t *testing.T) {
	doc := testDocument()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded, err := DecodeState(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	structure := decoded.Root.Children[0].Children[0].Children[0]
	kinds := []Kind{}
	for _, c := range structure.Children {
		kinds = append(kinds, c.Kind)
	}
	want := []Kind{KindLabel, KindComponent, KindTransform}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("structure children = %v, want %v", kinds, want)
	}
}

func TestDecodeRejectsVersionMismatch(t *testing.T) {
	if _, err := DecodeState([]byte(`{"version":99,"root":{"kind":"root"}}`)); err == nil {
		t.Error("version 99 accepted")
	}
}

func TestDecodeRejectsMissingRoot(t *testing.T) {
	if _, err := DecodeState([]byte(`{"version":1}`)); err == nil {
		t.Error("document without root accepted")
	}
	if _, err := DecodeState([]byte(`{"version":1,"root":{"kind":"download","params":{"url":"x"}}}`)); err == nil {
		t.Error("non-root document root accepted")
	}
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	doc := `{"version":1,"root":{"kind":"root","children":[{"kind":"teleport"}]}}`
	if _, err := DecodeState([]byte(doc)); err == nil {
		t.Error("unknown kind accepted")
	}
}

func TestDecodeRejectsIllegalPlacement(t *testing.T) {
	doc := `{"version":1,"root":{"kind":"root","children":[
		{"kind":"parse","params":{"format":"mmcif"}}]}}`
	_, err := DecodeState([]byte(doc))
	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want StructuralError", err)
	}
	if serr.Parent != KindRoot || serr.Child != KindParse {
		t.Errorf("error reports %s under %s", serr.Child, serr.Parent)
	}
}

func TestValidateHandBuiltTree(t *testing.T) {
	doc := &State{
		Version: Version,
		Root: &Node{
			Kind: KindRoot,
			Children: []*Node{
				{Kind: KindDownload}, // missing required url
			},
		},
	}
	err := doc.Validate()
	var perr *ParamError
	if !errors.As(err, &perr) {
		t.Errorf("got %v, want ParamError for missing url", err)
	}
}

func TestStructuralTableOnDecode(t *testing.T) {
	// Every (parent, illegal-child) pair must be rejected on decode.
	for _, parent := range Kinds() {
		for _, child := range Kinds() {
			if AllowedChild(parent, child) {
				continue
			}
			n := &Node{Kind: parent, Children: []*Node{{Kind: child, Params: paramsFor(child)}}}
			if parent != KindRoot {
				n.Params = paramsFor(parent)
			}
			err := n.validate()
			var serr *StructuralError
			if !errors.As(err, &serr) {
				t.Errorf("%s under %s: got %v, want StructuralError", child, parent, err)
			}
		}
	}
}

// paramsFor returns minimal valid params for a kind, for structural tests.
func paramsFor(kind Kind) Params {
	switch kind {
	case KindDownload:
		return DownloadParams{URL: "https://example.org/x.cif"}
	case KindParse:
		return ParseParams{Format: FormatMmcif}
	case KindStructure:
		return StructureParams{Kind: StructureModel}
	case KindComponent:
		return ComponentParams{Selector: SelectorAll}
	case KindRepresentation:
		return RepresentationParams{Type: RepresentationCartoon}
	case KindLabel:
		return LabelParams{Schema: SchemaResidue, Text: "x"}
	case KindLabelFromCif:
		return LabelFromCifParams{Schema: SchemaResidue, CategoryName: "cat"}
	case KindLabelFromURL:
		return LabelFromURLParams{Schema: SchemaResidue, URL: "https://example.org/a", Format: AnnotationJSON}
	case KindLabelFromJSON:
		return LabelFromJSONParams{Schema: SchemaResidue, Data: "[]"}
	case KindColor, KindColorFromInline:
		return ColorParams{Schema: SchemaResidue, Color: "red"}
	case KindColorFromCif:
		return ColorFromCifParams{Schema: SchemaResidue, CategoryName: "cat"}
	case KindColorFromURL:
		return ColorFromURLParams{Schema: SchemaResidue, URL: "https://example.org/a", Format: AnnotationCif}
	case KindColorFromJSON:
		return ColorFromJSONParams{Schema: SchemaResidue, Data: "{}"}
	case KindFocus:
		return FocusParams{Schema: SchemaChain}
	case KindTransform:
		return TransformParams{}
	case KindCamera:
		return CameraParams{Position: []float64{0, 0, 1}, Direction: []float64{0, 0, -1}, Radius: 10}
	}
	return nil
}
