package server

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/molscene/go-molscene/scene"
	"github.com/molscene/go-molscene/storage"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.PutMolecule("1cbs", "data_1cbs\n"); err != nil {
		t.Fatal(err)
	}
	if err := store.PutCifAnnotations("1cbs", "_my_category.color red\n"); err != nil {
		t.Fatal(err)
	}
	if err := store.PutJSONAnnotation("1cbs", "domains", `["A"]`); err != nil {
		t.Fatal(err)
	}
	return New(WithStore(store))
}

func get(t *testing.T, s *Server, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	body, _ := io.ReadAll(rec.Result().Body)
	return rec.Code, string(body)
}

func getDocument(t *testing.T, s *Server, path string) *scene.State {
	t.Helper()
	code, body := get(t, s, path)
	if code != 200 {
		t.Fatalf("GET %s: status %d: %s", path, code, body)
	}
	doc, err := scene.DecodeState([]byte(body))
	if err != nil {
		t.Fatalf("GET %s: invalid document: %v", path, err)
	}
	return doc
}

func TestLoadEndpoint(t *testing.T) {
	s := testServer(t)
	doc := getDocument(t, s, "/load/1CBS")

	node := doc.Root
	for _, kind := range []scene.Kind{
		scene.KindDownload, scene.KindParse, scene.KindStructure,
		scene.KindComponent, scene.KindRepresentation,
	} {
		if len(node.Children) != 1 {
			t.Fatalf("%s: %d children, want 1", node.Kind, len(node.Children))
		}
		node = node.Children[0]
		if node.Kind != kind {
			t.Fatalf("got %s, want %s", node.Kind, kind)
		}
	}
	download := doc.Root.Children[0].Params.(scene.DownloadParams)
	if !strings.Contains(download.URL, "1cbs_updated.cif") {
		t.Errorf("entry id not lowercased in url: %s", download.URL)
	}
}

func TestLabelEndpoint(t *testing.T) {
	s := testServer(t)
	doc := getDocument(t, s, "/label/1cbs")

	structure := doc.Root.Children[0].Children[0].Children[0]
	kinds := []scene.Kind{}
	for _, c := range structure.Children {
		kinds = append(kinds, c.Kind)
	}
	want := []scene.Kind{scene.KindLabel, scene.KindLabel, scene.KindLabelFromCif}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("structure children = %v, want %v", kinds, want)
	}
	if text := structure.Children[1].Params.(scene.LabelParams).Text; text != "Residue 2" {
		t.Errorf("second label text = %q", text)
	}
}

func TestColorEndpoint(t *testing.T) {
	s := testServer(t)
	doc := getDocument(t, s, "/color/1cbs")

	structure := doc.Root.Children[0].Children[0].Children[0]
	if len(structure.Children) != 2 {
		t.Fatalf("structure has %d components, want 2", len(structure.Children))
	}
	protein := structure.Children[0]
	if protein.Params.(scene.ComponentParams).Selector != scene.SelectorProtein {
		t.Errorf("first component = %+v", protein.Params)
	}
	rep := protein.Children[0]
	if rep.Children[0].Kind != scene.KindColor {
		t.Errorf("protein representation child = %s", rep.Children[0].Kind)
	}
	ligand := structure.Children[1]
	if ligand.Children[0].Children[0].Kind != scene.KindColorFromCif {
		t.Errorf("ligand representation child = %s", ligand.Children[0].Children[0].Kind)
	}
}

func TestDataEndpoints(t *testing.T) {
	s := testServer(t)

	code, body := get(t, s, "/data/1cbs/molecule")
	if code != 200 || body != "data_1cbs\n" {
		t.Errorf("molecule: %d %q", code, body)
	}

	code, body = get(t, s, "/data/1cbs/cif-annotations")
	if code != 200 || body != "data_1cbs_annotations\n_my_category.color red\n" {
		t.Errorf("cif-annotations: %d %q", code, body)
	}

	code, body = get(t, s, "/data/1cbs/molecule-and-cif-annotations")
	if code != 200 || body != "data_1cbs\n\n\n_my_category.color red\n" {
		t.Errorf("molecule-and-cif-annotations: %d %q", code, body)
	}

	code, body = get(t, s, "/data/1cbs/json-annotations")
	if code != 200 {
		t.Fatalf("json-annotations: %d", code)
	}
	var names []string
	if err := json.Unmarshal([]byte(body), &names); err != nil {
		t.Fatalf("json-annotations body: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"domains"}) {
		t.Errorf("names = %v", names)
	}

	code, body = get(t, s, "/data/1cbs/json/domains")
	if code != 200 || body != `["A"]` {
		t.Errorf("json annotation: %d %q", code, body)
	}
}

func TestDataNotFound(t *testing.T) {
	s := testServer(t)
	for _, path := range []string{
		"/data/9zzz/molecule",
		"/data/9zzz/cif-annotations",
		"/data/1cbs/json/nope",
	} {
		if code, _ := get(t, s, path); code != 404 {
			t.Errorf("GET %s: status %d, want 404", path, code)
		}
	}
}

func TestServerWithoutStore(t *testing.T) {
	s := New()
	if code, _ := get(t, s, "/data/1cbs/molecule"); code != 404 {
		t.Errorf("no-store molecule: status %d, want 404", code)
	}
	// Document endpoints need no store.
	if code, _ := get(t, s, "/load/1cbs"); code != 200 {
		t.Errorf("no-store load: status %d, want 200", code)
	}
}
