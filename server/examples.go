package server

import (
	"fmt"
	"strings"

	"github.com/molscene/go-molscene/builder"
	"github.com/molscene/go-molscene/scene"
)

// entryURL points at the updated mmCIF file for a PDB entry.
func entryURL(id string) string {
	return fmt.Sprintf("https://www.ebi.ac.uk/pdbe/entry-files/download/%s_updated.cif", strings.ToLower(id))
}

// LoadExample builds a minimal document that renders a PDB entry in cartoon
// representation.
func LoadExample(id string) (*scene.State, error) {
	b := builder.NewRoot()
	d, err := b.Download(entryURL(id))
	if err != nil {
		return nil, err
	}
	p, err := d.Parse(scene.FormatMmcif)
	if err != nil {
		return nil, err
	}
	s, err := p.Structure(scene.StructureParams{})
	if err != nil {
		return nil, err
	}
	c, err := s.Component(scene.SelectorAll)
	if err != nil {
		return nil, err
	}
	if _, err := c.Representation(scene.RepresentationParams{}); err != nil {
		return nil, err
	}
	return b.State(), nil
}

// LabelExample builds a document with two inline residue labels and a label
// sourced from a custom CIF category.
func LabelExample(id string) (*scene.State, error) {
	b := builder.NewRoot()
	d, err := b.Download(entryURL(id))
	if err != nil {
		return nil, err
	}
	p, err := d.Parse(scene.FormatMmcif)
	if err != nil {
		return nil, err
	}
	s, err := p.Structure(scene.StructureParams{})
	if err != nil {
		return nil, err
	}
	s, err = s.Label(scene.LabelParams{
		InlineSelector: scene.InlineSelector{LabelAsymID: "A", LabelSeqID: scene.Int(120)},
		Schema:         scene.SchemaResidue,
		Text:           "Residue 1",
	})
	if err != nil {
		return nil, err
	}
	s, err = s.Label(scene.LabelParams{
		InlineSelector: scene.InlineSelector{LabelAsymID: "C", LabelSeqID: scene.Int(271)},
		Schema:         scene.SchemaResidue,
		Text:           "Residue 2",
	})
	if err != nil {
		return nil, err
	}
	if _, err := s.LabelFromCif(scene.LabelFromCifParams{
		Schema:       scene.SchemaResidue,
		CategoryName: "my_custom_cif_category",
	}); err != nil {
		return nil, err
	}
	return b.State(), nil
}

// ColorExample builds a document with two components of the same structure,
// one colored inline and one colored from a custom CIF category.
func ColorExample(id string) (*scene.State, error) {
	b := builder.NewRoot()
	d, err := b.Download(entryURL(id))
	if err != nil {
		return nil, err
	}
	p, err := d.Parse(scene.FormatMmcif)
	if err != nil {
		return nil, err
	}
	s, err := p.Structure(scene.StructureParams{})
	if err != nil {
		return nil, err
	}

	protein, err := s.Component(scene.SelectorProtein)
	if err != nil {
		return nil, err
	}
	rep, err := protein.Representation(scene.RepresentationParams{
		Type:  scene.RepresentationCartoon,
		Color: "white",
	})
	if err != nil {
		return nil, err
	}
	if _, err := rep.Color(scene.ColorParams{
		InlineSelector: scene.InlineSelector{LabelAsymID: "A", LabelSeqID: scene.Int(64)},
		Schema:         scene.SchemaResidue,
		Color:          "red",
	}); err != nil {
		return nil, err
	}

	ligand, err := s.Component(scene.SelectorLigand)
	if err != nil {
		return nil, err
	}
	rep, err = ligand.Representation(scene.RepresentationParams{
		Type: scene.RepresentationBallAndStick,
	})
	if err != nil {
		return nil, err
	}
	if _, err := rep.ColorFromCif(scene.ColorFromCifParams{
		Schema:       scene.SchemaResidue,
		CategoryName: "my_custom_cif_category",
	}); err != nil {
		return nil, err
	}
	return b.State(), nil
}
