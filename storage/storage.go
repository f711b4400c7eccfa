// Package storage provides a SQLite-backed store for the example data served
// alongside scene documents: per-entry molecule CIF files and named CIF/JSON
// annotations. The scene core never touches it; only the HTTP layer does.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when an entry or annotation does not exist.
var ErrNotFound = errors.New("not found")

// Store handles SQLite database operations for example data.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and runs migrations.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS molecules (
		entry   TEXT PRIMARY KEY,
		content TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS cif_annotations (
		entry   TEXT PRIMARY KEY,
		content TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS json_annotations (
		entry   TEXT NOT NULL,
		name    TEXT NOT NULL,
		content TEXT NOT NULL,
		PRIMARY KEY (entry, name)
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutMolecule stores the molecule CIF content for an entry, replacing any
// previous content.
func (s *Store) PutMolecule(entry, content string) error {
	_, err := s.db.Exec(
		`INSERT INTO molecules (entry, content) VALUES (?, ?)
		 ON CONFLICT(entry) DO UPDATE SET content = excluded.content`,
		entry, content)
	if err != nil {
		return fmt.Errorf("put molecule %s: %w", entry, err)
	}
	return nil
}

// Molecule returns the molecule CIF content for an entry.
func (s *Store) Molecule(entry string) (string, error) {
	var content string
	err := s.db.QueryRow(`SELECT content FROM molecules WHERE entry = ?`, entry).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get molecule %s: %w", entry, err)
	}
	return content, nil
}

// PutCifAnnotations stores the CIF annotation block for an entry.
func (s *Store) PutCifAnnotations(entry, content string) error {
	_, err := s.db.Exec(
		`INSERT INTO cif_annotations (entry, content) VALUES (?, ?)
		 ON CONFLICT(entry) DO UPDATE SET content = excluded.content`,
		entry, content)
	if err != nil {
		return fmt.Errorf("put cif annotations %s: %w", entry, err)
	}
	return nil
}

// CifAnnotations returns the CIF annotation block for an entry.
func (s *Store) CifAnnotations(entry string) (string, error) {
	var content string
	err := s.db.QueryRow(`SELECT content FROM cif_annotations WHERE entry = ?`, entry).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get cif annotations %s: %w", entry, err)
	}
	return content, nil
}

// PutJSONAnnotation stores a named JSON annotation for an entry.
func (s *Store) PutJSONAnnotation(entry, name, content string) error {
	_, err := s.db.Exec(
		`INSERT INTO json_annotations (entry, name, content) VALUES (?, ?, ?)
		 ON CONFLICT(entry, name) DO UPDATE SET content = excluded.content`,
		entry, name, content)
	if err != nil {
		return fmt.Errorf("put json annotation %s/%s: %w", entry, name, err)
	}
	return nil
}

// JSONAnnotation returns a named JSON annotation for an entry.
func (s *Store) JSONAnnotation(entry, name string) (string, error) {
	var content string
	err := s.db.QueryRow(
		`SELECT content FROM json_annotations WHERE entry = ? AND name = ?`,
		entry, name).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get json annotation %s/%s: %w", entry, name, err)
	}
	return content, nil
}

// JSONAnnotationNames lists the JSON annotation names stored for an entry,
// in lexical order.
func (s *Store) JSONAnnotationNames(entry string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT name FROM json_annotations WHERE entry = ? ORDER BY name`, entry)
	if err != nil {
		return nil, fmt.Errorf("list json annotations %s: %w", entry, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// SeedDir loads example data from a directory tree laid out as
// <entry>/molecule.cif, <entry>/annotations.cif, and <entry>/<name>.json.
func (s *Store) SeedDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("seed %s: %w", dir, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := s.seedEntry(dir, e.Name()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) seedEntry(dir, entry string) error {
	files, err := os.ReadDir(filepath.Join(dir, entry))
	if err != nil {
		return fmt.Errorf("seed %s: %w", entry, err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry, f.Name()))
		if err != nil {
			return fmt.Errorf("seed %s/%s: %w", entry, f.Name(), err)
		}
		switch {
		case f.Name() == "molecule.cif":
			err = s.PutMolecule(entry, string(data))
		case f.Name() == "annotations.cif":
			err = s.PutCifAnnotations(entry, string(data))
		case strings.HasSuffix(f.Name(), ".json"):
			name := strings.TrimSuffix(f.Name(), ".json")
			err = s.PutJSONAnnotation(entry, name, string(data))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
