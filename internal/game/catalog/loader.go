package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Subdirectory names under a content root.
const (
	classesDir = "classes"
	skillsDir  = "skills"
	enemiesDir = "enemies"
)

// Load reads a content root directory containing classes/, skills/, and
// enemies/ subdirectories of one-entry-per-file YAML definitions and
// returns a validated Catalog.
//
// Precondition: root must be a readable directory with all three
// subdirectories present.
// Postcondition: Returns a non-nil Catalog, or an error if any file fails
// to parse or validate.
func Load(root string) (*Catalog, error) {
	var jobs []*JobClass
	if err := decodeDir(filepath.Join(root, classesDir), func() decodable {
		j := &JobClass{}
		jobs = append(jobs, j)
		return j
	}); err != nil {
		return nil, err
	}

	var skills []*Skill
	if err := decodeDir(filepath.Join(root, skillsDir), func() decodable {
		s := &Skill{}
		skills = append(skills, s)
		return s
	}); err != nil {
		return nil, err
	}

	var enemies []*Enemy
	if err := decodeDir(filepath.Join(root, enemiesDir), func() decodable {
		e := &Enemy{}
		enemies = append(enemies, e)
		return e
	}); err != nil {
		return nil, err
	}

	return New(jobs, skills, enemies)
}

type decodable any

// decodeDir parses every *.yaml file in dir into a value produced by next.
// Unknown YAML fields are rejected.
func decodeDir(dir string, next func() decodable) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading catalog dir %q: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(next()); err != nil {
			return fmt.Errorf("parsing %q: %w", path, err)
		}
	}
	return nil
}
