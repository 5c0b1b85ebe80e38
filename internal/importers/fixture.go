package importers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the format of every date in a fixture file.
const DateLayout = "2006-01-02"

// Fixture is the content of a catalog YAML file.
type Fixture struct {
	Genres    []string         `yaml:"genres" validate:"unique,dive,required,max=140"`
	Authors   []AuthorRecord   `yaml:"authors" validate:"unique=Key,dive"`
	Books     []BookRecord     `yaml:"books" validate:"unique=Key,dive"`
	Instances []InstanceRecord `yaml:"instances" validate:"dive"`
}

// AuthorRecord describes an author. Key is how books refer to the author.
type AuthorRecord struct {
	Key         string `yaml:"key" validate:"required"`
	FirstName   string `yaml:"first_name" validate:"required,max=100"`
	LastName    string `yaml:"last_name" validate:"required,max=100"`
	DateOfBirth string `yaml:"date_of_birth,omitempty" validate:"date"`
	DateOfDeath string `yaml:"date_of_death,omitempty" validate:"date"`
}

// BookRecord describes a book. Author is an author key, Genres are genre names.
type BookRecord struct {
	Key     string   `yaml:"key" validate:"required"`
	Title   string   `yaml:"title" validate:"required,max=200"`
	Summary string   `yaml:"summary,omitempty" validate:"max=1000"`
	ISBN    string   `yaml:"isbn,omitempty" validate:"max=13"`
	Author  string   `yaml:"author,omitempty"`
	Genres  []string `yaml:"genres,omitempty" validate:"unique"`
}

// InstanceRecord describes a copy of a book. ID is generated when empty.
type InstanceRecord struct {
	ID      string `yaml:"id,omitempty" validate:"omitempty,uuid"`
	Book    string `yaml:"book,omitempty"`
	Imprint string `yaml:"imprint,omitempty" validate:"max=200"`
	DueBack string `yaml:"due_back,omitempty" validate:"date"`
	Status  string `yaml:"status,omitempty" validate:"omitempty,oneof=m o a r"`
}

// LoadFixture decodes a fixture from YAML. Unknown keys are rejected.
func LoadFixture(r io.Reader) (*Fixture, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var fixture Fixture
	if err := decoder.Decode(&fixture); err != nil {
		if errors.Is(err, io.EOF) {
			return &fixture, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &fixture, nil
}

// LoadFile reads a fixture from the given path.
func LoadFile(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	return LoadFixture(f)
}

// parseDate converts an optional fixture date. Empty means no date.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
