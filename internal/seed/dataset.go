// Package seed reads catalog datasets: YAML documents listing authors,
// magazines and the articles that link them.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDataset []byte

// Dataset describes the entities to register. Articles refer to authors and
// magazines by name.
type Dataset struct {
	Authors   []Author   `yaml:"authors" json:"authors"`
	Magazines []Magazine `yaml:"magazines" json:"magazines"`
	Articles  []Article  `yaml:"articles" json:"articles"`
}

// Author is an author record.
type Author struct {
	Name string `yaml:"name" json:"name"`
}

// Magazine is a magazine record.
type Magazine struct {
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"`
}

// Article is an article record. Author and Magazine hold names.
type Article struct {
	Author   string `yaml:"author" json:"author"`
	Magazine string `yaml:"magazine" json:"magazine"`
	Title    string `yaml:"title" json:"title"`
}

// Parse decodes a dataset document. Unknown fields are rejected so that a
// misspelled key does not silently drop data. An empty document yields an
// empty dataset.
func Parse(data []byte) (Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, nil
		}
		return Dataset{}, fmt.Errorf("parse dataset: %w", err)
	}
	return ds, nil
}

// Load reads and parses a dataset from r.
func Load(r io.Reader) (Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data)
}

// LoadFile reads and parses the dataset at path.
func LoadFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset %s: %w", path, err)
	}
	ds, err := Parse(data)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Default returns the embedded exploration dataset.
func Default() Dataset {
	ds, err := Parse(defaultDataset)
	if err != nil {
		panic(fmt.Sprintf("seed: embedded default dataset is invalid: %v", err))
	}
	return ds
}
