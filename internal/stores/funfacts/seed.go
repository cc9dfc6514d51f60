package funfacts

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ethanbaker/states/pkg/funfacts"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// seedFile is the on-disk layout of a fun fact seed file
type seedFile struct {
	States []*funfacts.Document `yaml:"states"`
}

// DefaultSeed returns the bundled seed documents
func DefaultSeed() ([]*funfacts.Document, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeedFile reads seed documents from a YAML file. An empty path loads the
// bundled seed.
func LoadSeedFile(path string) ([]*funfacts.Document, error) {
	if path == "" {
		return DefaultSeed()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	return ParseSeed(data)
}

// ParseSeed decodes seed documents, normalizing state codes to uppercase
func ParseSeed(data []byte) ([]*funfacts.Document, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i, doc := range file.States {
		if doc == nil || doc.StateCode == "" {
			return nil, fmt.Errorf("seed entry %d has no stateCode", i)
		}
		doc.StateCode = strings.ToUpper(doc.StateCode)
	}

	return file.States, nil
}

// Seed replaces the fact list of every seeded state. Entries whose code fails
// isValid abort the run before anything is written.
func Seed(ctx context.Context, store funfacts.StoreInterface, docs []*funfacts.Document, isValid func(string) bool) (int, error) {
	for _, doc := range docs {
		if !isValid(doc.StateCode) {
			return 0, fmt.Errorf("invalid state code '%s' in seed", doc.StateCode)
		}
	}

	for i, doc := range docs {
		if _, err := store.Replace(ctx, doc.StateCode, doc.Funfacts); err != nil {
			return i, fmt.Errorf("failed to seed '%s': %w", doc.StateCode, err)
		}
		log.Printf("[SEED]: Seeded %d fun facts for %s", len(doc.Funfacts), doc.StateCode)
	}

	return len(docs), nil
}
