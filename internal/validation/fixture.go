package validation

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/osse101/PlayPredix_Go/configs/schemas"
	"github.com/osse101/PlayPredix_Go/internal/domain"
)

// FixtureValidator checks competition fixture files against the schema
// embedded in the binary
type FixtureValidator struct {
	schema *jsonschema.Schema
}

// NewFixtureValidator compiles the embedded fixture schema
func NewFixtureValidator() (*FixtureValidator, error) {
	data, err := schemas.FS.ReadFile(schemas.FixtureFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schema: %w", err)
	}
	schema, err := compileSchema(schemas.FixtureFile, data)
	if err != nil {
		return nil, err
	}
	return &FixtureValidator{schema: schema}, nil
}

// Validate reports schema violations in raw fixture JSON
func (f *FixtureValidator) Validate(data []byte) error {
	return validateDocument(f.schema, data)
}

// ParseFixture validates then decodes a fixture, and checks the references
// between games and teams that a schema cannot express
func (f *FixtureValidator) ParseFixture(data []byte) (*domain.Fixture, error) {
	if err := f.Validate(data); err != nil {
		return nil, err
	}
	var fixture domain.Fixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	if err := checkReferences(&fixture); err != nil {
		return nil, err
	}
	return &fixture, nil
}

func checkReferences(f *domain.Fixture) error {
	keys := make(map[string]struct{}, len(f.Teams))
	for _, t := range f.Teams {
		if _, dup := keys[t.Key]; dup {
			return fmt.Errorf("duplicate team key %q", t.Key)
		}
		keys[t.Key] = struct{}{}
	}
	for i, g := range f.Games {
		for _, ref := range []string{g.TeamA, g.TeamB} {
			if _, ok := keys[ref]; !ok {
				return fmt.Errorf("games[%d]: unknown team key %q", i, ref)
			}
		}
		if g.TeamA == g.TeamB {
			return fmt.Errorf("games[%d]: a team cannot play itself", i)
		}
	}
	return nil
}
