package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON documents against schema files on disk
type SchemaValidator interface {
	ValidateFile(dataPath, schemaPath string) error
	ValidateBytes(data []byte, schemaPath string) error
}

// Issue is one schema violation
type Issue struct {
	// Location is a JSON pointer into the document, "(root)" for the top level
	Location string
	// Keyword is the failing schema keyword path, e.g. "required"
	Keyword string
}

func (i Issue) String() string {
	if i.Keyword == "" {
		return fmt.Sprintf("  - at %s: validation failed", i.Location)
	}
	return fmt.Sprintf("  - at %s: %s validation failed", i.Location, i.Keyword)
}

// SchemaError lists every violation found in a document
type SchemaError struct {
	Issues []Issue
}

func (e *SchemaError) Error() string {
	lines := make([]string, 0, len(e.Issues)+1)
	lines = append(lines, "schema validation failed:")
	for _, issue := range e.Issues {
		lines = append(lines, issue.String())
	}
	return strings.Join(lines, "\n")
}

type fileValidator struct {
	mu      sync.Mutex
	schemas map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator that compiles each schema file once
func NewSchemaValidator() SchemaValidator {
	return &fileValidator{schemas: make(map[string]*jsonschema.Schema)}
}

func (v *fileValidator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

func (v *fileValidator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.schema(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}
	return validateDocument(schema, data)
}

func (v *fileValidator) schema(path string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.schemas[path]; ok {
		return s, nil
	}
	resolved, err := findSchemaFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	s, err := compileSchema(path, raw)
	if err != nil {
		return nil, err
	}
	v.schemas[path] = s
	return s, nil
}

func validateDocument(schema *jsonschema.Schema, data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return toSchemaError(err)
	}
	return nil
}

// compileSchema compiles raw schema JSON registered under name. Formats are
// asserted so date-time strings are checked.
func compileSchema(name string, raw []byte) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat()
	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return schema, nil
}

func toSchemaError(err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("validation error: %w", err)
	}
	out := &SchemaError{}
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		issue := Issue{Location: "(root)"}
		if len(e.InstanceLocation) > 0 {
			issue.Location = "/" + strings.Join(e.InstanceLocation, "/")
		}
		if e.ErrorKind != nil {
			issue.Keyword = strings.Join(e.ErrorKind.KeywordPath(), ".")
		}
		out.Issues = append(out.Issues, issue)
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(verr)
	return out
}

// findSchemaFile resolves a relative schema path against the working directory
// or, failing that, against each parent up to the module root
func findSchemaFile(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	for dir := cwd; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		if filepath.Dir(dir) == dir {
			break
		}
	}
	return "", fmt.Errorf("schema file not found: %s (searched from %s)", path, cwd)
}
