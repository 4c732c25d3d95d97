package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/osse101/GildedRose_Go/configs"
)

// SchemaValidator validates JSON documents against JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaPath string) error
	ValidateBytes(data []byte, schemaPath string) error
}

// Violation is one failed schema keyword at one document location
type Violation struct {
	Location string
	Keyword  string
}

// SchemaError lists every leaf violation reported for a document
type SchemaError struct {
	Violations []Violation
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("schema validation failed:")
	for _, v := range e.Violations {
		if v.Keyword == "" {
			fmt.Fprintf(&b, "\n  - at %s: validation failed", v.Location)
		} else {
			fmt.Fprintf(&b, "\n  - at %s: %s validation failed", v.Location, v.Keyword)
		}
	}
	return b.String()
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema

	embedded fs.FS
	prefix   string
}

// NewSchemaValidator uses the schemas compiled into the binary
func NewSchemaValidator() SchemaValidator {
	return NewSchemaValidatorFS(configs.Schemas, configs.SchemasPrefix)
}

// NewSchemaValidatorFS serves schema paths starting with prefix from fsys.
// Other paths are read from disk, relative to the working directory or the module root.
func NewSchemaValidatorFS(fsys fs.FS, prefix string) SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
		embedded: fsys,
		prefix:   prefix,
	}
}

func (v *validator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

func (v *validator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.schema(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return &SchemaError{Violations: leafViolations(verr, nil)}
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// schema compiles schemaPath once and caches it
func (v *validator) schema(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.schemas[schemaPath]; ok {
		return s, nil
	}

	raw, err := v.readSchema(schemaPath)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}
	if err := v.compiler.AddResource(schemaPath, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	s, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaPath] = s
	return s, nil
}

func (v *validator) readSchema(schemaPath string) ([]byte, error) {
	if v.embedded != nil && strings.HasPrefix(schemaPath, v.prefix) {
		if data, err := fs.ReadFile(v.embedded, strings.TrimPrefix(schemaPath, v.prefix)); err == nil {
			return data, nil
		}
	}

	resolved, err := resolveSchemaPath(schemaPath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return data, nil
}

func leafViolations(err *jsonschema.ValidationError, out []Violation) []Violation {
	if len(err.Causes) == 0 {
		return append(out, violation(err))
	}
	for _, cause := range err.Causes {
		out = leafViolations(cause, out)
	}
	return out
}

func violation(err *jsonschema.ValidationError) Violation {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	var keyword string
	if err.ErrorKind != nil {
		keyword = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	return Violation{Location: location, Keyword: keyword}
}

// resolveSchemaPath accepts absolute paths, paths relative to the working directory,
// and paths relative to the nearest enclosing go.mod
func resolveSchemaPath(schemaPath string) (string, error) {
	if filepath.IsAbs(schemaPath) {
		return schemaPath, nil
	}
	if _, err := os.Stat(schemaPath); err == nil {
		return schemaPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	for dir := cwd; ; {
		candidate := filepath.Join(dir, schemaPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("schema file not found: %s (searched from %s)", schemaPath, cwd)
}
