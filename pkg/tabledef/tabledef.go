// Package tabledef reads table definitions from YAML files.
//
// A definition names a schema and the literal values of each column:
//
//	name: people
//	fields:
//	  - {name: id, type: int64}
//	  - {name: age, type: int64, nullable: true}
//	columns:
//	  id: [1, 2, 3]
//	  age: [30, 25, null]
//
// ${VAR} references anywhere in the file are replaced by the environment
// variable's value before parsing. Unset variables become empty strings.
package tabledef

import (
	"context"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/lambdadb/pkg/batch"
	"github.com/ajitpratap0/lambdadb/pkg/column"
	"github.com/ajitpratap0/lambdadb/pkg/errors"
	"github.com/ajitpratap0/lambdadb/pkg/schema"
)

// Definition is a parsed table file.
type Definition struct {
	Name   string           `yaml:"name"`
	Fields []FieldDef       `yaml:"fields"`
	Values map[string][]any `yaml:"columns"`
}

// FieldDef declares one schema field. Type accepts any name
// schema.ParseDataType does.
type FieldDef struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable"`
}

// Load reads and parses the file at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the operator
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "read table definition").
			WithDetail("path", path)
	}
	return Parse(data)
}

// Parse parses a definition from YAML.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal([]byte(substituteEnvVars(string(data))), &def); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "parse table definition")
	}
	for name := range def.Values {
		if !def.hasField(name) {
			return nil, errors.Newf(errors.ErrorTypeValidation, "column %q has no field", name).
				WithDetail(errors.DetailField, name)
		}
	}
	return &def, nil
}

func (d *Definition) hasField(name string) bool {
	for _, f := range d.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Schema builds the declared schema.
func (d *Definition) Schema() (*schema.Schema, error) {
	fields := make([]schema.Field, len(d.Fields))
	for i, fd := range d.Fields {
		dt, err := schema.ParseDataType(fd.Type)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeValidation, "field "+fd.Name).
				WithDetail(errors.DetailIndex, i)
		}
		f, err := schema.NewField(fd.Name, dt, fd.Nullable)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeValidation, "field "+fd.Name).
				WithDetail(errors.DetailIndex, i)
		}
		fields[i] = f
	}
	return schema.New(fields...), nil
}

// Columns builds one column per field, in field order. A field with no
// values yields an empty column.
func (d *Definition) Columns(s *schema.Schema) ([]column.Column, error) {
	cols := make([]column.Column, s.NumFields())
	for i, f := range s.Fields() {
		c, err := column.Build(f.DataType(), d.Values[f.Name()])
		if err != nil {
			return nil, errors.Wrap(err, errors.TypeOf(err), "column "+f.Name()).
				WithDetail(errors.DetailField, f.Name())
		}
		cols[i] = c
	}
	return cols, nil
}

// Assemble builds the schema and columns and assembles them with a.
func (d *Definition) Assemble(ctx context.Context, a *batch.Assembler) (*batch.RecordBatch, error) {
	s, err := d.Schema()
	if err != nil {
		return nil, err
	}
	cols, err := d.Columns(s)
	if err != nil {
		return nil, err
	}
	return a.Assemble(ctx, s, cols)
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// Substituted text is not rescanned.
func substituteEnvVars(content string) string {
	var sb strings.Builder
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		sb.WriteString(content[:start])
		sb.WriteString(os.Getenv(content[start+2 : end]))
		content = content[end+1:]
	}
	sb.WriteString(content)
	return sb.String()
}
