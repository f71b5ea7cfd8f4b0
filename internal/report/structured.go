package report

import (
	"encoding/json"
	"io"

	"go-image-metrics/pkg/models"

	"gopkg.in/yaml.v2"
)

// JSONReporter encodes the report structs as indented JSON
type JSONReporter struct{}

func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

func (r *JSONReporter) Format() string { return "json" }

func (r *JSONReporter) WriteBatch(w io.Writer, rep *models.BatchReport) error {
	return r.encode(w, rep)
}

func (r *JSONReporter) WriteNoReference(w io.Writer, rep *models.NoReferenceReport) error {
	return r.encode(w, rep)
}

func (r *JSONReporter) encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAMLReporter encodes the report structs as YAML
type YAMLReporter struct{}

func NewYAMLReporter() *YAMLReporter {
	return &YAMLReporter{}
}

func (r *YAMLReporter) Format() string { return "yaml" }

func (r *YAMLReporter) WriteBatch(w io.Writer, rep *models.BatchReport) error {
	return r.encode(w, rep)
}

func (r *YAMLReporter) WriteNoReference(w io.Writer, rep *models.NoReferenceReport) error {
	return r.encode(w, rep)
}

func (r *YAMLReporter) encode(w io.Writer, v interface{}) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
