package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/code-a2z/seoscan/internal/model"
)

// YAMLWriter outputs reports in YAML format.
// YAML output is convenient for piping into configuration-driven tooling
// and for human inspection of the structured result.
type YAMLWriter struct {
	baseWriter
}

// NewYAMLWriter creates a YAMLWriter that outputs to the given writer.
func NewYAMLWriter(output io.Writer) *YAMLWriter {
	return &YAMLWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in YAML format.
func (w *YAMLWriter) Write(report *model.Report) (int, error) {
	data, err := yaml.Marshal(report)
	if err != nil {
		return 0, err
	}
	return w.output.Write(data)
}
