package format

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hazelcast/cache-config-engine/internal/config"
)

// PrettyPrint re-indents a document in the format it is written in. Keys and elements the
// engine does not know are kept. Plain text is returned unchanged.
func PrettyPrint(text string) (string, error) {
	switch DetectFormat(text) {
	case config.FormatJSON:
		return PrettyPrintStructured(text)
	case config.FormatXML:
		return PrettyPrintMarkup(text), nil
	case config.FormatYAML:
		return prettyPrintFlow(text)
	}
	return text, nil
}

func prettyPrintFlow(text string) (string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(text), &node); err != nil {
		return "", &ParseError{Format: config.FormatYAML, Reason: err.Error()}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return "", &ParseError{Format: config.FormatYAML, Reason: err.Error()}
	}
	if err := enc.Close(); err != nil {
		return "", &ParseError{Format: config.FormatYAML, Reason: err.Error()}
	}
	return strings.TrimLeft(buf.String(), "\n"), nil
}
