package format

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/hazelcast/cache-config-engine/internal/config"
)

// FormatText is reported for drafts that are neither structured nor markup documents.
const FormatText config.Format = ""

// ParseError reports a draft that cannot be submitted.
type ParseError struct {
	Format config.Format
	Reason string
}

func (e *ParseError) Error() string {
	if e.Format == FormatText {
		return "invalid document: " + e.Reason
	}
	return fmt.Sprintf("invalid %s document: %s", e.Format, e.Reason)
}

// Draft is a hand typed configuration accepted for submission.
type Draft struct {
	Text   string
	Format config.Format
}

// ValidateDraft accepts any text that is not blank. The detected format is reported so the draft
// can be submitted with the matching media type. The cluster performs the real validation.
func ValidateDraft(text string) (Draft, error) {
	if strings.TrimSpace(text) == "" {
		return Draft{}, &ParseError{Reason: "document is empty"}
	}
	return Draft{Text: text, Format: DetectFormat(text)}, nil
}

// DetectFormat guesses the rendering of a document. JSON may hold comments and trailing commas.
// Text that is none of the three renderings yields FormatText.
func DetectFormat(text string) config.Format {
	s := strings.TrimSpace(text)
	switch {
	case s == "":
		return FormatText
	case (s[0] == '{' || s[0] == '[') && isJSON(s):
		return config.FormatJSON
	case s[0] == '<' && isMarkup(s):
		return config.FormatXML
	case isYAML(s):
		return config.FormatYAML
	}
	return FormatText
}

func isJSON(s string) bool {
	_, err := hujson.Standardize([]byte(s))
	return err == nil
}

func isMarkup(s string) bool {
	dec := xml.NewDecoder(strings.NewReader(s))
	elements := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return elements > 0
		}
		if err != nil {
			return false
		}
		if _, ok := tok.(xml.StartElement); ok {
			elements++
		}
	}
}

func isYAML(s string) bool {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(s), &node); err != nil || len(node.Content) == 0 {
		return false
	}
	return node.Content[0].Kind == yaml.MappingNode
}

// PrettyPrintStructured indents a JSON document by two spaces. Comments and trailing commas are
// removed.
func PrettyPrintStructured(text string) (string, error) {
	standard, err := hujson.Standardize([]byte(text))
	if err != nil {
		return "", &ParseError{Format: config.FormatJSON, Reason: err.Error()}
	}
	var out bytes.Buffer
	if err := json.Indent(&out, standard, "", "  "); err != nil {
		return "", &ParseError{Format: config.FormatJSON, Reason: err.Error()}
	}
	out.WriteByte('\n')
	return out.String(), nil
}

// Parse reads a configuration document in any of the three formats.
func Parse(text string) (*config.Document, config.Format, error) {
	from := DetectFormat(text)
	if from == FormatText {
		return nil, from, &ParseError{Reason: "not a configuration document"}
	}

	data := []byte(text)
	if from == config.FormatJSON {
		standard, err := hujson.Standardize(data)
		if err != nil {
			return nil, from, &ParseError{Format: from, Reason: err.Error()}
		}
		data = standard
	}

	doc, err := config.Unmarshal(data, from)
	if err != nil {
		return nil, from, &ParseError{Format: from, Reason: err.Error()}
	}
	if doc.IsEmpty() {
		return nil, from, &ParseError{Format: from, Reason: config.ErrNoTopology.Error()}
	}
	return doc, from, nil
}

// Convert renders a configuration document in another format.
func Convert(text string, to config.Format) (string, error) {
	doc, from, err := Parse(text)
	if err != nil {
		return "", err
	}
	out, err := config.Marshal(doc, to)
	if err != nil {
		return "", &ParseError{Format: from, Reason: err.Error()}
	}
	return string(out), nil
}
