package config

import (
	"fmt"
	"strings"

	n "github.com/hazelcast/cache-config-engine/internal/naming"
)

// Format is one of the three renderings of a configuration document.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// Formats lists the renderings in the order they are offered.
var Formats = []Format{FormatJSON, FormatXML, FormatYAML}

// ParseFormat reads a format name, in any case. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q, expected one of %v", s, Formats)
}

// MediaType returns the header value announcing a document in this format.
func (f Format) MediaType() string {
	switch f {
	case FormatXML:
		return n.MediaTypeXML
	case FormatYAML:
		return n.MediaTypeYAML
	}
	return n.MediaTypeJSON
}
