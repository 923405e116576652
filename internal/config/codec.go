package config

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
)

// ErrNoTopology is returned for documents that hold no cache.
var ErrNoTopology = errors.New("document has no cache topology")

// Marshal renders the document. The output is deterministic and ends with a newline.
func Marshal(d *Document, f Format) ([]byte, error) {
	if d.IsEmpty() {
		return nil, ErrNoTopology
	}
	switch f {
	case FormatJSON:
		out, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatXML:
		out, err := xml.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

// Unmarshal reads a document. Unknown keys and elements are ignored. A cache wrapped in an object
// keyed by its name, or in infinispan/cache-container elements, is unwrapped.
func Unmarshal(data []byte, f Format) (*Document, error) {
	d := &Document{}
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, d)
	case FormatXML:
		err = xml.Unmarshal(data, d)
	case FormatYAML:
		err = yaml.Unmarshal(data, d)
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %s document: %w", f, err)
	}
	return d, nil
}

// document has the fields of Document without its custom codecs.
type document Document

func (d *Document) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, (*document)(d)); err != nil {
		return err
	}
	if !d.IsEmpty() {
		return nil
	}

	var named map[string]json.RawMessage
	if err := json.Unmarshal(data, &named); err != nil || len(named) != 1 {
		return nil
	}
	for name, raw := range named {
		inner := &Document{}
		if err := json.Unmarshal(raw, (*document)(inner)); err != nil || inner.IsEmpty() {
			return nil
		}
		d.adopt(name, inner)
	}
	return nil
}

func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	if err := value.Decode((*document)(d)); err != nil {
		return err
	}
	if !d.IsEmpty() || value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return nil
	}

	inner := &Document{}
	if err := value.Content[1].Decode((*document)(inner)); err != nil || inner.IsEmpty() {
		return nil
	}
	d.adopt(value.Content[0].Value, inner)
	return nil
}

func (d *Document) adopt(name string, inner *Document) {
	t, c := inner.Cache()
	if c.Name == "" {
		c.Name = name
	}
	d.Set(t, c)
}

// MarshalXML writes the cache as the root element, named after its topology.
func (d *Document) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	t, c := d.Cache()
	if c == nil {
		return ErrNoTopology
	}
	return e.EncodeElement(c, xml.StartElement{Name: xml.Name{Local: v1alpha1.EncodeCacheType[t]}})
}

// UnmarshalXML reads the first topology element found, at the root or nested in wrapper elements.
func (d *Document) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	if t, ok := v1alpha1.DecodeCacheType(start.Name.Local); ok {
		if !d.IsEmpty() {
			return dec.Skip()
		}
		c := &Cache{}
		if err := dec.DecodeElement(c, &start); err != nil {
			return err
		}
		d.Set(t, c)
		return nil
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch tt := tok.(type) {
		case xml.StartElement:
			if err := d.UnmarshalXML(dec, tt); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}
