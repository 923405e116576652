package config

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Int is an integer the cluster may report either as a number or as a string.
type Int int64

// NewInt returns a pointer to v.
func NewInt(v int64) *Int {
	i := Int(v)
	return &i
}

// Value returns the integer, or 0 when i is nil.
func (i *Int) Value() int64 {
	if i == nil {
		return 0
	}
	return int64(*i)
}

// Int32 returns the integer when it is set and fits in 32 bits.
func (i *Int) Int32() (int32, bool) {
	if i == nil || int64(*i) > math.MaxInt32 || int64(*i) < math.MinInt32 {
		return 0, false
	}
	return int32(*i), true
}

func (i *Int) UnmarshalJSON(data []byte) error {
	var s Scalar
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	return i.parse(string(s))
}

func (i *Int) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected an integer", value.Line)
	}
	return i.parse(value.Value)
}

func (i *Int) parse(s string) error {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", s, err)
	}
	*i = Int(v)
	return nil
}

// Scalar keeps the text of a string, number or boolean as written.
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = Scalar(t)
	case json.Number:
		*s = Scalar(t.String())
	case bool:
		*s = Scalar(strconv.FormatBool(t))
	default:
		return fmt.Errorf("expected a scalar, got %s", data)
	}
	return nil
}

func (s *Scalar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", value.Line)
	}
	if value.Tag == "!!null" {
		*s = ""
		return nil
	}
	*s = Scalar(value.Value)
	return nil
}

// SpaceList is a list written as a space separated attribute in markup documents
// and as a sequence elsewhere.
type SpaceList []string

func (l SpaceList) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	if len(l) == 0 {
		return xml.Attr{}, nil
	}
	return xml.Attr{Name: name, Value: strings.Join(l, " ")}, nil
}

func (l *SpaceList) UnmarshalXMLAttr(attr xml.Attr) error {
	*l = strings.Fields(attr.Value)
	return nil
}
