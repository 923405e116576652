package mediatype

import (
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
	n "github.com/hazelcast/cache-config-engine/internal/naming"
)

var (
	documentMediaType = map[v1alpha1.ContentType]string{
		v1alpha1.ContentTypeJSON: n.MediaTypeJSON,
		v1alpha1.ContentTypeXML:  n.MediaTypeXML,
		v1alpha1.ContentTypeYAML: n.MediaTypeYAML,
	}

	protobufScalar = func() map[string]v1alpha1.ContentType {
		m := make(map[string]v1alpha1.ContentType, len(v1alpha1.ProtobufScalarTypes))
		for _, t := range v1alpha1.ProtobufScalarTypes {
			m[string(t)] = t
		}
		return m
	}()

	editable = map[v1alpha1.EncodingType]bool{
		v1alpha1.EncodingProtobuf:       true,
		v1alpha1.EncodingJava:           true,
		v1alpha1.EncodingJavaSerialized: false,
		v1alpha1.EncodingJBoss:          true,
		v1alpha1.EncodingXML:            true,
		v1alpha1.EncodingJSON:           true,
		v1alpha1.EncodingText:           true,
		v1alpha1.EncodingOctetStream:    false,
		v1alpha1.EncodingEmpty:          false,
	}
)

// ToMediaTypeHeader returns the header sent with a value of the given content type.
// Protobuf scalars travel as JSON literals.
func ToMediaTypeHeader(ct v1alpha1.ContentType) string {
	if ct.IsBoxed() {
		return n.JavaObjectTypePrefix + string(ct)
	}
	if mt, ok := documentMediaType[ct]; ok {
		return mt
	}
	return n.MediaTypeJSON
}

// FromMediaTypeHeader returns the content type announced by a header. An empty header yields the
// fallback, or String when no fallback is given. Unknown headers, including Java object headers
// naming a type that is not a boxed primitive, yield String.
func FromMediaTypeHeader(header string, fallback v1alpha1.ContentType) v1alpha1.ContentType {
	h := strings.TrimSpace(header)
	if h == "" {
		if fallback != "" {
			return fallback
		}
		return v1alpha1.ContentTypeString
	}

	if strings.HasPrefix(h, n.JavaObjectTypePrefix) {
		ct := v1alpha1.ContentType(strings.TrimPrefix(h, n.JavaObjectTypePrefix))
		if ct.IsBoxed() {
			return ct
		}
		return v1alpha1.ContentTypeString
	}

	switch essence(h) {
	case n.MediaTypeJSON:
		return v1alpha1.ContentTypeJSON
	case n.MediaTypeXML:
		return v1alpha1.ContentTypeXML
	case n.MediaTypeYAML:
		return v1alpha1.ContentTypeYAML
	}
	return v1alpha1.ContentTypeString
}

// FromProtobufScalarType maps one of the fifteen scalar type names to its content type.
// Any other name refers to a message or an enum and yields ProtobufCustomType.
func FromProtobufScalarType(name string) v1alpha1.ContentType {
	if ct, ok := protobufScalar[name]; ok {
		return ct
	}
	return v1alpha1.ProtobufCustomType
}

// FromProtobufKind maps the kind of a field descriptor to its content type.
func FromProtobufKind(kind protoreflect.Kind) v1alpha1.ContentType {
	switch kind {
	case protoreflect.EnumKind, protoreflect.MessageKind, protoreflect.GroupKind:
		return v1alpha1.ProtobufCustomType
	}
	return FromProtobufScalarType(kind.String())
}

// IsEditable reports whether values of the encoding can be edited as text.
func IsEditable(enc v1alpha1.EncodingType) bool {
	return editable[enc]
}

// ContentTypeOptionsFor returns the content types a form offers for the encoding, in display order.
// Encodings that cannot be edited get no options.
func ContentTypeOptionsFor(enc v1alpha1.EncodingType) []v1alpha1.ContentType {
	switch enc {
	case v1alpha1.EncodingText:
		return []v1alpha1.ContentType{v1alpha1.ContentTypeString}
	case v1alpha1.EncodingJSON:
		return []v1alpha1.ContentType{v1alpha1.ContentTypeJSON}
	case v1alpha1.EncodingXML:
		return []v1alpha1.ContentType{v1alpha1.ContentTypeXML}
	case v1alpha1.EncodingJava, v1alpha1.EncodingJavaSerialized, v1alpha1.EncodingJBoss:
		options := make([]v1alpha1.ContentType, 0, len(v1alpha1.BoxedContentTypes)+1)
		options = append(options, v1alpha1.BoxedContentTypes...)
		return append(options, v1alpha1.ContentTypeJSON)
	case v1alpha1.EncodingProtobuf:
		options := make([]v1alpha1.ContentType, 0, len(v1alpha1.ProtobufScalarTypes)+1)
		options = append(options, v1alpha1.ProtobufScalarTypes...)
		return append(options, v1alpha1.ProtobufCustomType)
	}
	return nil
}

// MediaType returns the media type written to a configuration document for the encoding.
func MediaType(enc v1alpha1.EncodingType) string {
	return v1alpha1.EncodeEncodingType[enc]
}

// EncodingFromMediaType returns the encoding of a media type read from a configuration document.
// Parameters are ignored. Unknown media types yield EncodingEmpty.
func EncodingFromMediaType(mediaType string) v1alpha1.EncodingType {
	e := essence(mediaType)
	if e == "" || e == n.MediaTypeUnknown {
		return v1alpha1.EncodingEmpty
	}
	for _, enc := range v1alpha1.EncodingTypes {
		if v1alpha1.EncodeEncodingType[enc] == e {
			return enc
		}
	}
	return v1alpha1.EncodingEmpty
}

// essence strips the parameters of a media type and lowercases it.
func essence(mediaType string) string {
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}
