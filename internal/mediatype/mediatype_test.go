package mediatype

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
)

func TestToMediaTypeHeader(t *testing.T) {
	tests := []struct {
		contentType v1alpha1.ContentType
		want        string
	}{
		{contentType: v1alpha1.ContentTypeString, want: "application/x-java-object;type=java.lang.String"},
		{contentType: v1alpha1.ContentTypeInteger, want: "application/x-java-object;type=java.lang.Integer"},
		{contentType: v1alpha1.ContentTypeBoolean, want: "application/x-java-object;type=java.lang.Boolean"},
		{contentType: v1alpha1.ContentTypeJSON, want: "application/json"},
		{contentType: v1alpha1.ContentTypeXML, want: "application/xml"},
		{contentType: v1alpha1.ContentTypeYAML, want: "application/yaml"},
		{contentType: v1alpha1.ProtobufInt32, want: "application/json"},
		{contentType: v1alpha1.ProtobufCustomType, want: "application/json"},
	}
	for _, tt := range tests {
		t.Run(string(tt.contentType), func(t *testing.T) {
			if got := ToMediaTypeHeader(tt.contentType); got != tt.want {
				t.Errorf("ToMediaTypeHeader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromMediaTypeHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		fallback v1alpha1.ContentType
		want     v1alpha1.ContentType
	}{
		{name: "Missing header", header: "", want: v1alpha1.ContentTypeString},
		{name: "Missing header with fallback", header: "", fallback: v1alpha1.ContentTypeJSON, want: v1alpha1.ContentTypeJSON},
		{name: "Whitespace header with fallback", header: "  ", fallback: v1alpha1.ContentTypeXML, want: v1alpha1.ContentTypeXML},
		{name: "Boxed integer", header: "application/x-java-object;type=java.lang.Integer", want: v1alpha1.ContentTypeInteger},
		{name: "Boxed long", header: "application/x-java-object;type=java.lang.Long", want: v1alpha1.ContentTypeLong},
		{name: "Unknown boxed type", header: "application/x-java-object;type=java.lang.Character", want: v1alpha1.ContentTypeString},
		{name: "JSON", header: "application/json", want: v1alpha1.ContentTypeJSON},
		{name: "JSON with charset", header: "application/json; charset=UTF-8", want: v1alpha1.ContentTypeJSON},
		{name: "XML", header: "application/xml", want: v1alpha1.ContentTypeXML},
		{name: "YAML", header: "application/yaml", want: v1alpha1.ContentTypeYAML},
		{name: "Unknown header ignores fallback", header: "image/png", fallback: v1alpha1.ContentTypeJSON, want: v1alpha1.ContentTypeString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromMediaTypeHeader(tt.header, tt.fallback); got != tt.want {
				t.Errorf("FromMediaTypeHeader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxedHeaderRoundTrip(t *testing.T) {
	for _, ct := range v1alpha1.BoxedContentTypes {
		if got := FromMediaTypeHeader(ToMediaTypeHeader(ct), ""); got != ct {
			t.Errorf("FromMediaTypeHeader(ToMediaTypeHeader(%v)) = %v", ct, got)
		}
	}
}

func TestMappersAreTotal(t *testing.T) {
	inputs := []string{
		"", " ", "\t\n", "!!!", ";", "application/", "application/x-java-object;type=java.lang.",
		"application/x-java-object;type=", "int33", "STRING", "org.example.Person", "\x00\xff", "ü",
	}
	for _, in := range inputs {
		if got := FromMediaTypeHeader(in, ""); got == "" {
			t.Errorf("FromMediaTypeHeader(%q) returned an empty content type", in)
		}
		if got := FromProtobufScalarType(in); got != v1alpha1.ProtobufCustomType {
			t.Errorf("FromProtobufScalarType(%q) = %v, want customType", in, got)
		}
	}
}

func TestFromProtobufScalarType(t *testing.T) {
	for _, ct := range v1alpha1.ProtobufScalarTypes {
		if got := FromProtobufScalarType(string(ct)); got != ct {
			t.Errorf("FromProtobufScalarType(%q) = %v", ct, got)
		}
	}
	if got := FromProtobufScalarType("customType"); got != v1alpha1.ProtobufCustomType {
		t.Errorf("FromProtobufScalarType(customType) = %v", got)
	}
}

func TestFromProtobufKind(t *testing.T) {
	tests := []struct {
		kind protoreflect.Kind
		want v1alpha1.ContentType
	}{
		{kind: protoreflect.StringKind, want: v1alpha1.ProtobufString},
		{kind: protoreflect.Int32Kind, want: v1alpha1.ProtobufInt32},
		{kind: protoreflect.Sfixed64Kind, want: v1alpha1.ProtobufSfixed64},
		{kind: protoreflect.BoolKind, want: v1alpha1.ProtobufBool},
		{kind: protoreflect.BytesKind, want: v1alpha1.ProtobufBytes},
		{kind: protoreflect.DoubleKind, want: v1alpha1.ProtobufDouble},
		{kind: protoreflect.EnumKind, want: v1alpha1.ProtobufCustomType},
		{kind: protoreflect.MessageKind, want: v1alpha1.ProtobufCustomType},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := FromProtobufKind(tt.kind); got != tt.want {
				t.Errorf("FromProtobufKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsEditable(t *testing.T) {
	tests := []struct {
		encoding v1alpha1.EncodingType
		want     bool
	}{
		{encoding: v1alpha1.EncodingProtobuf, want: true},
		{encoding: v1alpha1.EncodingJava, want: true},
		{encoding: v1alpha1.EncodingJavaSerialized, want: false},
		{encoding: v1alpha1.EncodingJBoss, want: true},
		{encoding: v1alpha1.EncodingXML, want: true},
		{encoding: v1alpha1.EncodingJSON, want: true},
		{encoding: v1alpha1.EncodingText, want: true},
		{encoding: v1alpha1.EncodingOctetStream, want: false},
		{encoding: v1alpha1.EncodingEmpty, want: false},
	}
	for _, tt := range tests {
		t.Run(string(tt.encoding), func(t *testing.T) {
			if got := IsEditable(tt.encoding); got != tt.want {
				t.Errorf("IsEditable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentTypeOptionsFor(t *testing.T) {
	tests := []struct {
		encoding v1alpha1.EncodingType
		want     []v1alpha1.ContentType
	}{
		{encoding: v1alpha1.EncodingText, want: []v1alpha1.ContentType{v1alpha1.ContentTypeString}},
		{encoding: v1alpha1.EncodingJSON, want: []v1alpha1.ContentType{v1alpha1.ContentTypeJSON}},
		{encoding: v1alpha1.EncodingXML, want: []v1alpha1.ContentType{v1alpha1.ContentTypeXML}},
		{
			encoding: v1alpha1.EncodingJava,
			want: []v1alpha1.ContentType{
				v1alpha1.ContentTypeString, v1alpha1.ContentTypeInteger, v1alpha1.ContentTypeDouble,
				v1alpha1.ContentTypeFloat, v1alpha1.ContentTypeLong, v1alpha1.ContentTypeBoolean,
				v1alpha1.ContentTypeJSON,
			},
		},
		{
			encoding: v1alpha1.EncodingProtobuf,
			want: []v1alpha1.ContentType{
				"string", "float", "double", "int32", "int64", "uint32", "uint64", "sint32",
				"sint64", "fixed32", "fixed64", "sfixed32", "sfixed64", "bool", "bytes", "customType",
			},
		},
		{encoding: v1alpha1.EncodingOctetStream, want: nil},
		{encoding: v1alpha1.EncodingEmpty, want: nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.encoding), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ContentTypeOptionsFor(tt.encoding)); diff != "" {
				t.Errorf("ContentTypeOptionsFor() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContentTypeOptionsAreFresh(t *testing.T) {
	for _, enc := range v1alpha1.EncodingTypes {
		options := ContentTypeOptionsFor(enc)
		if len(options) == 0 {
			continue
		}
		options[0] = "mutated"
		if got := ContentTypeOptionsFor(enc); got[0] == "mutated" {
			t.Errorf("encoding %q: options share storage between calls", enc)
		}
	}
}

func TestEncodingFromMediaType(t *testing.T) {
	tests := []struct {
		mediaType string
		want      v1alpha1.EncodingType
	}{
		{mediaType: "application/x-protostream", want: v1alpha1.EncodingProtobuf},
		{mediaType: "application/x-java-object;type=java.lang.String", want: v1alpha1.EncodingJava},
		{mediaType: "APPLICATION/JSON", want: v1alpha1.EncodingJSON},
		{mediaType: "text/plain; charset=UTF-8", want: v1alpha1.EncodingText},
		{mediaType: "application/unknown", want: v1alpha1.EncodingEmpty},
		{mediaType: "", want: v1alpha1.EncodingEmpty},
		{mediaType: "image/png", want: v1alpha1.EncodingEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.mediaType, func(t *testing.T) {
			if got := EncodingFromMediaType(tt.mediaType); got != tt.want {
				t.Errorf("EncodingFromMediaType() = %v, want %v", got, tt.want)
			}
		})
	}
	for _, enc := range v1alpha1.EncodingTypes {
		if got := EncodingFromMediaType(MediaType(enc)); got != enc {
			t.Errorf("EncodingFromMediaType(MediaType(%q)) = %q", enc, got)
		}
	}
}
