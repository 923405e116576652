package v1alpha1

// EncodingType is the media type of all keys or all values of a cache.
type EncodingType string

const (
	EncodingProtobuf       EncodingType = "Protobuf"
	EncodingJava           EncodingType = "Java"
	EncodingJavaSerialized EncodingType = "JavaSerialized"
	EncodingJBoss          EncodingType = "JBoss"
	EncodingXML            EncodingType = "XML"
	EncodingJSON           EncodingType = "JSON"
	EncodingText           EncodingType = "Text"
	EncodingOctetStream    EncodingType = "OctetStream"

	// EncodingEmpty leaves the media type to the server default.
	EncodingEmpty EncodingType = ""
)

// EncodingTypes lists every encoding, EncodingEmpty included.
var EncodingTypes = []EncodingType{
	EncodingProtobuf,
	EncodingJava,
	EncodingJavaSerialized,
	EncodingJBoss,
	EncodingXML,
	EncodingJSON,
	EncodingText,
	EncodingOctetStream,
	EncodingEmpty,
}

// ContentType is the shape of a single key or value entered through a form.
type ContentType string

// Boxed primitives, used with the language-native object encodings.
const (
	ContentTypeString  ContentType = "String"
	ContentTypeInteger ContentType = "Integer"
	ContentTypeDouble  ContentType = "Double"
	ContentTypeFloat   ContentType = "Float"
	ContentTypeLong    ContentType = "Long"
	ContentTypeBoolean ContentType = "Boolean"
)

// Document content types.
const (
	ContentTypeJSON ContentType = "JSON"
	ContentTypeXML  ContentType = "XML"
	ContentTypeYAML ContentType = "YAML"
)

// Protobuf scalar types, used with the Protobuf encoding.
const (
	ProtobufString   ContentType = "string"
	ProtobufFloat    ContentType = "float"
	ProtobufDouble   ContentType = "double"
	ProtobufInt32    ContentType = "int32"
	ProtobufInt64    ContentType = "int64"
	ProtobufUint32   ContentType = "uint32"
	ProtobufUint64   ContentType = "uint64"
	ProtobufSint32   ContentType = "sint32"
	ProtobufSint64   ContentType = "sint64"
	ProtobufFixed32  ContentType = "fixed32"
	ProtobufFixed64  ContentType = "fixed64"
	ProtobufSfixed32 ContentType = "sfixed32"
	ProtobufSfixed64 ContentType = "sfixed64"
	ProtobufBool     ContentType = "bool"
	ProtobufBytes    ContentType = "bytes"

	// ProtobufCustomType is any message or enum declared in a schema.
	ProtobufCustomType ContentType = "customType"
)

// BoxedContentTypes lists the boxed primitives in the order they are offered.
var BoxedContentTypes = []ContentType{
	ContentTypeString,
	ContentTypeInteger,
	ContentTypeDouble,
	ContentTypeFloat,
	ContentTypeLong,
	ContentTypeBoolean,
}

// ProtobufScalarTypes lists the fifteen Protobuf scalar types in the order they are offered.
var ProtobufScalarTypes = []ContentType{
	ProtobufString,
	ProtobufFloat,
	ProtobufDouble,
	ProtobufInt32,
	ProtobufInt64,
	ProtobufUint32,
	ProtobufUint64,
	ProtobufSint32,
	ProtobufSint64,
	ProtobufFixed32,
	ProtobufFixed64,
	ProtobufSfixed32,
	ProtobufSfixed64,
	ProtobufBool,
	ProtobufBytes,
}

// IsBoxed reports whether c is a boxed primitive.
func (c ContentType) IsBoxed() bool {
	for _, b := range BoxedContentTypes {
		if b == c {
			return true
		}
	}
	return false
}

var (
	// EncodeEncodingType maps an encoding to the media type sent on the wire.
	EncodeEncodingType = map[EncodingType]string{
		EncodingProtobuf:       "application/x-protostream",
		EncodingJava:           "application/x-java-object",
		EncodingJavaSerialized: "application/x-java-serialized-object",
		EncodingJBoss:          "application/x-jboss-marshalling",
		EncodingXML:            "application/xml",
		EncodingJSON:           "application/json",
		EncodingText:           "text/plain",
		EncodingOctetStream:    "application/octet-stream",
		EncodingEmpty:          "",
	}
)
