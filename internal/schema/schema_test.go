package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
)

func libraryDescriptorSet() *descriptorpb.FileDescriptorSet {
	optional := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum()
	field := func(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type, typeName string) *descriptorpb.FieldDescriptorProto {
		f := &descriptorpb.FieldDescriptorProto{
			Name:   proto.String(name),
			Number: proto.Int32(number),
			Label:  optional,
			Type:   typ.Enum(),
		}
		if typeName != "" {
			f.TypeName = proto.String(typeName)
		}
		return f
	}

	return &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{{
			Name:    proto.String("library.proto"),
			Package: proto.String("library"),
			Syntax:  proto.String("proto3"),
			EnumType: []*descriptorpb.EnumDescriptorProto{{
				Name: proto.String("Genre"),
				Value: []*descriptorpb.EnumValueDescriptorProto{
					{Name: proto.String("UNKNOWN"), Number: proto.Int32(0)},
					{Name: proto.String("FICTION"), Number: proto.Int32(1)},
				},
			}},
			MessageType: []*descriptorpb.DescriptorProto{
				{
					Name: proto.String("Book"),
					Field: []*descriptorpb.FieldDescriptorProto{
						field("title", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
						field("pages", 2, descriptorpb.FieldDescriptorProto_TYPE_INT32, ""),
						field("price", 3, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE, ""),
						field("genre", 4, descriptorpb.FieldDescriptorProto_TYPE_ENUM, ".library.Genre"),
						field("author", 5, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, ".library.Author"),
						field("cover", 6, descriptorpb.FieldDescriptorProto_TYPE_BYTES, ""),
					},
					NestedType: []*descriptorpb.DescriptorProto{{
						Name: proto.String("Edition"),
						Field: []*descriptorpb.FieldDescriptorProto{
							field("year", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT32, ""),
						},
					}},
				},
				{
					Name: proto.String("Author"),
					Field: []*descriptorpb.FieldDescriptorProto{
						field("name", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
						field("alive", 2, descriptorpb.FieldDescriptorProto_TYPE_BOOL, ""),
					},
				},
			},
		}},
	}
}

func loadLibrary(t *testing.T) *Registry {
	t.Helper()
	data, err := proto.Marshal(libraryDescriptorSet())
	if err != nil {
		t.Fatalf("proto.Marshal() error = %v", err)
	}
	r, err := Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return r
}

func TestEntities(t *testing.T) {
	r := loadLibrary(t)
	want := []string{"library.Author", "library.Book", "library.Book.Edition"}
	if diff := cmp.Diff(want, r.Entities()); diff != "" {
		t.Errorf("Entities() mismatch (-want +got):\n%s", diff)
	}
}

func TestFields(t *testing.T) {
	r := loadLibrary(t)
	tests := []struct {
		entity  string
		want    []Field
		wantErr bool
	}{
		{
			entity: "library.Book",
			want: []Field{
				{Name: "title", ContentType: v1alpha1.ProtobufString},
				{Name: "pages", ContentType: v1alpha1.ProtobufInt32},
				{Name: "price", ContentType: v1alpha1.ProtobufDouble},
				{Name: "genre", ContentType: v1alpha1.ProtobufCustomType},
				{Name: "author", ContentType: v1alpha1.ProtobufCustomType},
				{Name: "cover", ContentType: v1alpha1.ProtobufBytes},
			},
		},
		{
			entity: "library.Book.Edition",
			want:   []Field{{Name: "year", ContentType: v1alpha1.ProtobufUint32}},
		},
		{entity: "library.Genre", wantErr: true},
		{entity: "library.Missing", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.entity, func(t *testing.T) {
			got, err := r.Fields(tt.entity)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Fields() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if _, err := Load([]byte("not a descriptor set")); err == nil {
		t.Error("Load() error = nil, want an error")
	}
}
