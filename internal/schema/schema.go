package schema

import (
	"fmt"
	"sort"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
	"github.com/hazelcast/cache-config-engine/internal/mediatype"
)

// Registry holds the Protobuf schemas registered on the cluster.
type Registry struct {
	files *protoregistry.Files
}

// Field is a message field offered for data entry.
type Field struct {
	Name        string               `json:"name" yaml:"name"`
	ContentType v1alpha1.ContentType `json:"contentType" yaml:"contentType"`
}

// Load reads a serialized FileDescriptorSet, as produced by protoc --descriptor_set_out.
func Load(data []byte) (*Registry, error) {
	set := &descriptorpb.FileDescriptorSet{}
	if err := proto.Unmarshal(data, set); err != nil {
		return nil, fmt.Errorf("could not decode descriptor set: %w", err)
	}
	return FromDescriptorSet(set)
}

// FromDescriptorSet builds a registry from a decoded FileDescriptorSet.
func FromDescriptorSet(set *descriptorpb.FileDescriptorSet) (*Registry, error) {
	files, err := protodesc.NewFiles(set)
	if err != nil {
		return nil, fmt.Errorf("invalid descriptor set: %w", err)
	}
	return &Registry{files: files}, nil
}

// Entities returns the fully qualified names of every message, nested ones included, sorted.
func (r *Registry) Entities() []string {
	var entities []string
	r.files.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
		entities = appendMessages(entities, fd.Messages())
		return true
	})
	sort.Strings(entities)
	return entities
}

// Fields returns the fields of a message in declaration order.
func (r *Registry) Fields(entity string) ([]Field, error) {
	d, err := r.files.FindDescriptorByName(protoreflect.FullName(entity))
	if err != nil {
		return nil, fmt.Errorf("entity %q: %w", entity, err)
	}
	md, ok := d.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, fmt.Errorf("entity %q is not a message", entity)
	}

	fds := md.Fields()
	fields := make([]Field, 0, fds.Len())
	for i := 0; i < fds.Len(); i++ {
		fd := fds.Get(i)
		fields = append(fields, Field{
			Name:        string(fd.Name()),
			ContentType: mediatype.FromProtobufKind(fd.Kind()),
		})
	}
	return fields, nil
}

func appendMessages(entities []string, mds protoreflect.MessageDescriptors) []string {
	for i := 0; i < mds.Len(); i++ {
		md := mds.Get(i)
		if md.IsMapEntry() {
			continue
		}
		entities = append(entities, string(md.FullName()))
		entities = appendMessages(entities, md.Messages())
	}
	return entities
}
