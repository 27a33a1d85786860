package grpc

import (
	"fmt"
	"sort"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ProtoFile is the descriptor path the service is registered under
const ProtoFile = "bankdash/v1/dashboard.proto"

// The service has no .proto source, so its descriptor is built here and
// registered globally for server reflection.
func init() {
	if err := registerFileDescriptor(protoregistry.GlobalFiles); err != nil {
		panic(fmt.Sprintf("grpc: register %s: %v", ProtoFile, err))
	}
}

func registerFileDescriptor(files *protoregistry.Files) error {
	if _, err := files.FindFileByPath(ProtoFile); err == nil {
		return nil
	}

	fd, err := protodesc.NewFile(fileDescriptorProto(), files)
	if err != nil {
		return err
	}
	return files.RegisterFile(fd)
}

func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	structFile := (&structpb.Struct{}).ProtoReflect().Descriptor().ParentFile()
	structName := "." + string((&structpb.Struct{}).ProtoReflect().Descriptor().FullName())

	pkg, service, _ := cutLast(ServiceName, ".")
	svc := &descriptorpb.ServiceDescriptorProto{Name: proto.String(service)}
	for _, name := range methodNames() {
		svc.Method = append(svc.Method, &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(name),
			InputType:  proto.String(structName),
			OutputType: proto.String(structName),
		})
	}

	return &descriptorpb.FileDescriptorProto{
		Name:       proto.String(ProtoFile),
		Package:    proto.String(pkg),
		Dependency: []string{structFile.Path()},
		Service:    []*descriptorpb.ServiceDescriptorProto{svc},
		Syntax:     proto.String("proto3"),
	}
}

func methodNames() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return "", s, false
	}
	return s[:i], s[i+len(sep):], true
}
