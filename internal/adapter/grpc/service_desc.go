package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
// Messages are google.protobuf.Struct, so clients need no generated stubs.
const ServiceName = "bankdash.v1.DashboardService"

// Method names
const (
	MethodGetAccounts          = "GetAccounts"
	MethodGetTransactions      = "GetTransactions"
	MethodGetProfile           = "GetProfile"
	MethodGetAccountView       = "GetAccountView"
	MethodUpdateBalance        = "UpdateBalance"
	MethodEditBalance          = "EditBalance"
	MethodUpsertTransaction    = "UpsertTransaction"
	MethodEditTransactionField = "EditTransactionField"
	MethodAddTransaction       = "AddTransaction"
	MethodInjectTransactions   = "InjectTransactions"
	MethodUpdateProfileField   = "UpdateProfileField"
	MethodEditProfileField     = "EditProfileField"
)

// DashboardServiceServer is the server API for the dashboard service
type DashboardServiceServer interface {
	GetAccounts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTransactions(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProfile(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetAccountView(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateBalance(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EditBalance(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpsertTransaction(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EditTransactionField(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddTransaction(context.Context, *structpb.Struct) (*structpb.Struct, error)
	InjectTransactions(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateProfileField(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EditProfileField(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(DashboardServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

var methods = map[string]unaryMethod{
	MethodGetAccounts:          DashboardServiceServer.GetAccounts,
	MethodGetTransactions:      DashboardServiceServer.GetTransactions,
	MethodGetProfile:           DashboardServiceServer.GetProfile,
	MethodGetAccountView:       DashboardServiceServer.GetAccountView,
	MethodUpdateBalance:        DashboardServiceServer.UpdateBalance,
	MethodEditBalance:          DashboardServiceServer.EditBalance,
	MethodUpsertTransaction:    DashboardServiceServer.UpsertTransaction,
	MethodEditTransactionField: DashboardServiceServer.EditTransactionField,
	MethodAddTransaction:       DashboardServiceServer.AddTransaction,
	MethodInjectTransactions:   DashboardServiceServer.InjectTransactions,
	MethodUpdateProfileField:   DashboardServiceServer.UpdateProfileField,
	MethodEditProfileField:     DashboardServiceServer.EditProfileField,
}

// readMethods are open to any caller; every other method requires the operator token
var readMethods = map[string]bool{
	MethodGetAccounts:     true,
	MethodGetTransactions: true,
	MethodGetProfile:      true,
	MethodGetAccountView:  true,
}

// FullMethod returns the "/service/method" path of a method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// IsMutation reports whether a full method path changes dashboard state
func IsMutation(fullMethod string) bool {
	for name := range methods {
		if FullMethod(name) == fullMethod {
			return !readMethods[name]
		}
	}
	// Unknown methods (reflection, health) are not ours to guard
	return false
}

// ServiceDesc describes the dashboard service for grpc.Server.RegisterService
var ServiceDesc = newServiceDesc()

func newServiceDesc() grpc.ServiceDesc {
	desc := grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*DashboardServiceServer)(nil),
		Streams:     []grpc.StreamDesc{},
		Metadata:    ProtoFile,
	}
	for _, name := range methodNames() {
		desc.Methods = append(desc.Methods, grpc.MethodDesc{
			MethodName: name,
			Handler:    unaryHandler(name, methods[name]),
		})
	}
	return desc
}

func unaryHandler(name string, call unaryMethod) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(DashboardServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(name),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(server, ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// RegisterDashboardServiceServer registers the dashboard service on s
func RegisterDashboardServiceServer(s grpc.ServiceRegistrar, srv DashboardServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client is a thin client for the dashboard service
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a new dashboard service client
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes a dashboard method with the given request fields
func (c *Client) Call(ctx context.Context, method string, fields map[string]interface{}, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
