package cyclingtrackerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SessionAuthServiceName is the fully-qualified SessionAuth service name.
const SessionAuthServiceName = "cyclingtracker.SessionAuth"

const (
	SessionAuth_SignUp_FullMethodName = "/cyclingtracker.SessionAuth/SignUp"
	SessionAuth_Login_FullMethodName  = "/cyclingtracker.SessionAuth/Login"
)

// SessionAuthClient is the client API for the SessionAuth service.
type SessionAuthClient interface {
	SignUp(ctx context.Context, in *Credentials, opts ...grpc.CallOption) (*SignUpResult, error)
	Login(ctx context.Context, in *Credentials, opts ...grpc.CallOption) (*SessionToken, error)
}

type sessionAuthClient struct {
	cc grpc.ClientConnInterface
}

// NewSessionAuthClient returns a SessionAuth client over cc.
func NewSessionAuthClient(cc grpc.ClientConnInterface) SessionAuthClient {
	return &sessionAuthClient{cc}
}

func (c *sessionAuthClient) SignUp(ctx context.Context, in *Credentials, opts ...grpc.CallOption) (*SignUpResult, error) {
	out := new(SignUpResult)
	if err := c.cc.Invoke(ctx, SessionAuth_SignUp_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionAuthClient) Login(ctx context.Context, in *Credentials, opts ...grpc.CallOption) (*SessionToken, error) {
	out := new(SessionToken)
	if err := c.cc.Invoke(ctx, SessionAuth_Login_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// SessionAuthServer is the server API for the SessionAuth service.
// Implementations must embed UnimplementedSessionAuthServer.
type SessionAuthServer interface {
	SignUp(context.Context, *Credentials) (*SignUpResult, error)
	Login(context.Context, *Credentials) (*SessionToken, error)
	mustEmbedUnimplementedSessionAuthServer()
}

// UnimplementedSessionAuthServer returns Unimplemented for every method.
type UnimplementedSessionAuthServer struct{}

func (UnimplementedSessionAuthServer) SignUp(context.Context, *Credentials) (*SignUpResult, error) {
	return nil, status.Error(codes.Unimplemented, "method SignUp not implemented")
}

func (UnimplementedSessionAuthServer) Login(context.Context, *Credentials) (*SessionToken, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

func (UnimplementedSessionAuthServer) mustEmbedUnimplementedSessionAuthServer() {}

// RegisterSessionAuthServer registers srv on s.
func RegisterSessionAuthServer(s grpc.ServiceRegistrar, srv SessionAuthServer) {
	s.RegisterService(&SessionAuth_ServiceDesc, srv)
}

func _SessionAuth_SignUp_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Credentials)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionAuthServer).SignUp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SessionAuth_SignUp_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SessionAuthServer).SignUp(ctx, req.(*Credentials))
	}
	return interceptor(ctx, in, info, handler)
}

func _SessionAuth_Login_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Credentials)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionAuthServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SessionAuth_Login_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SessionAuthServer).Login(ctx, req.(*Credentials))
	}
	return interceptor(ctx, in, info, handler)
}

// SessionAuth_ServiceDesc is the grpc.ServiceDesc for the SessionAuth service.
var SessionAuth_ServiceDesc = grpc.ServiceDesc{
	ServiceName: SessionAuthServiceName,
	HandlerType: (*SessionAuthServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SignUp",
			Handler:    _SessionAuth_SignUp_Handler,
		},
		{
			MethodName: "Login",
			Handler:    _SessionAuth_Login_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cyclingtracker.proto",
}
