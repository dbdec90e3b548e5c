package session

import (
	"context"
	"log"
	"strings"

	apperrors "github.com/louisbranch/cyclingtracker/internal/platform/errors"
	grpcmeta "github.com/louisbranch/cyclingtracker/internal/platform/grpc/metadata"
	"github.com/louisbranch/cyclingtracker/internal/platform/requestctx"
	"google.golang.org/grpc"
)

// MethodFilter reports whether a full method name requires a session.
type MethodFilter func(fullMethod string) bool

// ServiceMethods guards every method of the named gRPC services.
func ServiceMethods(serviceNames ...string) MethodFilter {
	prefixes := make([]string, 0, len(serviceNames))
	for _, name := range serviceNames {
		prefixes = append(prefixes, "/"+name+"/")
	}
	return func(fullMethod string) bool {
		for _, prefix := range prefixes {
			if strings.HasPrefix(fullMethod, prefix) {
				return true
			}
		}
		return false
	}
}

// UnaryServerInterceptor verifies the session token before guarded unary
// handlers run and stores the username in the handler context.
func UnaryServerInterceptor(m *Manager, guarded MethodFilter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if guarded != nil && !guarded(info.FullMethod) {
			return handler(ctx, req)
		}
		authedCtx, err := m.authenticate(ctx, info.FullMethod)
		if err != nil {
			return nil, err
		}
		return handler(authedCtx, req)
	}
}

// StreamServerInterceptor verifies the session token once when a guarded
// stream is established. Individual messages are not re-checked.
func StreamServerInterceptor(m *Manager, guarded MethodFilter) grpc.StreamServerInterceptor {
	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if guarded != nil && !guarded(info.FullMethod) {
			return handler(srv, stream)
		}
		authedCtx, err := m.authenticate(stream.Context(), info.FullMethod)
		if err != nil {
			return err
		}
		return handler(srv, &wrappedServerStream{ServerStream: stream, ctx: authedCtx})
	}
}

func (m *Manager) authenticate(ctx context.Context, method string) (context.Context, error) {
	username, err := m.VerifyIncoming(ctx)
	if err != nil {
		log.Printf("session rejected method=%s request_id=%s code=%s", method, grpcmeta.RequestIDFromContext(ctx), apperrors.GetCode(err))
		return nil, apperrors.HandleError(err)
	}
	return requestctx.WithUsername(ctx, username), nil
}

// wrappedServerStream overrides the context for a gRPC stream.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the authenticated stream context.
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}
