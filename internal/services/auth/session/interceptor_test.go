package session

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/louisbranch/cyclingtracker/internal/platform/requestctx"
)

type fakeServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *fakeServerStream) Context() context.Context {
	return s.ctx
}

func issuedManager(t *testing.T) (*Manager, string) {
	t.Helper()
	manager := NewManager(newFakeTokenStore(), time.Minute)
	token, err := manager.Issue(context.Background(), "alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return manager, token
}

func TestServiceMethods(t *testing.T) {
	filter := ServiceMethods("cyclingtracker.CyclingTracker")
	if !filter("/cyclingtracker.CyclingTracker/RunWorkout") {
		t.Fatal("expected tracker method to be guarded")
	}
	if filter("/cyclingtracker.SessionAuth/Login") {
		t.Fatal("expected auth method to be open")
	}
	if filter("/cyclingtracker.CyclingTrackerX/RunWorkout") {
		t.Fatal("expected prefix match to stop at the service boundary")
	}
}

func TestUnaryInterceptorSkipsOpenMethods(t *testing.T) {
	manager, _ := issuedManager(t)
	interceptor := UnaryServerInterceptor(manager, ServiceMethods("guarded.Service"))

	called := false
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/open.Service/Call"},
		func(context.Context, any) (any, error) {
			called = true
			return nil, nil
		})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if !called {
		t.Fatal("expected handler to run")
	}
}

func TestUnaryInterceptorRejectsMissingToken(t *testing.T) {
	manager, _ := issuedManager(t)
	interceptor := UnaryServerInterceptor(manager, ServiceMethods("guarded.Service"))

	called := false
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/guarded.Service/Call"},
		func(context.Context, any) (any, error) {
			called = true
			return nil, nil
		})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("status = %v, want Unauthenticated", status.Code(err))
	}
	if called {
		t.Fatal("expected handler not to run")
	}
}

func TestUnaryInterceptorStoresUsername(t *testing.T) {
	manager, token := issuedManager(t)
	interceptor := UnaryServerInterceptor(manager, nil)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(AuthorizationHeader, token))

	var username string
	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/guarded.Service/Call"},
		func(ctx context.Context, _ any) (any, error) {
			username = requestctx.UsernameFromContext(ctx)
			return nil, nil
		})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if username != "alice" {
		t.Fatalf("username = %q, want alice", username)
	}
}

func TestStreamInterceptorAuthenticatesOnce(t *testing.T) {
	manager, token := issuedManager(t)
	interceptor := StreamServerInterceptor(manager, ServiceMethods("guarded.Service"))
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(AuthorizationHeader, token))

	var username string
	err := interceptor(nil, &fakeServerStream{ctx: ctx}, &grpc.StreamServerInfo{FullMethod: "/guarded.Service/Stream"},
		func(_ any, stream grpc.ServerStream) error {
			username = requestctx.UsernameFromContext(stream.Context())
			return nil
		})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if username != "alice" {
		t.Fatalf("username = %q, want alice", username)
	}
}

func TestStreamInterceptorRejectsInvalidToken(t *testing.T) {
	manager, _ := issuedManager(t)
	interceptor := StreamServerInterceptor(manager, ServiceMethods("guarded.Service"))
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(AuthorizationHeader, "bogus"))

	called := false
	err := interceptor(nil, &fakeServerStream{ctx: ctx}, &grpc.StreamServerInfo{FullMethod: "/guarded.Service/Stream"},
		func(any, grpc.ServerStream) error {
			called = true
			return nil
		})
	st := status.Convert(err)
	if st.Code() != codes.Unauthenticated || st.Message() != "invalid session token" {
		t.Fatalf("status = %v %q", st.Code(), st.Message())
	}
	if called {
		t.Fatal("expected handler not to run")
	}
}
