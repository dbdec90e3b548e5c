package metadata

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestRequestIDContextHelpers(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract.
	if RequestIDFromContext(nil) != "" {
		t.Fatal("expected empty request id for nil context")
	}

	//nolint:staticcheck // nil context is part of the contract.
	ctx := WithRequestID(nil, "req-1")
	if RequestIDFromContext(ctx) != "req-1" {
		t.Fatalf("expected request id req-1, got %s", RequestIDFromContext(ctx))
	}
}

func TestIsPrintableASCII(t *testing.T) {
	if IsPrintableASCII("") {
		t.Fatal("expected empty string to be non-printable")
	}
	if !IsPrintableASCII("hello") {
		t.Fatal("expected printable ascii to be accepted")
	}
	if IsPrintableASCII("line\n") {
		t.Fatal("expected newline to be non-printable")
	}
	if IsPrintableASCII(string([]byte{0x7f})) {
		t.Fatal("expected DEL to be non-printable")
	}
}

func TestFirstMetadataValue(t *testing.T) {
	md := metadata.MD{
		"X-Cycling-Tracker-Request-Id": {"\n", "req-1"},
	}
	if value := FirstMetadataValue(md, RequestIDHeader); value != "req-1" {
		t.Fatalf("expected printable request id, got %s", value)
	}
	if FirstMetadataValue(metadata.MD{}, RequestIDHeader) != "" {
		t.Fatal("expected empty value for empty metadata")
	}
}

func TestEnsureRequestIDKeepsIncoming(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "req-1"))

	updated, requestID, err := ensureRequestID(ctx, func() (string, error) {
		return "generated", nil
	})
	if err != nil {
		t.Fatalf("ensure request id: %v", err)
	}
	if requestID != "req-1" {
		t.Fatalf("expected id from metadata, got %s", requestID)
	}
	if RequestIDFromContext(updated) != "req-1" {
		t.Fatal("expected request id stored in context")
	}
}

func TestEnsureRequestIDGenerates(t *testing.T) {
	updated, requestID, err := ensureRequestID(context.Background(), func() (string, error) {
		return "generated", nil
	})
	if err != nil {
		t.Fatalf("ensure request id: %v", err)
	}
	if requestID != "generated" || RequestIDFromContext(updated) != "generated" {
		t.Fatalf("expected generated request id, got %s", requestID)
	}
}

func TestEnsureRequestIDGeneratorFailure(t *testing.T) {
	_, _, err := ensureRequestID(context.Background(), func() (string, error) {
		return "", errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected generator error")
	}
}

type fakeServerStream struct {
	grpc.ServerStream
	ctx    context.Context
	header metadata.MD
}

func (f *fakeServerStream) Context() context.Context { return f.ctx }

func (f *fakeServerStream) SetHeader(md metadata.MD) error {
	f.header = metadata.Join(f.header, md)
	return nil
}

func TestStreamServerInterceptorPropagatesRequestID(t *testing.T) {
	stream := &fakeServerStream{ctx: context.Background()}
	interceptor := StreamServerInterceptor(func() (string, error) { return "stream-1", nil })

	var seen string
	err := interceptor(nil, stream, &grpc.StreamServerInfo{FullMethod: "/test/Stream"}, func(_ any, ss grpc.ServerStream) error {
		seen = RequestIDFromContext(ss.Context())
		return nil
	})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if seen != "stream-1" {
		t.Fatalf("handler request id = %q, want %q", seen, "stream-1")
	}
	if got := FirstMetadataValue(stream.header, RequestIDHeader); got != "stream-1" {
		t.Fatalf("response header = %q, want %q", got, "stream-1")
	}
}

func TestStreamServerInterceptorReturnsHandlerError(t *testing.T) {
	stream := &fakeServerStream{ctx: context.Background()}
	interceptor := StreamServerInterceptor(nil)
	want := errors.New("handler failed")

	err := interceptor(nil, stream, &grpc.StreamServerInfo{FullMethod: "/test/Stream"}, func(any, grpc.ServerStream) error {
		return want
	})
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}
