package errors

import (
	"context"
	stderrors "errors"
	"log"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Domain is the error domain for cycling tracker errors.
const Domain = "github.com/louisbranch/cyclingtracker"

// internalMessage is the only reason string exposed for Internal failures.
const internalMessage = "internal error"

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human-readable reason returned to callers
	Metadata map[string]string // Additional context attached to status details
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error with metadata for status details.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// GetCode returns the domain code carried by err, or CodeUnknown.
func GetCode(err error) Code {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}

// ToGRPCStatus converts the error to a gRPC status with errdetails.
// Internal failures never expose their message or cause.
func (e *Error) ToGRPCStatus() error {
	grpcCode := e.Code.GRPCCode()
	message := e.Message
	if grpcCode == codes.Internal {
		message = internalMessage
	}
	st := status.New(grpcCode, message)

	st, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   string(e.Code),
		Domain:   Domain,
		Metadata: e.Metadata,
	})
	if err != nil {
		// If we can't attach details, return the basic status
		return status.New(grpcCode, message).Err()
	}
	return st.Err()
}

// HandleError converts err into a gRPC status error.
//
// Domain errors keep their code and reason. Errors that already carry a gRPC
// status pass through. Anything else is logged and reported as Internal.
func HandleError(err error) error {
	if err == nil {
		return nil
	}
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		if domainErr.Code.GRPCCode() == codes.Internal {
			log.Printf("internal failure code=%s err=%v", domainErr.Code, err)
		}
		return domainErr.ToGRPCStatus()
	}
	if st, ok := status.FromError(err); ok {
		return st.Err()
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	log.Printf("internal failure err=%v", err)
	return status.Error(codes.Internal, internalMessage)
}

// ReasonFromStatus returns the ErrorInfo reason attached to a gRPC status error.
func ReasonFromStatus(err error) Code {
	st, ok := status.FromError(err)
	if !ok {
		return CodeUnknown
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			return Code(info.GetReason())
		}
	}
	return CodeUnknown
}
