// Package errors provides structured domain errors that map onto gRPC status
// codes at the transport boundary.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Session errors
	CodeSessionTokenMissing Code = "SESSION_TOKEN_MISSING"
	CodeSessionTokenInvalid Code = "SESSION_TOKEN_INVALID"

	// User errors
	CodeUserEmptyUsername   Code = "USER_EMPTY_USERNAME"
	CodeUserInvalidUsername Code = "USER_INVALID_USERNAME"
	CodeUserEmptyPassword   Code = "USER_EMPTY_PASSWORD"
	CodeUserInvalidPassword Code = "USER_INVALID_PASSWORD"
	CodeUserAlreadyExists   Code = "USER_ALREADY_EXISTS"
	CodeInvalidCredentials  Code = "INVALID_CREDENTIALS"

	// Training errors
	CodeStepTypeInvalid      Code = "STEP_TYPE_INVALID"
	CodePlanInvalid          Code = "PLAN_INVALID"
	CodeTrainingSessionEnded Code = "TRAINING_SESSION_ENDED"
	CodeWorkoutIDInvalid     Code = "WORKOUT_ID_INVALID"

	// Storage errors
	CodeNotFound       Code = "NOT_FOUND"
	CodeStorageFailure Code = "STORAGE_FAILURE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// Unauthenticated - missing, invalid, or expired credentials
	case CodeSessionTokenMissing,
		CodeSessionTokenInvalid,
		CodeInvalidCredentials:
		return codes.Unauthenticated

	// InvalidArgument - validation failures, bad input
	case CodeUserEmptyUsername,
		CodeUserInvalidUsername,
		CodeUserEmptyPassword,
		CodeUserInvalidPassword,
		CodeStepTypeInvalid,
		CodePlanInvalid,
		CodeWorkoutIDInvalid:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeTrainingSessionEnded:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	// AlreadyExists - unique resource constraint
	case CodeUserAlreadyExists:
		return codes.AlreadyExists

	default:
		return codes.Internal
	}
}
