package errors

const (
	UnknownErrorCode      = 100_001
	InvalidInputErrorCode = 100_002
)

var UnknownError = new(UnknownErrorCode, "UnknownError", "unexpected error: %s")

// InvalidInputError indicates user gives empty or malformed value for a field
var InvalidInputError = new(InvalidInputErrorCode, "InvalidInput", "%s must not be empty")

const RequestBodyInvalidErrorCode = 100_003

// RequestBodyInvalidError indicates request body cannot be bound to expected fields
var RequestBodyInvalidError = new(RequestBodyInvalidErrorCode, "RequestBodyInvalid", "request is invalid: %s")
