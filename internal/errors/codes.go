package errors

import "google.golang.org/grpc/codes"

// Code classifies an error for callers and for the transport boundary
type Code string

// Error codes
const (
	CodeOK               Code = "OK"
	CodeCanceled         Code = "CANCELED"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeUnimplemented    Code = "UNIMPLEMENTED"
	CodeInternal         Code = "INTERNAL"
	CodeUnavailable      Code = "UNAVAILABLE"
	CodeDataLoss         Code = "DATA_LOSS"
)

var grpcCodes = map[Code]codes.Code{
	CodeOK:               codes.OK,
	CodeCanceled:         codes.Canceled,
	CodeInvalidArgument:  codes.InvalidArgument,
	CodeDeadlineExceeded: codes.DeadlineExceeded,
	CodeNotFound:         codes.NotFound,
	CodeUnimplemented:    codes.Unimplemented,
	CodeInternal:         codes.Internal,
	CodeUnavailable:      codes.Unavailable,
	CodeDataLoss:         codes.DataLoss,
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the matching gRPC status code, Unknown for unmapped codes
func (c Code) GRPCCode() codes.Code {
	if grpcCode, ok := grpcCodes[c]; ok {
		return grpcCode
	}
	return codes.Unknown
}

// codeFromGRPC maps a gRPC status code back, Internal when there is no match
func codeFromGRPC(grpcCode codes.Code) Code {
	for code, candidate := range grpcCodes {
		if candidate == grpcCode {
			return code
		}
	}
	return CodeInternal
}
