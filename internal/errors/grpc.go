package errors

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Domain identifies reliquary errors in google.rpc.ErrorInfo details
const Domain = "reliquary-api"

// ToGRPCError converts an error to a gRPC status error. Metadata travels as
// an errdetails.ErrorInfo whose reason is the error code.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// already a status
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if As(err, &customErr) {
		st := status.New(customErr.Code.GRPCCode(), customErr.Message)

		if len(customErr.Meta) > 0 {
			detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
				Reason:   string(customErr.Code),
				Domain:   Domain,
				Metadata: stringifyMeta(customErr.Meta),
			})
			if detailErr == nil {
				st = detailed
			}
		}

		return st.Err()
	}

	// anything else is opaque to the caller
	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError converts a gRPC error to our custom error. Metadata values
// come back as strings.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		if len(info.GetMetadata()) > 0 {
			customErr.Meta = make(map[string]any, len(info.GetMetadata()))
			for k, v := range info.GetMetadata() {
				customErr.Meta[k] = v
			}
		}
		break
	}

	return customErr
}

func stringifyMeta(meta map[string]any) map[string]string {
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[k] = fmt.Sprint(v)
	}
	return out
}

// grpcCodes pairs each error code with its gRPC status code
var grpcCodes = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodePermissionDenied:   codes.PermissionDenied,
	CodeResourceExhausted:  codes.ResourceExhausted,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeAborted:            codes.Aborted,
	CodeOutOfRange:         codes.OutOfRange,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
	CodeDataLoss:           codes.DataLoss,
	CodeUnauthenticated:    codes.Unauthenticated,
}

// GRPCCode returns the matching gRPC code, or Unknown for a code outside the table
func (c Code) GRPCCode() codes.Code {
	if gc, ok := grpcCodes[c]; ok {
		return gc
	}
	return codes.Unknown
}

// grpcCodeToCode is the inverse of GRPCCode. Unmapped gRPC codes become CodeInternal.
func grpcCodeToCode(gc codes.Code) Code {
	for c, mapped := range grpcCodes {
		if mapped == gc {
			return c
		}
	}
	return CodeInternal
}
