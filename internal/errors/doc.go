// Package errors carries coded errors through reliquary-api.
//
// Every layer returns *Error values built by the constructors here:
//
//	errors.NotFoundf("effect %s not found", id).WithMeta("effect_id", id)
//	errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open catalog file")
//
// Wrap keeps the inner code; WrapWithCode replaces it. Callers branch on the
// code with IsNotFound, IsInvalidArgument, IsUnavailable and IsDataLoss, or
// read it with GetCode.
//
// # Catalog loading
//
// A source that cannot be reached returns Unavailable. Bytes that do not
// decode, and a catalog with no effects, return DataLoss. Bad records (empty
// or duplicate ids) return InvalidArgument. All three stop the server.
//
// # Validation
//
// Config structs validate with a ValidationBuilder; the resulting
// InvalidArgument error lists each failing field under the
// "validation_errors" metadata key.
//
// # gRPC
//
// Handlers return ToGRPCError(err). The code maps onto the gRPC status code
// and any metadata rides along as a google.rpc.ErrorInfo detail in the
// reliquary-api domain, stringified. FromGRPCError reverses the mapping on
// the client side. Errors that are not *Error become Internal.
package errors
