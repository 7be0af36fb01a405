/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/berror"
	"dirpx.dev/berror/apis"
	"dirpx.dev/berror/code"
	"dirpx.dev/berror/mapper"
)

// DefaultDomain is the google.rpc.ErrorInfo domain used when Converter.Domain
// is empty.
const DefaultDomain = "berror.dirpx.dev"

// ErrorInfo metadata keys.
const (
	metaTransient = "transient"
	metaAugmented = "augmented"
)

var defaultMapper = sync.OnceValue(func() apis.Mapper {
	m, err := mapper.New()
	if err != nil {
		// no options, cannot fail
		panic(err)
	}
	return m
})

// Converter projects berror errors onto gRPC statuses and back.
//
// The projection uses only canonical types: the status code comes from the
// Mapper, the code and transience travel in a google.rpc.ErrorInfo, the data
// in a google.protobuf.Struct, and a google.rpc.RetryInfo is added for
// transient errors when RetryDelay is set.
type Converter struct {
	// Mapper resolves the status code. Library defaults are used when nil.
	Mapper apis.Mapper

	// Domain identifies ErrorInfo details produced and accepted by this
	// converter. DefaultDomain when empty.
	Domain string

	// RetryDelay is advertised in RetryInfo for transient errors. Zero
	// disables RetryInfo.
	RetryDelay time.Duration
}

func (c Converter) domain() string {
	if c.Domain == "" {
		return DefaultDomain
	}
	return c.Domain
}

func (c Converter) mapper() apis.Mapper {
	if c.Mapper == nil {
		return defaultMapper()
	}
	return c.Mapper
}

// Resolve returns the HTTP and gRPC statuses for err.
func (c Converter) Resolve(err error) apis.Status {
	return mapper.Resolve(c.mapper(), err)
}

// ToStatus converts any error into a gRPC status, reading its fields through
// the berror accessors. A nil error yields nil.
//
// If the details cannot be attached, the bare status is returned.
func (c Converter) ToStatus(err error) *status.Status {
	if err == nil {
		return nil
	}
	transient := berror.IsTransient(err)
	base := status.New(c.Resolve(err).GRPC, err.Error())

	details := []protoadapt.MessageV1{
		&errdetails.ErrorInfo{
			Reason: berror.GetCode(err),
			Domain: c.domain(),
			Metadata: map[string]string{
				metaTransient: strconv.FormatBool(transient),
				metaAugmented: strconv.FormatBool(berror.IsBError(err)),
			},
		},
	}
	if data := berror.GetData(err); len(data) > 0 {
		details = append(details, toStruct(data))
	}
	if transient && c.RetryDelay > 0 {
		details = append(details, &errdetails.RetryInfo{RetryDelay: durationpb.New(c.RetryDelay)})
	}

	with, derr := base.WithDetails(details...)
	if derr != nil {
		return base
	}
	return with
}

// FromError is the inverse of ToStatus. When err is a status error carrying
// an ErrorInfo of this converter's domain, it returns an error whose code,
// message, data and transience match the sender's; otherwise err is returned
// unchanged.
//
// Errors that were augmented on the sending side come back augmented, with
// the status error as their cause. Errors that only had fields attached come
// back as attached fields on a plain error with the status message.
func (c Converter) FromError(err error) error {
	if err == nil || berror.IsBError(err) {
		return err
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() == codes.OK {
		return err
	}

	var (
		info *errdetails.ErrorInfo
		data berror.Data
	)
	for _, d := range st.Details() {
		switch d := d.(type) {
		case *errdetails.ErrorInfo:
			if d.GetDomain() == c.domain() {
				info = d
			}
		case *structpb.Struct:
			data = berror.Data(d.AsMap())
		}
	}
	if info == nil {
		return err
	}

	transient := info.GetMetadata()[metaTransient] != "false"
	if info.GetMetadata()[metaAugmented] == "false" {
		out := errors.New(st.Message())
		out = berror.SetCode(out, info.GetReason())
		out = berror.SetTransient(out, transient)
		if data != nil {
			out = berror.SetData(out, data)
		}
		return out
	}
	return berror.New(code.Code(info.GetReason()),
		berror.WithMessage(st.Message()),
		berror.WithData(data),
		berror.WithTransient(transient),
		berror.WithCause(err),
	)
}

// ExtractInfo pulls the google.rpc.ErrorInfo out of a gRPC error, if present.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// RetryDelay returns the delay advertised by a google.rpc.RetryInfo detail.
func RetryDelay(st *status.Status) (time.Duration, bool) {
	for _, d := range st.Details() {
		if ri, ok := d.(*errdetails.RetryInfo); ok && ri.GetRetryDelay() != nil {
			return ri.GetRetryDelay().AsDuration(), true
		}
	}
	return 0, false
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that converts
// handler errors holding a *berror.Error into rich gRPC statuses via c.
// Other errors are returned as-is.
func UnaryServerInterceptor(c Converter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := berror.As(err); !ok {
			// Not ours.
			return nil, err
		}
		return nil, c.ToStatus(err).Err()
	}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// status errors produced by a server-side Converter back into berror errors.
func UnaryClientInterceptor(c Converter) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if err := invoker(ctx, method, req, reply, cc, opts...); err != nil {
			return c.FromError(err)
		}
		return nil
	}
}

// toStruct converts data into a google.protobuf.Struct. Values structpb
// cannot represent are sent as their fmt.Sprint form, leaf by leaf.
func toStruct(data berror.Data) *structpb.Struct {
	return toStructFields(data)
}

func toStructFields(m map[string]any) *structpb.Struct {
	fields := make(map[string]*structpb.Value, len(m))
	for k, v := range m {
		fields[k] = toValue(v)
	}
	return &structpb.Struct{Fields: fields}
}

// toValue descends into maps and slices so nested berror.Data and
// unrepresentable leaves do not spoil their siblings.
func toValue(v any) *structpb.Value {
	switch v := v.(type) {
	case berror.Data:
		return structpb.NewStructValue(toStructFields(v))
	case map[string]any:
		return structpb.NewStructValue(toStructFields(v))
	case []any:
		vals := make([]*structpb.Value, len(v))
		for i, x := range v {
			vals[i] = toValue(x)
		}
		return structpb.NewListValue(&structpb.ListValue{Values: vals})
	}
	pv, err := structpb.NewValue(v)
	if err != nil {
		return structpb.NewStringValue(fmt.Sprint(v))
	}
	return pv
}
