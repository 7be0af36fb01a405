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

package httpx

import (
	"math"
	"net/http"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/berror/grpcx"
)

// Writer turns errors into HTTP responses. The status comes from the
// converter's mapper and the body is the google.rpc.Status JSON produced by
// the same converter, so HTTP and gRPC clients see the same details.
type Writer struct {
	Converter grpcx.Converter
}

// Write writes err to rw. A nil error writes nothing.
//
// Transient errors get a Retry-After header when the converter advertises a
// retry delay. No redaction is performed: the message and data of err are
// exposed as-is.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	st := w.Converter.ToStatus(err)

	rw.Header().Set("Content-Type", "application/json")
	if d, ok := grpcx.RetryDelay(st); ok {
		rw.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(d.Seconds())))
	}
	rw.WriteHeader(w.Converter.Resolve(err).HTTP)

	// protojson is required for the google.protobuf.Any details.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false,
	}).Marshal(st.Proto())
	_, _ = rw.Write(b)
}

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handle adapts fn to an http.Handler that reports its error through w.
func (w Writer) Handle(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		w.Write(rw, fn(rw, r))
	})
}

// retryAfterSeconds rounds up to whole seconds, never below one.
func retryAfterSeconds(s float64) int {
	n := int(math.Ceil(s))
	if n < 1 {
		return 1
	}
	return n
}
