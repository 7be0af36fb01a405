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

package mapper

import (
	"net/http"

	"dirpx.dev/berror/code"
	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw, dot-separated code prefix (may contain "*").
	// It is validated/normalized when we build the trie.
	prefix string
	// val is the numeric transport status to apply when this prefix matches.
	val int
}

// fallback holds the statuses used when no rule covers a code.
type fallback struct {
	transientHTTP int
	permanentHTTP int
	transientGRPC codes.Code
	permanentGRPC codes.Code
}

type builder struct {
	// httpDefaults holds per-code HTTP defaults, seeded from the library.
	httpDefaults map[code.Code]int
	// grpcDefaults holds per-code gRPC defaults as ints; converted to codes.Code in New().
	grpcDefaults map[code.Code]int

	// httpOverride holds exact per-code HTTP overrides.
	httpOverride map[code.Code]int
	// grpcOverride holds exact per-code gRPC overrides as ints.
	grpcOverride map[code.Code]int

	// httpPrefixes and grpcPrefixes hold LPM rules over dotted codes,
	// compiled into segment tries by New().
	httpPrefixes []prefixRule
	grpcPrefixes []prefixRule

	fallback fallback

	// errs collects option values rejected while building.
	errs []error
}

// grpc records an error for values outside the gRPC code range and returns v
// unchanged.
func (b *builder) grpc(v int) int {
	if err := checkGRPC(v); err != nil {
		b.errs = append(b.errs, err)
	}
	return v
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[code.Code]int, len(defaultHTTP)),
		grpcDefaults: make(map[code.Code]int, len(defaultGRPC)),

		// overrides are usually few
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]int),

		fallback: fallback{
			transientHTTP: http.StatusServiceUnavailable,
			permanentHTTP: http.StatusInternalServerError,
			transientGRPC: codes.Unavailable,
			permanentGRPC: codes.Internal,
		},
	}
}
