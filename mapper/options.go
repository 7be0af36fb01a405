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
	"dirpx.dev/berror/code"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for the given code.
func WithHTTPDefault(c code.Code, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// gRPC values must fit in a uint32; New rejects anything else with
// ErrInvalidGRPCCode.

// WithGRPCDefault sets or replaces the default gRPC status for the given code.
func WithGRPCDefault(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = b.grpc(grpc) }
}

// WithHTTPOverride registers an exact HTTP status for the given code. It
// takes precedence over every other rule.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC status for the given code. It
// takes precedence over every other rule.
func WithGRPCOverride(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = b.grpc(grpc) }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule over dotted codes.
// A more specific prefix wins. Use "*" to match a single segment.
func WithHTTPPrefix(prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule{prefix, http}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule over dotted codes.
func WithGRPCPrefix(prefix string, grpc int) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule{prefix, b.grpc(grpc)}) }
}

// WithHTTPFallback replaces the HTTP status used for codes no rule covers.
// The defaults are 503 for transient errors and 500 for permanent ones.
func WithHTTPFallback(transient bool, http int) Option {
	return func(b *builder) {
		if transient {
			b.fallback.transientHTTP = http
			return
		}
		b.fallback.permanentHTTP = http
	}
}

// WithGRPCFallback replaces the gRPC status used for codes no rule covers.
// The defaults are Unavailable for transient errors and Internal for
// permanent ones.
func WithGRPCFallback(transient bool, grpc int) Option {
	return func(b *builder) {
		if transient {
			b.fallback.transientGRPC = codesOf(b.grpc(grpc))
			return
		}
		b.fallback.permanentGRPC = codesOf(b.grpc(grpc))
	}
}
