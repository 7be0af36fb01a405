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

// Package mapper provides deterministic, immutable mappings from berror codes
// and transience to transport-level statuses for HTTP and gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the code;
//  2. longest-prefix-match (LPM) on the dotted code;
//  3. per-code default (library or user-adjusted);
//  4. transience fallback: 503 / codes.Unavailable for transient errors,
//     500 / codes.Internal for permanent ones.
//
// Prefix rules are segment-aware: codes are treated as "."-separated segments,
// and "*" matches exactly one segment. For example:
//
//	WithHTTPPrefix("storage.pg", http.StatusServiceUnavailable)
//	WithHTTPPrefix("storage.*.connect", http.StatusGatewayTimeout)
//
// The more specific prefix wins. Codes that are not in the canonical dotted
// form (see code.Parse) skip the prefix tier.
//
// # Library defaults
//
// The package ships defaults for the preset catalogue in package code
// (code.Invalid -> 400 / InvalidArgument, code.NotFound -> 404 / NotFound,
// code.Unavailable -> 503 / Unavailable, ...).
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Canceled.Code, 499), // nginx-style
//	    mapper.WithHTTPPrefix("storage.pg", 503),
//	)
//	if err != nil {
//	    // invalid prefix
//	}
//
//	st := mapper.Resolve(m, err) // reads code and transience from any error
//
// Explain returns a human-readable trace of how a code was resolved. It is
// meant for inspection and logging, not for machine parsing.
//
// All inputs are copied during New; a Mapper is safe to share across
// goroutines.
package mapper
