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
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/berror"
	"dirpx.dev/berror/apis"
	"dirpx.dev/berror/code"
	"dirpx.dev/berror/mapper/internal/segmenttrie"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, prefixes, fallbacks).
//  3. Normalize and validate all code prefixes.
//  4. Build segment tries (HTTP & gRPC) supporting longest-prefix-match
//     with '*' as a single-segment wildcard.
//  5. Freeze all maps into immutable copies.
//
// Errors returned from this function indicate invalid prefixes or gRPC codes
// outside the uint32 range (ErrInvalidGRPCCode).
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	for _, opt := range opts {
		opt(b)
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}

	httpTrie, err := buildTrie(b.httpPrefixes, "HTTP", func(v int) int { return v })
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTrie(b.grpcPrefixes, "gRPC", codesOf)
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		fallback:     b.fallback,
	}, nil
}

// Resolve returns the statuses for err, reading its code and transience
// through the berror accessors. Any error works, including nil and errors
// berror never built.
func Resolve(m apis.Mapper, err error) apis.Status {
	return m.Status(code.Code(berror.GetCode(err)), berror.IsTransient(err))
}

func buildTrie[T any](rules []prefixRule, kind string, conv func(int) T) (*segmenttrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	t := segmenttrie.New[T]()
	for _, r := range rules {
		p, err := normalizeAndValidatePrefix(r.prefix)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid %s code-prefix %q: %w", kind, r.prefix, err)
		}
		if err := t.Insert(p, conv(r.val)); err != nil {
			return nil, fmt.Errorf("mapper: cannot insert %s prefix %q: %w", kind, p, err)
		}
	}
	return t, nil
}

// mapper combines per-code defaults, per-code exact overrides, segment-aware
// prefix tries over dotted codes and transience fallbacks. Lookups are
// O(depth) and safe for concurrent use once constructed.
type mapper struct {
	httpDefault map[code.Code]int
	grpcDefault map[code.Code]codes.Code

	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	// httpTrie and grpcTrie may be nil when no prefix rules were given.
	httpTrie *segmenttrie.Trie[int]
	grpcTrie *segmenttrie.Trie[codes.Code]

	fallback fallback
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. longest-prefix-match rule on the dotted code;
//  3. per-code default (library or user overridden);
//  4. transience fallback (503 transient, 500 permanent).
func (m *mapper) HTTPStatus(c code.Code, transient bool) int {
	_, v := m.resolveHTTP(c, transient)
	return v
}

// GRPCStatus resolves a gRPC status for the given code, with the same
// precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code, transient bool) codes.Code {
	_, v := m.resolveGRPC(c, transient)
	return v
}

// Status resolves both HTTP and gRPC using the same inputs.
func (m *mapper) Status(c code.Code, transient bool) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c, transient),
		GRPC: m.GRPCStatus(c, transient),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular code.
//
// Example output:
//
//	code="storage.pg.connect_timeout" transient=true
//	http: source=prefix pattern="storage.pg" -> 503
//	grpc: source=fallback -> UNAVAILABLE(14)
//
// source is one of override, prefix, default or fallback; pattern is the rule
// as it was stored in the trie (may contain "*").
func (m *mapper) Explain(c code.Code, transient bool) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q transient=%t\n", c, transient)

	src, v := m.resolveHTTP(c, transient)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", src, v)

	src, g := m.resolveGRPC(c, transient)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", src, strings.ToUpper(g.String()), int(g))

	return b.String()
}

// resolveHTTP returns the matched tier (formatted for Explain) and the status.
func (m *mapper) resolveHTTP(c code.Code, transient bool) (string, int) {
	if v, ok := m.httpOverride[c]; ok {
		return "override", v
	}
	if v, ok, pat := m.httpTrie.MatchWithPattern(string(c)); ok {
		return fmt.Sprintf("prefix pattern=%q", pat), v
	}
	if v, ok := m.httpDefault[c]; ok {
		return "default", v
	}
	if transient {
		return "fallback", m.fallback.transientHTTP
	}
	return "fallback", m.fallback.permanentHTTP
}

// resolveGRPC mirrors resolveHTTP for gRPC codes.
func (m *mapper) resolveGRPC(c code.Code, transient bool) (string, codes.Code) {
	if v, ok := m.grpcOverride[c]; ok {
		return "override", v
	}
	if v, ok, pat := m.grpcTrie.MatchWithPattern(string(c)); ok {
		return fmt.Sprintf("prefix pattern=%q", pat), v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return "default", v
	}
	if transient {
		return "fallback", m.fallback.transientGRPC
	}
	return "fallback", m.fallback.permanentGRPC
}

// normalizeAndValidatePrefix ensures a code prefix is canonical and valid.
// It forbids empty strings and prefixes made only of wildcards.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := code.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	segs := strings.Split(p, ".")
	allWild := true
	for _, seg := range segs {
		if !validPrefixSegment(seg) {
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}

// validPrefixSegment reports whether seg is "*" or matches [a-z][a-z0-9_]*.
func validPrefixSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return true
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
