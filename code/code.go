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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Source is the input form of an error code: either a bare identifier (Code)
// or an identifier paired with a default human message (Preset).
//
// The interface is sealed; Code and Preset are the only implementations.
type Source interface {
	// Resolve returns the machine-readable identifier and the default
	// human-readable message for this source.
	Resolve() (id, message string)

	isSource()
}

// Code is a bare error identifier, e.g. "not_found" or "storage.pg.timeout".
//
// When used to construct an error, the identifier doubles as the default
// message.
type Code string

// Preset is an identifier together with its default human-readable message.
type Preset struct {
	// Code is the machine-readable identifier.
	Code Code `json:"code"`

	// Message is the default message used when the error does not override it.
	Message string `json:"message"`
}

var (
	_ Source = Code("")
	_ Source = Preset{}
)

// Resolve implements Source. The identifier is also the message.
func (c Code) Resolve() (id, message string) { return string(c), string(c) }

func (Code) isSource() {}

// Resolve implements Source.
func (p Preset) Resolve() (id, message string) { return string(p.Code), p.Message }

func (Preset) isSource() {}

// MinLength and MaxLength bound the length of a canonical code.
//
// They only apply to Parse/Validate. Construction of errors accepts any
// identifier.
const (
	// MinLength is the minimum length for a canonical code.
	MinLength = 3

	// MaxLength is the maximum length for a canonical code. Long enough for
	// four descriptive segments.
	MaxLength = 128
)

const (
	// codeFmt is the canonical form: one to four dot-separated segments, each
	// segment a lowercase ASCII letter followed by [a-z0-9_]*.
	//
	//	"internal"
	//	"not_found"
	//	"storage.pg.connect_timeout"
	//	"auth.jwt.verify"
	codeFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`
)

var codeRe = regexp.MustCompile(codeFmt)

var (
	// ErrCodeInvalid is returned when a value does not match the canonical
	// code format.
	ErrCodeInvalid = errors.New("berror: invalid code")

	// ErrCodeLength is returned when a value is shorter than MinLength or
	// longer than MaxLength.
	ErrCodeLength = errors.New("berror: invalid code length")
)

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. An augmented error with an empty code is
// legal; GetCode reports "" for errors without a code at all.
var Empty Code = ""

// Parse normalizes s and validates it against the canonical form.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse, meant for package-level
// declarations.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize brings s closer to the canonical form:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - converts "/" to ".";
//   - replaces "-" with "_".
//
// It does NOT guarantee that the result is valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether c is in canonical form. The empty code is invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the identifier.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is normalized
// and validated before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrCodeLength
	}
	if !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
