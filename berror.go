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

package berror

import (
	"errors"

	"dirpx.dev/berror/apis"
	"dirpx.dev/berror/code"
)

// Data is the contextual key/value payload attached to an error.
type Data map[string]any

// Error is an ordinary Go error augmented with a code, contextual data, an
// optional cause and a transience flag.
//
// Values built by New or Create carry the augmentation tag (see IsBError).
// Setters applied to foreign errors also produce an *Error, wrapping the
// foreign value, but without the tag.
//
// Setters mutate the value in place; synchronize concurrent mutation of a
// shared *Error externally.
type Error struct {
	code    string
	message string
	data    Data

	// cause is the causal chain link; nil means it was never set.
	cause error

	// augmented is the tag that marks values produced by New/Create.
	augmented bool

	transient bool

	// origin is the foreign error a setter attached fields to.
	origin error
}

var (
	_ apis.CodedError     = (*Error)(nil)
	_ apis.DataError      = (*Error)(nil)
	_ apis.TransientError = (*Error)(nil)
	_ apis.CausedError    = (*Error)(nil)
)

// New builds an augmented error from a code and applies opts in order.
//
// A bare code.Code is used both as identifier and as message; a code.Preset
// contributes its identifier and default message. WithMessage overrides the
// message only. Data defaults to a fresh empty map and transience to true.
//
// New panics if c is nil: a missing code is a programming error.
func New(c code.Source, opts ...Option) *Error {
	if c == nil {
		panic("berror: nil code")
	}
	id, msg := c.Resolve()
	e := &Error{
		code:      id,
		message:   msg,
		augmented: true,
		transient: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.data == nil {
		e.data = Data{}
	}
	return e
}

// Params is the record form of New's arguments.
type Params struct {
	// Code is required.
	Code code.Source

	// Message overrides the message derived from Code when non-empty.
	Message string

	// Data is the contextual payload. Nil means a fresh empty map.
	Data Data

	// Cause is the underlying error, if any.
	Cause error

	// Transient marks the error as permanent when it points to false.
	// Nil keeps the default (transient).
	Transient *bool
}

// Create builds an augmented error from p. It is equivalent to calling New
// with the matching options.
func Create(p Params) *Error {
	opts := []Option{
		WithMessage(p.Message),
		WithData(p.Data),
		WithCause(p.Cause),
	}
	if p.Transient != nil {
		opts = append(opts, WithTransient(*p.Transient))
	}
	return New(p.Code, opts...)
}

// Bool returns a pointer to v, for Params.Transient.
func Bool(v bool) *bool { return &v }

// Error implements the built-in error interface. It returns the message.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.origin != nil {
		return e.origin.Error()
	}
	return e.message
}

// Unwrap returns the wrapped foreign error for values produced by setters,
// and the cause otherwise, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	if e.origin != nil {
		return e.origin
	}
	return e.cause
}

// errAugmented is the errors.Is target matched by tagged values.
var errAugmented = errors.New("berror: augmented")

// Is reports whether e is a tagged value and target is the marker IsBError
// looks for. It never matches other targets.
func (e *Error) Is(target error) bool {
	return e != nil && e.augmented && target == errAugmented
}

// Message returns the human-readable message.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.Error()
}

// ErrorCode returns the code identifier.
func (e *Error) ErrorCode() string {
	if e == nil {
		return ""
	}
	return e.code
}

// ErrorData returns the data map itself, not a copy.
func (e *Error) ErrorData() map[string]any {
	if e == nil {
		return nil
	}
	return e.data
}

// Cause returns the cause given at construction, or nil.
func (e *Error) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Transient reports whether retrying may succeed. A nil *Error reports true,
// the policy default for unmarked errors.
func (e *Error) Transient() bool {
	if e == nil {
		return true
	}
	return e.transient
}
