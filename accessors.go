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
)

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// IsBError reports whether err holds an error built by New or Create,
// anywhere in its chain, joined branches included. Errors that merely had
// fields attached by a setter are not augmented.
func IsBError(err error) bool {
	return errors.Is(err, errAugmented)
}

// GetData returns the data carried by err, or an empty map when there is none.
// It accepts any error, including nil, and never returns nil.
//
// Getters read the first *Error in err's chain, the one setters modify, and
// consult the apis capability interfaces only when the chain has none.
func GetData(err error) Data {
	if e, ok := As(err); ok {
		if e.data != nil {
			return e.data
		}
		return Data{}
	}
	var de apis.DataError
	if errors.As(err, &de) {
		if d := de.ErrorData(); d != nil {
			return Data(d)
		}
	}
	return Data{}
}

// SetData replaces the data of err wholesale; it does not merge.
//
// When err holds an *Error, that value is mutated and err itself is returned.
// Otherwise the result is a new, untagged *Error that carries the field, keeps
// err's message and unwraps to err. A nil err yields nil.
func SetData(err error, d Data) error {
	return mutate(err, func(e *Error) { e.data = d })
}

// GetCode returns the code carried by err, or "" when there is none.
func GetCode(err error) string {
	if e, ok := As(err); ok {
		return e.code
	}
	var ce apis.CodedError
	if errors.As(err, &ce) {
		return ce.ErrorCode()
	}
	return ""
}

// SetCode sets the code of err. It returns err the way SetData does.
func SetCode(err error, c string) error {
	return mutate(err, func(e *Error) { e.code = c })
}

// IsTransient reports the transience of err. Errors that were never marked,
// nil included, are transient.
func IsTransient(err error) bool {
	if e, ok := As(err); ok {
		return e.transient
	}
	var te apis.TransientError
	if errors.As(err, &te) {
		return te.Transient()
	}
	return true
}

// SetTransient sets the transience of err. It returns err the way SetData does.
func SetTransient(err error, transient bool) error {
	return mutate(err, func(e *Error) { e.transient = transient })
}

// mutate applies set to the *Error in err's chain and returns err itself.
// A nil err stays nil.
func mutate(err error, set func(*Error)) error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		set(e)
		return err
	}
	e := attach(err)
	set(e)
	return e
}

// attach wraps a foreign error so fields can be set on it. The result keeps
// err's message, unwraps to err and is not tagged as augmented. Fields err
// already reports through the apis interfaces are carried over.
func attach(err error) *Error {
	return &Error{
		code:      GetCode(err),
		data:      GetData(err),
		transient: IsTransient(err),
		origin:    err,
	}
}
