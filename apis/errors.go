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

package apis

// CodedError is an error classified by a machine-readable code.
//
// berror accessors honor this interface on foreign error types, so a package
// with its own error type can take part in GetCode without depending on the
// concrete berror.Error.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable code. It MAY be empty.
	ErrorCode() string
}

// DataError is an error that carries contextual key/value data.
type DataError interface {
	error

	// ErrorData returns the error's contextual data. Returning nil is allowed
	// and means "no data".
	ErrorData() map[string]any
}

// TransientError is an error that knows whether retrying the failed
// operation may succeed.
type TransientError interface {
	error

	// Transient reports whether the condition may clear on retry.
	Transient() bool
}

// CausedError represents an error that exposes its underlying cause.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	Cause() error
}
