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

// Option configures an Error during construction via New.
type Option func(*Error)

// WithMessage overrides the message derived from the code.
// An empty message is ignored.
func WithMessage(msg string) Option {
	return func(e *Error) {
		if msg != "" {
			e.message = msg
		}
	}
}

// WithData sets the contextual data. The map is stored as given, not copied.
func WithData(d Data) Option {
	return func(e *Error) { e.data = d }
}

// WithCause sets the underlying cause. A nil cause leaves it unset.
func WithCause(err error) Option {
	return func(e *Error) {
		if err != nil {
			e.cause = err
		}
	}
}

// WithTransient sets the transience flag. Errors are transient by default.
func WithTransient(transient bool) Option {
	return func(e *Error) { e.transient = transient }
}
