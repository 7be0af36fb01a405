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

// Package berror augments ordinary Go errors with a stable code, contextual
// data, an optional cause and a transience flag.
//
// Errors are built with New (functional options) or Create (a Params record):
//
//	err := berror.New(code.Unavailable,
//	    berror.WithMessage("storage is down"),
//	    berror.WithData(berror.Data{"host": "db:5432"}),
//	    berror.WithCause(ioErr),
//	)
//
// The result is a plain error value. Code that later receives it as error,
// possibly from another package, reads the fields through total accessors
// that accept any error, including nil and errors this package never built:
//
//	berror.IsBError(err)    // built by New/Create?
//	berror.GetCode(err)     // "" when absent
//	berror.GetData(err)     // empty map when absent
//	berror.IsTransient(err) // true when never marked
//
// Accessors look through wrapping (fmt.Errorf("%w"), errors.Join). Getters
// read the first *Error in the chain, which is also the value setters
// modify. Chains without one fall back to the capability interfaces in
// package apis, so foreign error types can report a code, data or
// transience of their own.
//
// SetData, SetCode and SetTransient mutate the *Error in the chain and return
// the same error. Applied to a foreign error they return a wrapper carrying
// the field, since Go cannot attach fields to an arbitrary value.
package berror
