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

import (
	"dirpx.dev/berror/code"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the mapping rules.
// It resolves an error code and its transience into transport statuses for
// HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the given code. When no rule
	// covers the code, transience decides between 503 and 500.
	HTTPStatus(c code.Code, transient bool) int

	// GRPCStatus returns the gRPC status code for the given code, with the
	// same fallback as HTTPStatus (Unavailable or Internal).
	GRPCStatus(c code.Code, transient bool) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same matching logic.
	Status(c code.Code, transient bool) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(c code.Code, transient bool) string
}

// Status represents a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
