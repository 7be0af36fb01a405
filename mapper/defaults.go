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
	"net/http"

	"dirpx.dev/berror/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for the preset
// catalogue in package code. Callers adjust them with WithHTTPDefault or
// replace them per code with WithHTTPOverride.
var defaultHTTP = map[code.Code]int{
	// 5xx: server, dependency and transient issues.
	code.Internal.Code:    http.StatusInternalServerError, // Generic internal failure; do not expose internal details.
	code.Unavailable.Code: http.StatusServiceUnavailable,  // Dependency is temporarily unreachable.
	code.Overloaded.Code:  http.StatusServiceUnavailable,  // Service cannot accept more requests right now.
	code.Timeout.Code:     http.StatusGatewayTimeout,      // Operation exceeded the time budget.
	// 499 is the nginx convention for "client closed request"; we default to 408.
	code.Canceled.Code: http.StatusRequestTimeout,

	// 4xx: client, protocol and resource issues.
	code.Invalid.Code:     http.StatusBadRequest,
	code.Missing.Code:     http.StatusBadRequest,
	code.Unsupported.Code: http.StatusBadRequest,
	code.NotFound.Code:    http.StatusNotFound,

	code.AlreadyExists.Code:      http.StatusConflict,
	code.Conflict.Code:           http.StatusConflict,
	code.PreconditionFailed.Code: http.StatusPreconditionFailed,

	code.Unauthenticated.Code:  http.StatusUnauthorized,
	code.PermissionDenied.Code: http.StatusForbidden,

	code.RateLimited.Code:   http.StatusTooManyRequests,
	code.QuotaExceeded.Code: http.StatusTooManyRequests,
}

// defaultGRPC defines the library's built-in gRPC mappings for the preset
// catalogue, aligned with the canonical gRPC status codes.
var defaultGRPC = map[code.Code]codes.Code{
	code.Internal.Code: codes.Internal,

	code.Invalid.Code:            codes.InvalidArgument,
	code.Missing.Code:            codes.InvalidArgument,
	code.Unsupported.Code:        codes.Unimplemented,
	code.PreconditionFailed.Code: codes.FailedPrecondition,

	code.NotFound.Code:      codes.NotFound,
	code.AlreadyExists.Code: codes.AlreadyExists,
	code.Conflict.Code:      codes.Aborted, // Concurrent updates and similar.

	code.Unauthenticated.Code:  codes.Unauthenticated,
	code.PermissionDenied.Code: codes.PermissionDenied,

	code.Unavailable.Code: codes.Unavailable,
	code.Overloaded.Code:  codes.Unavailable,

	code.Timeout.Code:  codes.DeadlineExceeded,
	code.Canceled.Code: codes.Canceled,

	code.RateLimited.Code:   codes.ResourceExhausted,
	code.QuotaExceeded.Code: codes.ResourceExhausted,
}
