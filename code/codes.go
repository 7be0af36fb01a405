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

// Core / generic presets.
//
// These describe broad, transport-agnostic error classes. Each preset carries
// a default message that an error may override at construction.
var (
	// Internal is the fallback for unclassified failures. The root cause is
	// usually attached as the error cause.
	Internal = Preset{Code: "internal", Message: "internal error"}

	// Invalid reports input that violates a structural or semantic invariant.
	Invalid = Preset{Code: "invalid", Message: "invalid argument"}

	// Missing reports a required value that is absent.
	Missing = Preset{Code: "missing", Message: "required value is missing"}

	// Unsupported reports an operation or option that is not supported.
	Unsupported = Preset{Code: "unsupported", Message: "operation not supported"}
)

// Runtime / operation control presets.
//
// Errors built from these are typically left transient: retrying may succeed.
var (
	// Unavailable reports a dependency that is temporarily unreachable.
	Unavailable = Preset{Code: "unavailable", Message: "service unavailable"}

	// Timeout reports an operation that exceeded its time budget.
	Timeout = Preset{Code: "timeout", Message: "operation timed out"}

	// Canceled reports an operation canceled by the caller.
	Canceled = Preset{Code: "canceled", Message: "operation canceled"}

	// Overloaded reports a saturated service that refuses more work.
	Overloaded = Preset{Code: "overloaded", Message: "service overloaded"}
)

// Resource / state presets.
var (
	// NotFound reports a missing entity.
	NotFound = Preset{Code: "not_found", Message: "not found"}

	// AlreadyExists reports a create on an identity that is already taken.
	AlreadyExists = Preset{Code: "already_exists", Message: "already exists"}

	// Conflict reports a state conflict such as a concurrent update.
	Conflict = Preset{Code: "conflict", Message: "conflict"}

	// PreconditionFailed reports that the resource is not in the expected state.
	PreconditionFailed = Preset{Code: "precondition_failed", Message: "precondition failed"}
)

// Authentication / authorization presets.
var (
	// Unauthenticated reports a caller whose identity could not be established.
	Unauthenticated = Preset{Code: "unauthenticated", Message: "unauthenticated"}

	// PermissionDenied reports an authenticated caller lacking privileges.
	PermissionDenied = Preset{Code: "permission_denied", Message: "permission denied"}
)

// Rate / quota presets.
var (
	// RateLimited reports a caller exceeding the allowed request rate.
	RateLimited = Preset{Code: "rate_limited", Message: "rate limited"}

	// QuotaExceeded reports an exhausted resource quota.
	QuotaExceeded = Preset{Code: "quota_exceeded", Message: "quota exceeded"}
)
