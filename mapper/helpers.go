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
	"math"

	"dirpx.dev/berror/code"
	"google.golang.org/grpc/codes"
)

// ErrInvalidGRPCCode is returned by New for gRPC statuses that do not fit in
// a uint32.
var ErrInvalidGRPCCode = errors.New("mapper: invalid gRPC code")

func checkGRPC(v int) error {
	if v < 0 || int64(v) > math.MaxUint32 {
		return fmt.Errorf("%w: %d", ErrInvalidGRPCCode, v)
	}
	return nil
}

// freeze makes an immutable copy of a per-code map, so later mutations to the
// builder (or caller-owned maps) cannot affect the mapper.
func freeze[V any](src map[code.Code]V) map[code.Code]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC copies a builder-style int map into typed gRPC codes.
func freezeGRPC(src map[code.Code]int) map[code.Code]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codesOf(v)
	}
	return dst
}

func codesOf(v int) codes.Code {
	return codes.Code(uint32(v))
}
