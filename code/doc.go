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

// Package code defines the code input accepted by berror constructors.
//
// A code is either a bare identifier (Code) or an identifier paired with a
// default human message (Preset). Both satisfy the sealed Source interface,
// so constructors accept exactly these two shapes.
//
// Identifiers are free-form when building errors. Parse and Validate offer an
// opt-in canonical form for callers that want one:
//
//   - lowercase ASCII;
//   - underscore-separated words;
//   - up to four dot-separated segments ("storage.pg.connect_timeout").
//
// The dotted form is what mapper prefix rules match on.
//
// The package also ships a small catalogue of presets (Internal, Invalid,
// NotFound, Unavailable, ...).
package code
