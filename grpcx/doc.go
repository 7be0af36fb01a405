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

// Package grpcx carries berror errors across gRPC boundaries.
//
// Converter.ToStatus projects any error onto a *status.Status using the
// canonical google.rpc detail types, and Converter.FromError rebuilds the
// error on the receiving side, so berror accessors keep working on errors
// returned by remote calls. UnaryServerInterceptor and UnaryClientInterceptor
// wire both directions into servers and clients.
package grpcx
