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

package berror_test

import (
	"errors"
	"fmt"

	"dirpx.dev/berror"
	"dirpx.dev/berror/code"
)

func ExampleNew() {
	cause := errors.New("dial tcp 10.0.0.7:5432: connection refused")
	err := berror.New(code.Unavailable,
		berror.WithMessage("storage is down"),
		berror.WithData(berror.Data{"host": "db:5432"}),
		berror.WithCause(cause),
	)

	fmt.Println(err)
	fmt.Println(berror.GetCode(err), berror.GetData(err)["host"], berror.IsTransient(err))
	fmt.Println(errors.Is(err, cause))
	// Output:
	// storage is down
	// unavailable db:5432 true
	// true
}

func ExampleCreate() {
	err := berror.Create(berror.Params{
		Code:      code.Code("payment.card_declined"),
		Data:      berror.Data{"attempt": 3},
		Transient: berror.Bool(false),
	})

	fmt.Println(err.Error(), berror.IsBError(err), berror.IsTransient(err))
	// Output: payment.card_declined true false
}

func ExampleSetCode() {
	plain := errors.New("boom")

	err := berror.SetCode(plain, "legacy.failure")
	fmt.Println(err, berror.GetCode(err), berror.IsBError(err), errors.Is(err, plain))
	// Output: boom legacy.failure false true
}

func ExampleGetData() {
	var err error

	fmt.Println(len(berror.GetData(err)), berror.GetCode(err) == "", berror.IsTransient(err))
	// Output: 0 true true
}
