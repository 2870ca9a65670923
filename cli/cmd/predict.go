// MIT License
//
// Copyright 2018 Canonical Ledgers, LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS
// IN THE SOFTWARE.

package cmd

import (
	"strings"

	"github.com/Factom-Asset-Tokens/fataddress/factom"
	"github.com/posener/complete"
)

// predictArgs returns a predictor for the positional arguments of a command
// that offers options until num arguments have been completed. If num is
// less than 0 there is no limit.
func predictArgs(num int, options ...string) complete.PredictFunc {
	return func(a complete.Args) []string {
		// Count the number of complete arguments that are not flags.
		// The sub-command itself is not included in a.Completed.
		argc := 0
		for _, arg := range a.Completed {
			if !strings.HasPrefix(arg, "-") {
				argc++
			}
		}
		if num >= 0 && argc >= num {
			return nil
		}
		return options
	}
}

// PredictAddressKinds predicts the values accepted by --kind.
var PredictAddressKinds = complete.PredictSet(kindNames()...)

// PredictValidateKinds predicts the values accepted by validate --kind.
var PredictValidateKinds = complete.PredictSet(filterNames()...)

// PredictAddress predicts the prefix of the address kinds accepted by a
// command, and then nothing once the address is being typed.
func PredictAddress(num int, kinds ...factom.AddressKind) complete.PredictFunc {
	prefixes := make([]string, len(kinds))
	for i, kind := range kinds {
		prefixes[i] = kind.PrefixString()
	}
	predict := predictArgs(num, prefixes...)
	return func(a complete.Args) []string {
		if len(a.Last) >= 2 {
			return nil
		}
		return predict(a)
	}
}
