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
	"fmt"

	"github.com/Factom-Asset-Tokens/fataddress/factom"
	"github.com/posener/complete"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	filter := filterFlag("any")
	cmd := &cobra.Command{
		DisableFlagsInUseLine: true,
		Use: `
validate [--kind <kind>] ADDRESS...`[1:],
		Short: "Validate Factom addresses",
		Long: `
Validate each ADDRESS and print whether it is valid, along with its type or the
reason it is invalid.

An address is valid if it is base58 encoded, decodes to exactly 38 bytes, has
one of the four known prefixes, and has a matching checksum. Use --kind to
further require a specific type of address:

  any, public, secret, factoid, entrycredit, fa, fs, ec, es

Exits with a non-zero status if any ADDRESS is invalid.
`[1:],
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validate(cmd, args, filter)
		},
	}
	cmd.Flags().VarP(&filter, "kind", "k", "Type of address required")
	return cmd
}

var validateCmplCmd = complete.Command{
	Flags: mergeFlags(globalCmplFlags, complete.Flags{
		"--kind": PredictValidateKinds,
		"-k":     PredictValidateKinds,
	}),
	Args: complete.PredictAnything,
}

func validate(cmd *cobra.Command, args []string, filter filterFlag) error {
	out := cmd.OutOrStdout()
	var invalid int
	for _, adrStr := range args {
		kind, _, err := factom.ParseAddress(adrStr)
		switch {
		case err != nil:
			fmt.Fprintf(out, "%v invalid: %v\n", adrStr, err)
		case !filter.IsValid(adrStr):
			err = fmt.Errorf("not %v", filter)
			fmt.Fprintf(out, "%v invalid: %v address is %v\n",
				adrStr, kind, err)
		default:
			fmt.Fprintf(out, "%v valid %v address\n", adrStr, kind)
		}
		if err != nil {
			log.Debugf("%v: %v", adrStr, err)
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%v of %v addresses are invalid", invalid, len(args))
	}
	return nil
}
