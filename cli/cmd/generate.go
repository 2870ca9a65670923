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

func newGenerateCmd() *cobra.Command {
	var kind kindFlag
	cmd := &cobra.Command{
		DisableFlagsInUseLine: true,
		Use: `
generate <fs|es>`[1:],
		Aliases: []string{"gen"},
		Short:   "Generate a new random secret address",
		Long: `
Generate a new secret Factoid (fs) or Entry Credit (es) address using a secure
source of randomness, and print it followed by its public address.

The secret address is not saved anywhere. Losing it means losing access to any
funds sent to the public address.
`[1:],
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return err
			}
			if err := kind.Set(args[0]); err != nil {
				return err
			}
			if !factom.AddressKind(kind).IsSecret() {
				return fmt.Errorf("must be fs or es")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generate(cmd, factom.AddressKind(kind))
		},
	}
	return cmd
}

var generateCmplCmd = complete.Command{
	Flags: globalCmplFlags,
	Args:  predictArgs(1, "fs", "es"),
}

func generate(cmd *cobra.Command, kind factom.AddressKind) error {
	var adr factom.PrivateAddress
	var err error
	switch kind {
	case factom.SecretFactoid:
		adr, err = factom.GenerateFsAddress()
	case factom.SecretEntryCredit:
		adr, err = factom.GenerateEsAddress()
	}
	if err != nil {
		return err
	}
	log.Debugf("Generated new %v address and its %v address",
		kind, kind.Public())
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, adr)
	fmt.Fprintln(out, adr.PublicAddress())
	return nil
}
