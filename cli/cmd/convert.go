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

func newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		DisableFlagsInUseLine: true,
		Use: `
key ADDRESS...`[1:],
		Short: "Decode the keys held by Fs, EC, and Es addresses",
		Long: `
Print the hex encoded 32 byte key held by each Fs, EC, or Es ADDRESS.

FA addresses hold the hash of an RCD, not a key, and are rejected. Use the
rcdhash command for FA addresses.
`[1:],
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return forEachAddress(cmd, args, factom.AddressToKey)
		},
	}
	return cmd
}

var keyCmplCmd = complete.Command{
	Flags: globalCmplFlags,
	Args: PredictAddress(-1, factom.SecretFactoid,
		factom.PublicEntryCredit, factom.SecretEntryCredit),
}

func newRCDHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		DisableFlagsInUseLine: true,
		Use: `
rcdhash FA_ADDRESS...`[1:],
		Short: "Decode the RCD hashes held by FA addresses",
		Long: `
Print the hex encoded RCD hash held by each public Factoid FA_ADDRESS.
`[1:],
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return forEachAddress(cmd, args, factom.AddressToRCDHash)
		},
	}
	return cmd
}

var rcdHashCmplCmd = complete.Command{
	Flags: globalCmplFlags,
	Args:  PredictAddress(-1, factom.PublicFactoid),
}

func newPublicCmd() *cobra.Command {
	cmd := &cobra.Command{
		DisableFlagsInUseLine: true,
		Use: `
public SECRET_ADDRESS...`[1:],
		Aliases: []string{"pub"},
		Short:   "Derive public addresses from secret addresses",
		Long: `
Print the public address for each Fs or Es SECRET_ADDRESS.

The FA address of an Fs address is the hash of the RCD of the ed25519 public
key. The EC address of an Es address is the ed25519 public key.
`[1:],
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return forEachAddress(cmd, args, factom.SecretToPublicAddress)
		},
	}
	return cmd
}

var publicCmplCmd = complete.Command{
	Flags: globalCmplFlags,
	Args:  PredictAddress(-1, factom.SecretFactoid, factom.SecretEntryCredit),
}

// forEachAddress prints the result of convert for each address in args. All
// args are converted before anything is printed.
func forEachAddress(cmd *cobra.Command, args []string,
	convert func(string) (string, error)) error {
	results := make([]string, len(args))
	for i, adrStr := range args {
		result, err := convert(adrStr)
		if err != nil {
			return fmt.Errorf("%v: %w", adrStr, err)
		}
		log.Debugf("%v -> %v", adrStr, result)
		results[i] = result
	}
	for _, result := range results {
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}
	return nil
}
