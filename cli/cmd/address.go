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

func newAddressCmd() *cobra.Command {
	var kind kindFlag
	var isRCDHash bool
	cmd := &cobra.Command{
		DisableFlagsInUseLine: true,
		Use: `
address --kind <fa|fs|ec|es> [--rcdhash] KEY...`[1:],
		Aliases: []string{"addr"},
		Short:   "Encode hex keys as addresses",
		Long: `
Encode each hex encoded 32 byte KEY as an address of the given --kind.

For fs and es, KEY is an ed25519 seed. For ec, KEY is an ed25519 public key.
For fa, KEY is an ed25519 public key and the address encodes the hash of its
RCD, unless --rcdhash is given, in which case KEY is already the RCD hash.
`[1:],
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("kind") {
				return fmt.Errorf("--kind is required")
			}
			if isRCDHash && factom.AddressKind(kind) != factom.PublicFactoid {
				return fmt.Errorf("--rcdhash may only be used with --kind fa")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return encodeKeys(cmd, args, factom.AddressKind(kind), isRCDHash)
		},
	}
	flags := cmd.Flags()
	flags.VarP(&kind, "kind", "k", "Type of address to encode")
	flags.BoolVar(&isRCDHash, "rcdhash", false,
		"KEY is an RCD hash instead of a public key, for --kind fa only")
	return cmd
}

var addressCmplCmd = complete.Command{
	Flags: mergeFlags(globalCmplFlags, complete.Flags{
		"--kind":    PredictAddressKinds,
		"-k":        PredictAddressKinds,
		"--rcdhash": complete.PredictNothing,
	}),
	Args: complete.PredictAnything,
}

func encodeKeys(cmd *cobra.Command, args []string,
	kind factom.AddressKind, isRCDHash bool) error {
	keys := make([]factom.Key, len(args))
	for i, arg := range args {
		key, err := factom.DecodeKey(arg)
		if err != nil {
			return fmt.Errorf("%q: %w", arg, err)
		}
		keys[i] = key
	}
	for _, key := range keys {
		var adrStr string
		switch {
		case kind != factom.PublicFactoid:
			adrStr = factom.KeyToAddress(kind, key)
		case isRCDHash:
			adrStr = factom.RCDHashToPublicFctAddress(factom.RCDHash(key))
		default:
			log.Debugf("Computing RCD hash for public key %v", key)
			adrStr = factom.KeyToPublicFctAddress(key)
		}
		fmt.Fprintln(cmd.OutOrStdout(), adrStr)
	}
	return nil
}
