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
	"os"

	"github.com/Factom-Asset-Tokens/fataddress/flag"
	_log "github.com/Factom-Asset-Tokens/fataddress/log"
	"github.com/posener/complete"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const cmdName = "fat-address"

// Execute runs shell completion if requested, otherwise it builds and runs
// the fat-address command. This is called by main.main().
func Execute() {
	if Complete() {
		return
	}
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var log _log.Log

// newRootCmd returns the fat-address command with all sub-commands added.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   cmdName,
		Short: "Factom address codec and validator",
		Long: `
fat-address converts between raw keys and the four Factom address types, and
validates Factom addresses.

Address Types

  FA  Public Factoid address. Its payload is the RCD hash of a public key.
  Fs  Secret Factoid address. Its payload is an ed25519 seed.
  EC  Public Entry Credit address. Its payload is a public key.
  Es  Secret Entry Credit address. Its payload is an ed25519 seed.

Configuration

Global flags may also be set with environment variables prefixed with
FATADDRESS_, or in the config file $HOME/.fat-address.yaml.
`[1:],
		Version:           flag.Revision,
		Args:              cobra.ExactArgs(0),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
		PreRunE:           validateRunCompletionFlags,
		RunE:              runCompletion,
	}
	cmd.Flags().AddFlagSet(newInstallCompletionFlags())
	flag.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newValidateCmd(),
		newAddressCmd(),
		newKeyCmd(),
		newRCDHashCmd(),
		newPublicCmd(),
		newGenerateCmd(),
	)
	return cmd
}

// loadConfig loads the global settings and initializes the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if err := flag.Load(cmd.Flags()); err != nil {
		return err
	}
	log = _log.New("cli")
	log.SetOutput(cmd.ErrOrStderr())
	if cfg := flag.ConfigFileUsed(); len(cfg) > 0 {
		log.Debugf("Using config file: %v", cfg)
	}
	return nil
}

var installCompletion, uninstallCompletion bool

func newInstallCompletionFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.BoolVar(&installCompletion, "installcompletion", false,
		"Install shell completion for fat-address")
	flags.BoolVar(&uninstallCompletion, "uninstallcompletion", false,
		"Uninstall shell completion for fat-address")
	return flags
}

func validateRunCompletionFlags(cmd *cobra.Command, _ []string) error {
	// Ensure that the install completion flags are not ever used with any
	// other flags.
	flags := cmd.Flags()
	installCompletionMode := false
	otherFlags := false
	flags.Visit(func(flg *pflag.Flag) {
		switch flg.Name {
		case "installcompletion", "uninstallcompletion":
			installCompletionMode = true
		default:
			otherFlags = true
		}
	})
	if installCompletionMode && otherFlags {
		return fmt.Errorf("--installcompletion and --uninstallcompletion " +
			"may not be used with any other flags")
	}
	if installCompletion && uninstallCompletion {
		return fmt.Errorf("--installcompletion and --uninstallcompletion " +
			"may not be used together")
	}
	return nil
}

func runCompletion(cmd *cobra.Command, _ []string) error {
	switch {
	case installCompletion:
		return installCmpl(cmdName)
	case uninstallCompletion:
		return uninstallCmpl(cmdName)
	}
	return cmd.Help()
}

var rootCmplCmd = complete.Command{
	Flags: mergeFlags(globalCmplFlags, complete.Flags{
		"--version":             complete.PredictNothing,
		"--installcompletion":   complete.PredictNothing,
		"--uninstallcompletion": complete.PredictNothing,
	}),
	Sub: complete.Commands{
		"validate": validateCmplCmd,
		"address":  addressCmplCmd,
		"key":      keyCmplCmd,
		"rcdhash":  rcdHashCmplCmd,
		"public":   publicCmplCmd,
		"generate": generateCmplCmd,
		"help":     complete.Command{Sub: helpCmplCmds},
	},
}

var helpCmplCmds = complete.Commands{
	"validate": complete.Command{},
	"address":  complete.Command{},
	"key":      complete.Command{},
	"rcdhash":  complete.Command{},
	"public":   complete.Command{},
	"generate": complete.Command{},
}

// globalCmplFlags are accepted by every command.
var globalCmplFlags = complete.Flags{
	"--debug":   complete.PredictNothing,
	"--nocolor": complete.PredictNothing,
	"--config":  complete.PredictFiles("*.yaml"),
	"--help":    complete.PredictNothing,
	"-h":        complete.PredictNothing,
}
