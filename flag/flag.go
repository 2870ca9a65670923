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

// Package flag holds the configuration for fat-address. Each setting may be
// given as a command line flag, an environment variable, or a key in a config
// file, in that order of precedence.
package flag

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Revision is set at build time with -ldflags "-X".
var Revision string

// Environment variable name prefix
const envNamePrefix = "FATADDRESS_"

// Name of the config file, without extension, searched for in $HOME.
const configName = ".fat-address"

var (
	envNames = map[string]string{
		"debug":   "DEBUG",
		"nocolor": "NO_COLOR",
		"config":  "CONFIG",
	}
	defaults = map[string]interface{}{
		"debug":   false,
		"nocolor": false,
		"config":  "",
	}
	descriptions = map[string]string{
		"debug":   "Log debug messages",
		"nocolor": "Disable colored log output",
		"config":  "Path to a config file (default $HOME/.fat-address.yaml)",
	}

	LogDebug   bool
	NoColor    bool
	ConfigFile string

	configFileUsed string
)

// AddFlags adds the global flags to flags.
func AddFlags(flags *pflag.FlagSet) {
	flagVar(flags, &LogDebug, "debug")
	flagVar(flags, &NoColor, "nocolor")
	flagVar(flags, &ConfigFile, "config")
}

func flagVar(flags *pflag.FlagSet, v interface{}, name string) {
	dflt := defaults[name]
	desc := description(name)
	switch v := v.(type) {
	case *string:
		flags.StringVar(v, name, dflt.(string), desc)
	case *bool:
		flags.BoolVar(v, name, dflt.(bool), desc)
	}
}

func description(flagName string) string {
	return fmt.Sprintf("%s\nEnvironment variable: %v",
		descriptions[flagName], envName(flagName))
}

func envName(flagName string) string {
	return envNamePrefix + envNames[flagName]
}

// Load sets each global flag in flags that was not given on the command line
// from its environment variable, or else from the config file. Other flags in
// flags are never set. A missing config file is only an error if one was
// explicitly requested.
func Load(flags *pflag.FlagSet) error {
	v := viper.New()
	for name := range envNames {
		if err := v.BindEnv(name, envName(name)); err != nil {
			return err
		}
	}

	if !flags.Changed("config") && v.IsSet("config") {
		ConfigFile = v.GetString("config")
	}
	if len(ConfigFile) > 0 {
		v.SetConfigFile(ConfigFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		v.AddConfigPath(home)
		v.SetConfigName(configName)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok ||
			len(ConfigFile) > 0 {
			return fmt.Errorf("config file: %w", err)
		}
	}
	configFileUsed = v.ConfigFileUsed()

	for name := range envNames {
		f := flags.Lookup(name)
		if f == nil || f.Changed || name == "config" || !v.IsSet(name) {
			continue
		}
		if err := flags.Set(name, v.GetString(name)); err != nil {
			return fmt.Errorf("%v: %w", name, err)
		}
	}
	return nil
}

// ConfigFileUsed returns the path of the config file read by the last call to
// Load, if any.
func ConfigFileUsed() string {
	return configFileUsed
}
