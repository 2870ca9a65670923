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
	"sort"
	"strings"

	"github.com/Factom-Asset-Tokens/fataddress/factom"
)

// kindFlag implements pflag.Value for selecting one of the four address
// kinds by its lower case prefix: fa, fs, ec, or es.
type kindFlag factom.AddressKind

func kindNames() []string {
	names := make([]string, len(factom.AddressKinds))
	for i, kind := range factom.AddressKinds {
		names[i] = strings.ToLower(kind.PrefixString())
	}
	return names
}

func (k kindFlag) String() string {
	return strings.ToLower(factom.AddressKind(k).PrefixString())
}

func (k *kindFlag) Set(name string) error {
	for _, kind := range factom.AddressKinds {
		if strings.EqualFold(name, kind.PrefixString()) {
			*k = kindFlag(kind)
			return nil
		}
	}
	return fmt.Errorf("must be one of %q", kindNames())
}

func (kindFlag) Type() string { return "kind" }

// filters maps the names accepted by validate --kind to their predicates.
var filters = map[string]func(string) bool{
	"any":         factom.IsValidAddress,
	"public":      factom.IsValidPublicAddress,
	"secret":      factom.IsValidSecretAddress,
	"factoid":     factom.IsValidFctAddress,
	"entrycredit": factom.IsValidECAddress,
	"fa":          factom.IsValidPublicFctAddress,
	"fs":          factom.IsValidSecretFctAddress,
	"ec":          factom.IsValidPublicECAddress,
	"es":          factom.IsValidSecretECAddress,
}

func filterNames() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// filterFlag implements pflag.Value for selecting one of the filters.
type filterFlag string

func (f filterFlag) String() string { return string(f) }

func (f *filterFlag) Set(name string) error {
	name = strings.ToLower(name)
	if _, ok := filters[name]; !ok {
		return fmt.Errorf("must be one of %q", filterNames())
	}
	*f = filterFlag(name)
	return nil
}

func (filterFlag) Type() string { return "kind" }

// IsValid returns true if adrStr is valid and passes the filter.
func (f filterFlag) IsValid(adrStr string) bool {
	return filters[string(f)](adrStr)
}
