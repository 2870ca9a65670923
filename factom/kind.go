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

package factom

import "fmt"

// AddressKind identifies one of the four Factom address types by its prefix.
type AddressKind uint8

// The zero AddressKind is not a valid kind.
const (
	PublicFactoid AddressKind = iota + 1
	SecretFactoid
	PublicEntryCredit
	SecretEntryCredit
)

// PrefixSize is the number of prefix bytes in a raw address.
const PrefixSize = 2

var (
	faPrefixBytes = [PrefixSize]byte{0x5f, 0xb1}
	fsPrefixBytes = [PrefixSize]byte{0x64, 0x78}
	ecPrefixBytes = [PrefixSize]byte{0x59, 0x2a}
	esPrefixBytes = [PrefixSize]byte{0x5d, 0xb6}
)

const (
	faPrefixStr = "FA"
	fsPrefixStr = "Fs"
	ecPrefixStr = "EC"
	esPrefixStr = "Es"
)

// Indexed by AddressKind.
var (
	prefixBytes = [...][PrefixSize]byte{
		PublicFactoid:     faPrefixBytes,
		SecretFactoid:     fsPrefixBytes,
		PublicEntryCredit: ecPrefixBytes,
		SecretEntryCredit: esPrefixBytes,
	}
	prefixStrs = [...]string{
		PublicFactoid:     faPrefixStr,
		SecretFactoid:     fsPrefixStr,
		PublicEntryCredit: ecPrefixStr,
		SecretEntryCredit: esPrefixStr,
	}
)

// AddressKinds lists all valid AddressKinds.
var AddressKinds = [...]AddressKind{
	PublicFactoid, SecretFactoid, PublicEntryCredit, SecretEntryCredit}

// AddressKindFromPrefix returns the AddressKind with the given prefix bytes.
// If prefix is not one of the four known prefixes, ok is false.
func AddressKindFromPrefix(prefix [PrefixSize]byte) (kind AddressKind, ok bool) {
	switch prefix {
	case faPrefixBytes:
		return PublicFactoid, true
	case fsPrefixBytes:
		return SecretFactoid, true
	case ecPrefixBytes:
		return PublicEntryCredit, true
	case esPrefixBytes:
		return SecretEntryCredit, true
	}
	return 0, false
}

// Valid returns true if kind is one of the four known AddressKinds.
func (kind AddressKind) Valid() bool {
	return kind >= PublicFactoid && kind <= SecretEntryCredit
}

// PrefixBytes returns the two byte prefix for kind. Note that the prefix for a
// given kind is always the same and does not depend on the address value.
func (kind AddressKind) PrefixBytes() [PrefixSize]byte {
	if !kind.Valid() {
		panic(fmt.Sprintf("invalid AddressKind: %d", kind))
	}
	return prefixBytes[kind]
}

// PrefixString returns the two characters that every encoded address of kind
// starts with: "FA", "Fs", "EC", or "Es". It returns "" for an invalid kind.
func (kind AddressKind) PrefixString() string {
	if !kind.Valid() {
		return ""
	}
	return prefixStrs[kind]
}

// String returns a human readable name for kind.
func (kind AddressKind) String() string {
	switch kind {
	case PublicFactoid:
		return "public Factoid"
	case SecretFactoid:
		return "secret Factoid"
	case PublicEntryCredit:
		return "public Entry Credit"
	case SecretEntryCredit:
		return "secret Entry Credit"
	}
	return fmt.Sprintf("AddressKind(%d)", uint8(kind))
}

// IsPublic returns true for PublicFactoid and PublicEntryCredit.
func (kind AddressKind) IsPublic() bool {
	return kind == PublicFactoid || kind == PublicEntryCredit
}

// IsSecret returns true for SecretFactoid and SecretEntryCredit.
func (kind AddressKind) IsSecret() bool {
	return kind == SecretFactoid || kind == SecretEntryCredit
}

// IsFactoid returns true for PublicFactoid and SecretFactoid.
func (kind AddressKind) IsFactoid() bool {
	return kind == PublicFactoid || kind == SecretFactoid
}

// IsEntryCredit returns true for PublicEntryCredit and SecretEntryCredit.
func (kind AddressKind) IsEntryCredit() bool {
	return kind == PublicEntryCredit || kind == SecretEntryCredit
}

// Public returns the public AddressKind on the same axis as kind. Public kinds
// return themselves.
func (kind AddressKind) Public() AddressKind {
	switch kind {
	case SecretFactoid:
		return PublicFactoid
	case SecretEntryCredit:
		return PublicEntryCredit
	}
	return kind
}
