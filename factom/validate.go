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

// ParseAddress decodes adrStr, verifies its checksum, and classifies it by its
// prefix bytes. The returned error wraps ErrInvalidEncoding, ErrLength, or
// ErrInvalidAddress.
func ParseAddress(adrStr string) (AddressKind, [PayloadSize]byte, error) {
	raw, err := Decode(adrStr)
	if err != nil {
		return 0, [PayloadSize]byte{}, err
	}
	if !raw.ValidChecksum() {
		return 0, [PayloadSize]byte{}, fmt.Errorf("%w: checksum mismatch",
			ErrInvalidAddress)
	}
	kind, ok := AddressKindFromPrefix(raw.Prefix())
	if !ok {
		return 0, [PayloadSize]byte{}, fmt.Errorf("%w: unrecognized prefix",
			ErrInvalidAddress)
	}
	return kind, raw.Payload(), nil
}

// NewAddress parses adrStr and returns the correct address type as an Address
// interface. This is useful when the address type isn't known prior to parsing
// adrStr. If the address type is known ahead of time, it is generally better
// to just use the appropriate concrete type.
func NewAddress(adrStr string) (Address, error) {
	kind, payload, err := ParseAddress(adrStr)
	if err != nil {
		return nil, err
	}
	return newAddress(kind, payload), nil
}

// NewPublicAddress parses adrStr and returns the correct address type as an
// Address interface. If adrStr is not a public address then an error wrapping
// ErrInvalidAddress is returned.
func NewPublicAddress(adrStr string) (Address, error) {
	return newAddressFilter(adrStr, AddressKind.IsPublic, "public")
}

// NewPrivateAddress parses adrStr and returns the correct address type as a
// PrivateAddress interface. If adrStr is not a secret address then an error
// wrapping ErrInvalidAddress is returned.
func NewPrivateAddress(adrStr string) (PrivateAddress, error) {
	adr, err := newAddressFilter(adrStr, AddressKind.IsSecret, "secret")
	if err != nil {
		return nil, err
	}
	return adr.(PrivateAddress), nil
}

// NewKeyAddress parses adrStr and returns it as a KeyAddress. Public Factoid
// addresses hold an RCD hash, not a key, and so are rejected with an error
// wrapping ErrInvalidAddress.
func NewKeyAddress(adrStr string) (KeyAddress, error) {
	adr, err := NewAddress(adrStr)
	if err != nil {
		return nil, err
	}
	keyAdr, ok := adr.(KeyAddress)
	if !ok {
		return nil, fmt.Errorf("%w: %v address does not contain a key",
			ErrInvalidAddress, adr.Kind())
	}
	return keyAdr, nil
}

func newAddressFilter(adrStr string,
	filter func(AddressKind) bool, expected string) (Address, error) {
	kind, payload, err := ParseAddress(adrStr)
	if err != nil {
		return nil, err
	}
	if !filter(kind) {
		return nil, fmt.Errorf("%w: expected %v address but got %v",
			ErrInvalidAddress, expected, kind)
	}
	return newAddress(kind, payload), nil
}

// IsValidAddress returns true if adrStr is a well formed address of any of the
// four kinds.
func IsValidAddress(adrStr string) bool {
	_, _, err := ParseAddress(adrStr)
	return err == nil
}

// isValidKind returns true if adrStr is a well formed address whose kind
// passes filter.
func isValidKind(adrStr string, filter func(AddressKind) bool) bool {
	kind, _, err := ParseAddress(adrStr)
	return err == nil && filter(kind)
}

func isKind(kind AddressKind) func(AddressKind) bool {
	return func(k AddressKind) bool { return k == kind }
}

// IsValidPublicAddress returns true if adrStr is a valid FA or EC address.
func IsValidPublicAddress(adrStr string) bool {
	return isValidKind(adrStr, AddressKind.IsPublic)
}

// IsValidSecretAddress returns true if adrStr is a valid Fs or Es address.
func IsValidSecretAddress(adrStr string) bool {
	return isValidKind(adrStr, AddressKind.IsSecret)
}

// IsValidFctAddress returns true if adrStr is a valid FA or Fs address.
func IsValidFctAddress(adrStr string) bool {
	return isValidKind(adrStr, AddressKind.IsFactoid)
}

// IsValidECAddress returns true if adrStr is a valid EC or Es address.
func IsValidECAddress(adrStr string) bool {
	return isValidKind(adrStr, AddressKind.IsEntryCredit)
}

// IsValidPublicFctAddress returns true if adrStr is a valid FA address.
func IsValidPublicFctAddress(adrStr string) bool {
	return isValidKind(adrStr, isKind(PublicFactoid))
}

// IsValidSecretFctAddress returns true if adrStr is a valid Fs address.
func IsValidSecretFctAddress(adrStr string) bool {
	return isValidKind(adrStr, isKind(SecretFactoid))
}

// IsValidPublicECAddress returns true if adrStr is a valid EC address.
func IsValidPublicECAddress(adrStr string) bool {
	return isValidKind(adrStr, isKind(PublicEntryCredit))
}

// IsValidSecretECAddress returns true if adrStr is a valid Es address.
func IsValidSecretECAddress(adrStr string) bool {
	return isValidKind(adrStr, isKind(SecretEntryCredit))
}
