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

import (
	"fmt"

	"golang.org/x/crypto/ed25519"
)

// KeyToAddress encodes key as an address of the given kind. The key must
// already be the correct payload for kind: a seed for secret kinds, a public
// key for PublicEntryCredit, or an RCD hash for PublicFactoid.
func KeyToAddress(kind AddressKind, key Key) string {
	return Encode(kind.PrefixBytes(), key)
}

// KeyToPublicFctAddress returns the FA address for the ed25519 public key pub.
func KeyToPublicFctAddress(pub Key) string {
	return NewRCDHash(pub[:]).FAAddress().String()
}

// RCDHashToPublicFctAddress returns the FA address holding rcdHash.
func RCDHashToPublicFctAddress(rcdHash RCDHash) string {
	return rcdHash.FAAddress().String()
}

// KeyToSecretFctAddress returns the Fs address for seed.
func KeyToSecretFctAddress(seed Key) string {
	return FsAddress(seed).String()
}

// KeyToPublicECAddress returns the EC address for the ed25519 public key pub.
func KeyToPublicECAddress(pub Key) string {
	return ECAddress(pub).String()
}

// KeyToSecretECAddress returns the Es address for seed.
func KeyToSecretECAddress(seed Key) string {
	return EsAddress(seed).String()
}

// PublicKeyFromSeed derives the ed25519 public key for seed.
func PublicKeyFromSeed(seed Key) ed25519.PublicKey {
	return ed25519.NewKeyFromSeed(seed[:]).Public().(ed25519.PublicKey)
}

// PublicFctAddressFromKey decodes the hex encoded public key pubHex and
// returns its FA address.
func PublicFctAddressFromKey(pubHex string) (string, error) {
	pub, err := DecodeKey(pubHex)
	if err != nil {
		return "", err
	}
	return KeyToPublicFctAddress(pub), nil
}

// AddressToKey returns the hex encoded key held by the Fs, EC, or Es address
// adrStr. FA addresses hold an RCD hash, not a key, and are rejected, use
// AddressToRCDHash for those.
func AddressToKey(adrStr string) (string, error) {
	adr, err := NewKeyAddress(adrStr)
	if err != nil {
		return "", err
	}
	return adr.Key().String(), nil
}

// AddressToRCDHash returns the hex encoded RCD hash held by the FA address
// adrStr. Any other kind of address is rejected.
func AddressToRCDHash(adrStr string) (string, error) {
	adr, err := NewAddress(adrStr)
	if err != nil {
		return "", err
	}
	fa, ok := adr.(FAAddress)
	if !ok {
		return "", fmt.Errorf("%w: %v address does not contain an RCD hash",
			ErrInvalidAddress, adr.Kind())
	}
	return fa.RCDHash().String(), nil
}

// SecretToPublicAddress returns the FA or EC address corresponding to the Fs
// or Es address adrStr.
func SecretToPublicAddress(adrStr string) (string, error) {
	adr, err := NewPrivateAddress(adrStr)
	if err != nil {
		return "", err
	}
	return adr.PublicAddress().String(), nil
}
