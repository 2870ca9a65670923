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
	"crypto/rand"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/ed25519"
)

// Address is implemented by FAAddress, FsAddress, ECAddress, and EsAddress.
type Address interface {
	// Kind returns the AddressKind of the Address.
	Kind() AddressKind
	// PrefixBytes returns the two decoded prefix bytes.
	PrefixBytes() [PrefixSize]byte
	// PrefixString returns the first two characters of String().
	PrefixString() string

	// String returns the 52 character base58check address.
	String() string
	// Payload returns the 32 bytes between the prefix and checksum.
	Payload() [PayloadSize]byte

	// PublicAddress returns the FA or EC address on the same axis.
	// Public addresses return themselves.
	PublicAddress() Address
}

// KeyAddress is the interface implemented by the address types whose payload
// is a key: FsAddress, EsAddress, and ECAddress. FAAddress does not implement
// KeyAddress because its payload is an RCDHash.
type KeyAddress interface {
	Address

	// Key returns the payload as a Key.
	Key() Key
}

// PrivateAddress is implemented by the secret address types, FsAddress and
// EsAddress, whose payload is an ed25519 seed.
type PrivateAddress interface {
	KeyAddress

	// PrivateKey expands the seed into an ed25519.PrivateKey.
	PrivateKey() ed25519.PrivateKey
	// PublicKey derives the ed25519.PublicKey of the seed.
	PublicKey() ed25519.PublicKey
	// RCD returns the type 1 RCD for the PublicKey.
	RCD() []byte
}

// FAAddress is a Public Factoid Address. Its payload is an RCDHash.
type FAAddress [PayloadSize]byte

// FsAddress is a Secret Factoid Address. Its payload is an ed25519 seed.
type FsAddress [PayloadSize]byte

// ECAddress is a Public Entry Credit Address. Its payload is a public key.
type ECAddress [PayloadSize]byte

// EsAddress is a Secret Entry Credit Address. Its payload is an ed25519 seed.
type EsAddress [PayloadSize]byte

// Ensure that the interfaces are implemented.
var (
	_ Address        = FAAddress{}
	_ PrivateAddress = FsAddress{}
	_ KeyAddress     = ECAddress{}
	_ PrivateAddress = EsAddress{}
)

// newAddress returns payload as the concrete Address type for kind.
func newAddress(kind AddressKind, payload [PayloadSize]byte) Address {
	switch kind {
	case PublicFactoid:
		return FAAddress(payload)
	case SecretFactoid:
		return FsAddress(payload)
	case PublicEntryCredit:
		return ECAddress(payload)
	case SecretEntryCredit:
		return EsAddress(payload)
	}
	panic(fmt.Sprintf("invalid AddressKind: %d", kind))
}

// Kind returns PublicFactoid.
func (FAAddress) Kind() AddressKind { return PublicFactoid }

// Kind returns SecretFactoid.
func (FsAddress) Kind() AddressKind { return SecretFactoid }

// Kind returns PublicEntryCredit.
func (ECAddress) Kind() AddressKind { return PublicEntryCredit }

// Kind returns SecretEntryCredit.
func (EsAddress) Kind() AddressKind { return SecretEntryCredit }

// PrefixBytes returns [2]byte{0x5f, 0xb1}.
func (FAAddress) PrefixBytes() [PrefixSize]byte { return faPrefixBytes }

// PrefixBytes returns [2]byte{0x64, 0x78}.
func (FsAddress) PrefixBytes() [PrefixSize]byte { return fsPrefixBytes }

// PrefixBytes returns [2]byte{0x59, 0x2a}.
func (ECAddress) PrefixBytes() [PrefixSize]byte { return ecPrefixBytes }

// PrefixBytes returns [2]byte{0x5d, 0xb6}.
func (EsAddress) PrefixBytes() [PrefixSize]byte { return esPrefixBytes }

// PrefixString returns "FA".
func (FAAddress) PrefixString() string { return faPrefixStr }

// PrefixString returns "Fs".
func (FsAddress) PrefixString() string { return fsPrefixStr }

// PrefixString returns "EC".
func (ECAddress) PrefixString() string { return ecPrefixStr }

// PrefixString returns "Es".
func (EsAddress) PrefixString() string { return esPrefixStr }

// Payload returns the 32 byte payload of adr.
func (adr FAAddress) Payload() [PayloadSize]byte { return adr }

// Payload returns the 32 byte payload of adr.
func (adr FsAddress) Payload() [PayloadSize]byte { return adr }

// Payload returns the 32 byte payload of adr.
func (adr ECAddress) Payload() [PayloadSize]byte { return adr }

// Payload returns the 32 byte payload of adr.
func (adr EsAddress) Payload() [PayloadSize]byte { return adr }

// String returns the base58check encoding of adr.
func (adr FAAddress) String() string { return Encode(adr.PrefixBytes(), adr) }

// String returns the base58check encoding of adr.
func (adr FsAddress) String() string { return Encode(adr.PrefixBytes(), adr) }

// String returns the base58check encoding of adr.
func (adr ECAddress) String() string { return Encode(adr.PrefixBytes(), adr) }

// String returns the base58check encoding of adr.
func (adr EsAddress) String() string { return Encode(adr.PrefixBytes(), adr) }

// Key returns the seed in adr.
func (adr FsAddress) Key() Key { return Key(adr) }

// Key returns the public key in adr.
func (adr ECAddress) Key() Key { return Key(adr) }

// Key returns the seed in adr.
func (adr EsAddress) Key() Key { return Key(adr) }

// RCDHash returns the payload of adr.
func (adr FAAddress) RCDHash() RCDHash { return RCDHash(adr) }

// RCDHash hashes the RCD of the public key for adr.
func (adr FsAddress) RCDHash() RCDHash { return NewRCDHash(adr.PublicKey()) }

// PublicAddress returns adr.
func (adr FAAddress) PublicAddress() Address { return adr }

// PublicAddress returns adr.FAAddress().
func (adr FsAddress) PublicAddress() Address { return adr.FAAddress() }

// PublicAddress returns adr.
func (adr ECAddress) PublicAddress() Address { return adr }

// PublicAddress returns adr.ECAddress().
func (adr EsAddress) PublicAddress() Address { return adr.ECAddress() }

// FAAddress returns the public Factoid address that adr can spend from.
func (adr FsAddress) FAAddress() FAAddress {
	return adr.RCDHash().FAAddress()
}

// ECAddress returns the public Entry Credit address for adr, which is its
// public key.
func (adr EsAddress) ECAddress() (ec ECAddress) {
	copy(ec[:], adr.PublicKey())
	return
}

// PrivateKey expands the seed in adr.
func (adr FsAddress) PrivateKey() ed25519.PrivateKey {
	return ed25519.NewKeyFromSeed(adr[:])
}

// PrivateKey expands the seed in adr.
func (adr EsAddress) PrivateKey() ed25519.PrivateKey {
	return ed25519.NewKeyFromSeed(adr[:])
}

// PublicKey derives the public key from the seed in adr.
func (adr FsAddress) PublicKey() ed25519.PublicKey {
	return PublicKeyFromSeed(Key(adr))
}

// PublicKey returns the payload of adr.
func (adr ECAddress) PublicKey() ed25519.PublicKey {
	return adr[:]
}

// PublicKey derives the public key from the seed in adr.
func (adr EsAddress) PublicKey() ed25519.PublicKey {
	return PublicKeyFromSeed(Key(adr))
}

// RCD returns the type 1 RCD for adr.PublicKey().
func (adr FsAddress) RCD() []byte { return RCD(adr.PublicKey()) }

// RCD returns the type 1 RCD for adr.PublicKey().
func (adr EsAddress) RCD() []byte { return RCD(adr.PublicKey()) }

// GenerateFsAddress generates a secure random secret Factoid address using
// crypto/rand.Reader as the source of randomness.
func GenerateFsAddress() (FsAddress, error) {
	return generatePrivKey()
}

// GenerateEsAddress generates a secure random secret Entry Credit address
// using crypto/rand.Reader as the source of randomness.
func GenerateEsAddress() (EsAddress, error) {
	return generatePrivKey()
}

func generatePrivKey() (key [PayloadSize]byte, err error) {
	var priv ed25519.PrivateKey
	if _, priv, err = ed25519.GenerateKey(rand.Reader); err != nil {
		return
	}
	copy(key[:], priv)
	return key, nil
}

// NewFAAddress parses adrStr, which must be a public Factoid address.
func NewFAAddress(adrStr string) (adr FAAddress, err error) {
	err = adr.Set(adrStr)
	return
}

// NewFsAddress parses adrStr, which must be a secret Factoid address.
func NewFsAddress(adrStr string) (adr FsAddress, err error) {
	err = adr.Set(adrStr)
	return
}

// NewECAddress parses adrStr, which must be a public Entry Credit address.
func NewECAddress(adrStr string) (adr ECAddress, err error) {
	err = adr.Set(adrStr)
	return
}

// NewEsAddress parses adrStr, which must be a secret Entry Credit address.
func NewEsAddress(adrStr string) (adr EsAddress, err error) {
	err = adr.Set(adrStr)
	return
}

// Set parses adrStr into adr, so adr may be used as a flag value.
func (adr *FAAddress) Set(adrStr string) error {
	return setKind((*[PayloadSize]byte)(adr), adrStr, PublicFactoid)
}

// Set parses adrStr into adr, so adr may be used as a flag value.
func (adr *FsAddress) Set(adrStr string) error {
	return setKind((*[PayloadSize]byte)(adr), adrStr, SecretFactoid)
}

// Set parses adrStr into adr, so adr may be used as a flag value.
func (adr *ECAddress) Set(adrStr string) error {
	return setKind((*[PayloadSize]byte)(adr), adrStr, PublicEntryCredit)
}

// Set parses adrStr into adr, so adr may be used as a flag value.
func (adr *EsAddress) Set(adrStr string) error {
	return setKind((*[PayloadSize]byte)(adr), adrStr, SecretEntryCredit)
}

// setKind parses adrStr into payload enforcing that it is of the given kind.
// payload is not modified if an error is returned.
func setKind(payload *[PayloadSize]byte, adrStr string, kind AddressKind) error {
	k, pld, err := ParseAddress(adrStr)
	if err != nil {
		return err
	}
	if k != kind {
		return fmt.Errorf("%w: expected %v address but got %v",
			ErrInvalidAddress, kind, k)
	}
	*payload = pld
	return nil
}

// MarshalText encodes adr using adr.String().
func (adr FAAddress) MarshalText() ([]byte, error) { return []byte(adr.String()), nil }

// MarshalText encodes adr using adr.String().
func (adr FsAddress) MarshalText() ([]byte, error) { return []byte(adr.String()), nil }

// MarshalText encodes adr using adr.String().
func (adr ECAddress) MarshalText() ([]byte, error) { return []byte(adr.String()), nil }

// MarshalText encodes adr using adr.String().
func (adr EsAddress) MarshalText() ([]byte, error) { return []byte(adr.String()), nil }

// UnmarshalText decodes a human readable public Factoid address into adr.
func (adr *FAAddress) UnmarshalText(text []byte) error { return adr.Set(string(text)) }

// UnmarshalText decodes a human readable secret Factoid address into adr.
func (adr *FsAddress) UnmarshalText(text []byte) error { return adr.Set(string(text)) }

// UnmarshalText decodes a human readable public Entry Credit address into adr.
func (adr *ECAddress) UnmarshalText(text []byte) error { return adr.Set(string(text)) }

// UnmarshalText decodes a human readable secret Entry Credit address into adr.
func (adr *EsAddress) UnmarshalText(text []byte) error { return adr.Set(string(text)) }

// MarshalJSON returns adr.String() as a JSON string.
func (adr FAAddress) MarshalJSON() ([]byte, error) { return json.Marshal(adr.String()) }

// MarshalJSON returns adr.String() as a JSON string.
func (adr FsAddress) MarshalJSON() ([]byte, error) { return json.Marshal(adr.String()) }

// MarshalJSON returns adr.String() as a JSON string.
func (adr ECAddress) MarshalJSON() ([]byte, error) { return json.Marshal(adr.String()) }

// MarshalJSON returns adr.String() as a JSON string.
func (adr EsAddress) MarshalJSON() ([]byte, error) { return json.Marshal(adr.String()) }

// UnmarshalJSON parses a JSON string holding a public Factoid address.
func (adr *FAAddress) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(adr, data)
}

// UnmarshalJSON parses a JSON string holding a secret Factoid address.
func (adr *FsAddress) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(adr, data)
}

// UnmarshalJSON parses a JSON string holding a public Entry Credit address.
func (adr *ECAddress) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(adr, data)
}

// UnmarshalJSON parses a JSON string holding a secret Entry Credit address.
func (adr *EsAddress) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(adr, data)
}

func unmarshalJSON(adr interface{ Set(string) error }, data []byte) error {
	var adrStr string
	if err := json.Unmarshal(data, &adrStr); err != nil {
		return fmt.Errorf("%T: %w", adr, err)
	}
	if err := adr.Set(adrStr); err != nil {
		return fmt.Errorf("%T: %w", adr, err)
	}
	return nil
}
