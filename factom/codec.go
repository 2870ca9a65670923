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
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/Factom-Asset-Tokens/base58"
)

const (
	// PayloadSize is the number of payload bytes in a raw address.
	PayloadSize = sha256.Size
	// ChecksumSize is the number of checksum bytes in a raw address.
	ChecksumSize = 4
	// RawAddressSize is the total size of a decoded address.
	RawAddressSize = PrefixSize + PayloadSize + ChecksumSize

	// AddressStringLen is the length of every encoded Factom address.
	AddressStringLen = 52
)

// RawAddress is a base58 decoded address: [prefix][payload][checksum].
type RawAddress [RawAddressSize]byte

// Prefix returns the two prefix bytes of raw.
func (raw RawAddress) Prefix() (prefix [PrefixSize]byte) {
	copy(prefix[:], raw[:PrefixSize])
	return
}

// Payload returns the 32 payload bytes of raw.
func (raw RawAddress) Payload() (payload [PayloadSize]byte) {
	copy(payload[:], raw[PrefixSize:PrefixSize+PayloadSize])
	return
}

// Checksum returns the four trailing checksum bytes of raw.
func (raw RawAddress) Checksum() (chk [ChecksumSize]byte) {
	copy(chk[:], raw[PrefixSize+PayloadSize:])
	return
}

// ValidChecksum returns true if the checksum bytes of raw match the checksum
// of its prefix and payload.
func (raw RawAddress) ValidChecksum() bool {
	chk := Checksum(raw[:PrefixSize+PayloadSize])
	return bytes.Equal(chk[:], raw[PrefixSize+PayloadSize:])
}

// Encode returns the base58check string for prefix and payload.
func Encode(prefix [PrefixSize]byte, payload [PayloadSize]byte) string {
	var raw RawAddress
	copy(raw[:], prefix[:])
	copy(raw[PrefixSize:], payload[:])
	chk := Checksum(raw[:PrefixSize+PayloadSize])
	copy(raw[PrefixSize+PayloadSize:], chk[:])
	return base58.Encode(raw[:])
}

// Decode base58 decodes adrStr into a RawAddress. The checksum and prefix are
// not verified, use ParseAddress for that.
func Decode(adrStr string) (RawAddress, error) {
	var raw RawAddress
	if len(adrStr) == 0 {
		return raw, fmt.Errorf("%w: empty string", ErrInvalidEncoding)
	}
	// base58.Decode returns no data for any character outside the
	// alphabet. No non-empty valid string decodes to zero bytes.
	b := base58.Decode(adrStr)
	if len(b) == 0 {
		return raw, ErrInvalidEncoding
	}
	if len(b) != RawAddressSize {
		return raw, fmt.Errorf("%w: expected %v bytes but decoded %v",
			ErrLength, RawAddressSize, len(b))
	}
	copy(raw[:], b)
	return raw, nil
}

// Checksum returns the first four bytes of sha256(sha256(data)).
func Checksum(data []byte) (chk [ChecksumSize]byte) {
	hash := sha256d(data)
	copy(chk[:], hash[:])
	return
}

// sha256( sha256( data ) )
func sha256d(data []byte) [sha256.Size]byte {
	hash := sha256.Sum256(data)
	return sha256.Sum256(hash[:])
}
