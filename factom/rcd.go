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
	"encoding/hex"

	"golang.org/x/crypto/ed25519"
)

const (
	// RCDType is the magic number identifying the currently accepted RCD.
	RCDType byte = 0x01
	// RCDSize is the size of the RCD.
	RCDSize = ed25519.PublicKeySize + 1
	// SignatureSize is the size of the ed25519 signatures.
	SignatureSize = ed25519.SignatureSize
)

// RCDHash is the double sha256 hash of an RCD. It is the payload of a public
// Factoid address.
type RCDHash [PayloadSize]byte

// RCD returns the type 1 RCD for pub: RCDType followed by the public key.
func RCD(pub ed25519.PublicKey) []byte {
	return append([]byte{RCDType}, pub...)
}

// NewRCDHash computes the RCD hash of the type 1 RCD for pub.
func NewRCDHash(pub ed25519.PublicKey) RCDHash {
	return sha256d(RCD(pub))
}

// String returns the hex encoded data of rcdHash.
func (rcdHash RCDHash) String() string {
	return hex.EncodeToString(rcdHash[:])
}

// FAAddress returns the public Factoid address for rcdHash.
func (rcdHash RCDHash) FAAddress() FAAddress {
	return FAAddress(rcdHash)
}
