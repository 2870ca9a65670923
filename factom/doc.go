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

// Package factom implements the four Factom address types and the base58check
// codec they share.
//
// There are four Factom address kinds, forming two pairs: public and secret
// Factoid addresses, and public and secret Entry Credit addresses. All
// addresses are a 32 byte payload encoded using base58check with a two byte
// prefix:
//
//	[2 byte prefix][32 byte payload][4 byte checksum]
//
// The checksum is the first four bytes of sha256(sha256(prefix|payload)).
//
// The payload of secret addresses (Fs, Es) is an ed25519 seed. The payload of
// a public Entry Credit address (EC) is the ed25519 public key. The payload of
// a public Factoid address (FA) is the RCD hash of the public key, which can
// not be reversed into a key. The KeyAddress interface is implemented by the
// three address types whose payload is a key, but not by FAAddress.
//
// Address strings can be validated with IsValidAddress and the kind specific
// predicates such as IsValidPublicFctAddress, which never panic and never
// inspect the characters of the string. ParseAddress returns the
// AddressKind and payload, or an error wrapping one of ErrInvalidEncoding,
// ErrLength, or ErrInvalidAddress.
//
// Nothing in this package performs any I/O.
package factom
