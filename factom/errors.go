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

import "errors"

// Errors returned by this package wrap one of the following, so they may be
// tested for using errors.Is.
var (
	// ErrFromHex is returned when a key is not valid hex.
	ErrFromHex = errors.New("invalid hex")
	// ErrLength is returned when decoded data is not the expected size.
	ErrLength = errors.New("invalid length")
	// ErrInvalidEncoding is returned when an address is not valid base58.
	ErrInvalidEncoding = errors.New("invalid base58 encoding")
	// ErrInvalidAddress is returned when an address has a bad checksum, an
	// unknown prefix, or is the wrong kind for the requested operation.
	ErrInvalidAddress = errors.New("invalid address")
)
