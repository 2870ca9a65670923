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
	"encoding/json"
	"fmt"
)

// Key is 32 bytes of raw key material: an ed25519 public key or seed. The
// type does not record which, the caller's intent determines that.
type Key [PayloadSize]byte

// DecodeKey decodes hexStr, which must be exactly 32 bytes of hex encoded
// data.
func DecodeKey(hexStr string) (Key, error) {
	var key Key
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return key, fmt.Errorf("%w: %v", ErrFromHex, err)
	}
	if len(b) != len(key) {
		return key, fmt.Errorf("%w: expected %v bytes but decoded %v",
			ErrLength, len(key), len(b))
	}
	copy(key[:], b)
	return key, nil
}

// String returns the hex encoded data of key.
func (key Key) String() string {
	return hex.EncodeToString(key[:])
}

// Set decodes hexStr into key. With String and Type, this makes *Key a
// pflag.Value.
func (key *Key) Set(hexStr string) error {
	k, err := DecodeKey(hexStr)
	if err != nil {
		return err
	}
	*key = k
	return nil
}

// Type returns "key".
func (Key) Type() string { return "key" }

// MarshalJSON marshals key into a hex encoded JSON string.
func (key Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(key.String())
}

// UnmarshalJSON unmarshals a JSON string with exactly 32 bytes of hex encoded
// data.
func (key *Key) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%T: %w", key, err)
	}
	if err := key.Set(str); err != nil {
		return fmt.Errorf("%T: %w", key, err)
	}
	return nil
}
