package factom_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/Factom-Asset-Tokens/fataddress/factom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"
)

func TestZeroAddress(t *testing.T) {
	var fs factom.FsAddress
	require := require.New(t)
	require.Equal(fsZero, fs.String())
	require.Equal(faZeroSeed, fs.FAAddress().String())
	require.Equal(faZeroSeed, fs.PublicAddress().String())
	rcdHash := fs.RCDHash()
	require.Equal(faZeroSeed, rcdHash.FAAddress().String())
	require.Equal(faZero, factom.FAAddress{}.String())
	require.Equal(ecZero, factom.ECAddress{}.String())
	require.Equal(esZero, factom.EsAddress{}.String())
}

func TestAddressKinds(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(factom.PublicFactoid, factom.FAAddress{}.Kind())
	assert.Equal(factom.SecretFactoid, factom.FsAddress{}.Kind())
	assert.Equal(factom.PublicEntryCredit, factom.ECAddress{}.Kind())
	assert.Equal(factom.SecretEntryCredit, factom.EsAddress{}.Kind())
	assert.Equal([2]byte{0x5f, 0xb1}, factom.FAAddress{}.PrefixBytes())
	assert.Equal([2]byte{0x64, 0x78}, factom.FsAddress{}.PrefixBytes())
	assert.Equal([2]byte{0x59, 0x2a}, factom.ECAddress{}.PrefixBytes())
	assert.Equal([2]byte{0x5d, 0xb6}, factom.EsAddress{}.PrefixBytes())
}

func TestSecretAddressKeys(t *testing.T) {
	fs, err := factom.NewFsAddress(fsOaa3)
	require.NoError(t, err)
	es, err := factom.NewEsAddress(esOaa3)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(fs.Key(), es.Key())
	assert.Equal(pubOaa3, keyOf(fs.PublicKey()).String())
	assert.Equal(pubOaa3, keyOf(es.PublicKey()).String())
	assert.Equal(faOaa3, fs.PublicAddress().String())
	assert.Equal(ecOaa3, es.PublicAddress().String())
	assert.Equal(rcdOaa3, fs.RCDHash().String())
	assert.Equal(fs.RCD(), es.RCD())

	ec := es.ECAddress()
	assert.Equal(es.PublicKey(), ec.PublicKey())

	msg := []byte("fataddress")
	sig := ed25519.Sign(fs.PrivateKey(), msg)
	assert.Len(sig, factom.SignatureSize)
	assert.True(ed25519.Verify(ec.PublicKey(), msg, sig))
}

func TestAddressSet(t *testing.T) {
	tests := []struct {
		Name string
		Adr  interface {
			Set(string) error
			String() string
		}
		Valid string
	}{
		{"FA", new(factom.FAAddress), faOaa3},
		{"Fs", new(factom.FsAddress), fsOaa3},
		{"EC", new(factom.ECAddress), ecOaa3},
		{"Es", new(factom.EsAddress), esOaa3},
	}
	others := []string{faOaa3, fsOaa3, ecOaa3, esOaa3}
	for _, test := range tests {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			assert := assert.New(t)
			for _, other := range others {
				if other == test.Valid {
					continue
				}
				err := test.Adr.Set(other)
				assert.True(errors.Is(err, factom.ErrInvalidAddress), err)
			}
			assert.Error(test.Adr.Set(badChecksum))
			assert.Error(test.Adr.Set("EC3e"))
			require.NoError(t, test.Adr.Set(test.Valid))
			assert.Equal(test.Valid, test.Adr.String())
		})
	}
}

func TestAddressSetWrongKindMessage(t *testing.T) {
	_, err := factom.NewECAddress(faOaa3)
	assert.EqualError(t, err, "invalid address: "+
		"expected public Entry Credit address but got public Factoid")
}

var (
	JSONAddressInvalidTypes   = []string{`{}`, `5.5`, `["hello"]`}
	JSONAddressInvalidLengths = []string{`"FA0"`, `"EC3e"`,
		`"FA1zT4aFpEvcnPqPCigB3fvGu4Q4mTXY22iiuV69DqE1pNhdF2MC1zT4"`}
	JSONAddressInvalidPrefix   = fmt.Sprintf("%q", fsZero)
	JSONAddressInvalidSymbol   = fmt.Sprintf("%q", badSymbol)
	JSONAddressInvalidChecksum = fmt.Sprintf("%q", badChecksum)
)

func TestAddressUnmarshalJSON(t *testing.T) {
	for _, json := range JSONAddressInvalidTypes {
		testAddressUnmarshalJSON(t, "InvalidType", json, nil)
	}
	for _, json := range JSONAddressInvalidLengths[1:] {
		testAddressUnmarshalJSON(t, "InvalidLength", json, factom.ErrLength)
	}
	testAddressUnmarshalJSON(t, "InvalidLength", JSONAddressInvalidLengths[0],
		factom.ErrInvalidEncoding)
	testAddressUnmarshalJSON(t, "InvalidPrefix", JSONAddressInvalidPrefix,
		factom.ErrInvalidAddress)
	testAddressUnmarshalJSON(t, "InvalidSymbol", JSONAddressInvalidSymbol,
		factom.ErrInvalidEncoding)
	testAddressUnmarshalJSON(t, "InvalidChecksum", JSONAddressInvalidChecksum,
		factom.ErrInvalidAddress)
	json := fmt.Sprintf("%q", faOaa3)
	t.Run("Valid", func(t *testing.T) {
		var adr factom.FAAddress
		assert := assert.New(t)
		assert.NoErrorf(adr.UnmarshalJSON([]byte(json)), "json: %v", json)
		assert.Equal(faOaa3, adr.String())
	})
}

func testAddressUnmarshalJSON(t *testing.T, name string, json string, target error) {
	t.Run(name, func(t *testing.T) {
		var adr factom.FAAddress
		err := adr.UnmarshalJSON([]byte(json))
		assert.Errorf(t, err, "json: %v", json)
		if target != nil {
			assert.Truef(t, errors.Is(err, target), "json: %v: %v", json, err)
		}
		assert.Equal(t, factom.FAAddress{}, adr)
	})
}

func TestAddressMarshalJSON(t *testing.T) {
	type addresses struct {
		FA factom.FAAddress
		Fs factom.FsAddress
		EC factom.ECAddress
		Es factom.EsAddress
	}
	var adrs addresses
	require := require.New(t)
	var err error
	adrs.FA, err = factom.NewFAAddress(faOaa3)
	require.NoError(err)
	adrs.Fs, err = factom.NewFsAddress(fsOaa3)
	require.NoError(err)
	adrs.EC, err = factom.NewECAddress(ecOaa3)
	require.NoError(err)
	adrs.Es, err = factom.NewEsAddress(esOaa3)
	require.NoError(err)

	data, err := json.Marshal(adrs)
	require.NoError(err)
	require.JSONEq(fmt.Sprintf(`{"FA":%q,"Fs":%q,"EC":%q,"Es":%q}`,
		faOaa3, fsOaa3, ecOaa3, esOaa3), string(data))

	var decoded addresses
	require.NoError(json.Unmarshal(data, &decoded))
	require.Equal(adrs, decoded)
}

func TestAddressTextMapKeys(t *testing.T) {
	fa, err := factom.NewFAAddress(faOaa3)
	require.NoError(t, err)
	balances := map[factom.FAAddress]uint64{fa: 5}
	data, err := json.Marshal(balances)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(`{%q:5}`, faOaa3), string(data))

	decoded := make(map[factom.FAAddress]uint64)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, balances, decoded)
}
