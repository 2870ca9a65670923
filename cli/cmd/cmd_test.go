package cmd

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Factom-Asset-Tokens/fataddress/factom"
	"github.com/posener/complete"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	keyF8dd = "f8dd9d8af5d7cabd2b370be9f91bdd9021acb2eb9feaa39a78375e31f978377a"
	keyOaa3 = "0aa3bd0926fc64285abfdc1dab15861fd5c406cb6a6a966752555a738d8d99c3"
	pubOaa3 = "d521851f839bd859dddf8f47583e45b625fcf69d3fc6081234cd889227d6edfd"
	rcdOaa3 = "421cb2fea1db8767b3d77e269e59de330178e5dd978ca942604152c33c9566b7"

	ecF8dd = "EC3ekiKnW3DpzqTzAEkSyrAvmC3mZ6zwrmEUmf7AfcVPJahnHQFq"
	fsF8dd = "Fs3D7FNgvCV6P3bmFnJggAE3uQ9ykQufwzwSKgbrzQtjeiPnZW6g"
	fsOaa3 = "Fs1QC5mqxhwDYRGuG7J21X6HtmKwaDhyte8HfAK2A2o6fLYF4ite"
	faOaa3 = "FA2UCJVA3Cpp665LkWWTPaRDEYLMraQsbqgbaa5muT7PYzVhWXMU"
	esOaa3 = "Es2WLtdNiTuBmA3Z7nUFPSK4AVzZFbU93LPmR7B1JK9Xjcfxt7YC"
	ecOaa3 = "EC3P1v9UpTMGjng8qbMiDcrk3VpJZGqW8bEPshKvcqRr3GCyPQna"
)

// execute runs fat-address with args and returns everything written to
// stdout.
func execute(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--nocolor"}, args...))
	err := cmd.Execute()
	t.Logf("fat-address %v\nstdout:\n%vstderr:\n%v",
		strings.Join(args, " "), out.String(), errOut.String())
	return out.String(), err
}

func lines(out string) []string {
	return strings.Split(strings.TrimSpace(out), "\n")
}

func TestRoot(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "fat-address converts between raw keys")

	_, err = execute(t, "--installcompletion", "--uninstallcompletion")
	assert.Error(t, err)
	_, err = execute(t, "--installcompletion", "--debug")
	assert.Error(t, err)
}

func TestConfigFileCommandFlags(t *testing.T) {
	dir, err := ioutil.TempDir("", "fat-address")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(
		"kind: fs\nrcdhash: true\ninstallcompletion: true\n"), 0600))

	// Keys for sub-command flags in the config file are ignored.
	out, err := execute(t, "address", "--config", path, keyOaa3)
	assert.EqualError(t, err, "--kind is required")
	assert.Empty(t, out)

	out, err = execute(t, "address", "--config", path, "--kind", "ec", keyF8dd)
	require.NoError(t, err)
	assert.Equal(t, ecF8dd, strings.TrimSpace(out))

	out, err = execute(t, "--config", path)
	require.NoError(t, err)
	assert.False(t, installCompletion)
	assert.Contains(t, out, "fat-address converts between raw keys")
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", faOaa3, fsOaa3, ecOaa3, esOaa3)
	require.NoError(t, err)
	assert.Equal(t, []string{
		faOaa3 + " valid public Factoid address",
		fsOaa3 + " valid secret Factoid address",
		ecOaa3 + " valid public Entry Credit address",
		esOaa3 + " valid secret Entry Credit address",
	}, lines(out))

	out, err = execute(t, "validate", "--kind", "secret", fsOaa3, esOaa3)
	require.NoError(t, err)
	assert.Len(t, lines(out), 2)

	out, err = execute(t, "validate", "-k", "es", faOaa3, esOaa3)
	assert.EqualError(t, err, "1 of 2 addresses are invalid")
	assert.Equal(t, []string{
		faOaa3 + " invalid: public Factoid address is not es",
		esOaa3 + " valid secret Entry Credit address",
	}, lines(out))

	out, err = execute(t, "validate", "EC3e")
	assert.Error(t, err)
	assert.Equal(t,
		"EC3e invalid: invalid length: expected 38 bytes but decoded 3",
		strings.TrimSpace(out))

	_, err = execute(t, "validate", "--kind", "bogus", faOaa3)
	assert.Error(t, err)
	_, err = execute(t, "validate")
	assert.Error(t, err)
}

func TestAddress(t *testing.T) {
	for _, test := range []struct {
		Args    []string
		Address string
	}{
		{[]string{"--kind", "ec", keyF8dd}, ecF8dd},
		{[]string{"--kind", "fs", keyF8dd}, fsF8dd},
		{[]string{"--kind", "FS", keyOaa3}, fsOaa3},
		{[]string{"--kind", "es", keyOaa3}, esOaa3},
		{[]string{"-k", "fa", pubOaa3}, faOaa3},
		{[]string{"--kind", "fa", "--rcdhash", rcdOaa3}, faOaa3},
	} {
		out, err := execute(t, append([]string{"address"}, test.Args...)...)
		require.NoError(t, err)
		assert.Equal(t, test.Address, strings.TrimSpace(out))
	}

	out, err := execute(t, "addr", "--kind", "ec", keyF8dd, pubOaa3)
	require.NoError(t, err)
	assert.Equal(t, []string{ecF8dd, ecOaa3}, lines(out))

	_, err = execute(t, "address", keyF8dd)
	assert.EqualError(t, err, "--kind is required")
	_, err = execute(t, "address", "--kind", "ec", "--rcdhash", keyF8dd)
	assert.Error(t, err)
	_, err = execute(t, "address", "--kind", "xx", keyF8dd)
	assert.Error(t, err)

	out, err = execute(t, "address", "--kind", "ec", keyF8dd, "00")
	assert.True(t, errors.Is(err, factom.ErrLength), err)
	assert.Empty(t, out)
	_, err = execute(t, "address", "--kind", "ec", "zz")
	assert.True(t, errors.Is(err, factom.ErrFromHex), err)
}

func TestKey(t *testing.T) {
	out, err := execute(t, "key", fsOaa3, esOaa3, ecOaa3, ecF8dd)
	require.NoError(t, err)
	assert.Equal(t, []string{keyOaa3, keyOaa3, pubOaa3, keyF8dd}, lines(out))

	out, err = execute(t, "key", ecOaa3, faOaa3)
	assert.True(t, errors.Is(err, factom.ErrInvalidAddress), err)
	assert.Empty(t, out)
}

func TestRCDHash(t *testing.T) {
	out, err := execute(t, "rcdhash", faOaa3)
	require.NoError(t, err)
	assert.Equal(t, rcdOaa3, strings.TrimSpace(out))

	_, err = execute(t, "rcdhash", ecOaa3)
	assert.True(t, errors.Is(err, factom.ErrInvalidAddress), err)
}

func TestPublic(t *testing.T) {
	out, err := execute(t, "public", fsOaa3, esOaa3)
	require.NoError(t, err)
	assert.Equal(t, []string{faOaa3, ecOaa3}, lines(out))

	_, err = execute(t, "pub", faOaa3)
	assert.True(t, errors.Is(err, factom.ErrInvalidAddress), err)
}

func TestGenerate(t *testing.T) {
	for _, test := range []struct {
		Arg            string
		Secret, Public func(string) bool
	}{
		{"fs", factom.IsValidSecretFctAddress, factom.IsValidPublicFctAddress},
		{"es", factom.IsValidSecretECAddress, factom.IsValidPublicECAddress},
	} {
		out, err := execute(t, "generate", test.Arg)
		require.NoError(t, err)
		adrs := lines(out)
		require.Len(t, adrs, 2)
		assert.True(t, test.Secret(adrs[0]))
		assert.True(t, test.Public(adrs[1]))
		pub, err := factom.SecretToPublicAddress(adrs[0])
		require.NoError(t, err)
		assert.Equal(t, pub, adrs[1])
	}

	for _, args := range [][]string{{}, {"fa"}, {"ec"}, {"fs", "es"}, {"xx"}} {
		_, err := execute(t, append([]string{"gen"}, args...)...)
		assert.Errorf(t, err, "%v", args)
	}
}

func TestPredictArgs(t *testing.T) {
	predict := predictArgs(1, "fs", "es")
	assert.Equal(t, []string{"fs", "es"}, predict(complete.Args{}))
	assert.Equal(t, []string{"fs", "es"},
		predict(complete.Args{Completed: []string{"--debug"}}))
	assert.Nil(t, predict(complete.Args{Completed: []string{"fs"}}))

	predictAdr := PredictAddress(-1, factom.PublicFactoid)
	assert.Equal(t, []string{"FA"},
		predictAdr(complete.Args{Completed: []string{faOaa3}, Last: "F"}))
	assert.Nil(t, predictAdr(complete.Args{Last: "FA2"}))
}

func TestFlagTypes(t *testing.T) {
	var kind kindFlag
	for _, name := range []string{"fa", "FA", "Fs", "ec", "ES"} {
		assert.NoError(t, kind.Set(name))
		assert.Equal(t, strings.ToLower(name), kind.String())
	}
	assert.Error(t, kind.Set("public"))
	assert.Equal(t, []string{"fa", "fs", "ec", "es"}, kindNames())

	var filter filterFlag
	for _, name := range filterNames() {
		require.NoError(t, filter.Set(name))
		assert.Equal(t, name != "fs" && name != "es" && name != "secret" &&
			name != "ec" && name != "entrycredit",
			filter.IsValid(faOaa3), name)
	}
	assert.Error(t, filter.Set("bogus"))
}
