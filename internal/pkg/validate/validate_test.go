//go:build unit

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidIPv4(t *testing.T) {
	valid := []string{
		"192.168.1.1",
		"0.0.0.0",
		"255.255.255.255",
		"10.0.0.5",
	}
	for _, addr := range valid {
		assert.True(t, IsValidIPv4(addr), addr)
	}

	invalid := []string{
		"",
		"256.1.1.1",
		"1.2.3",
		"1.2.3.4.5",
		"1.2.3.4 ",
		" 1.2.3.4",
		"a.b.c.d",
		"192.168.1.-1",
		"192.168.1.1/24",
		"999.999.999.999",
	}
	for _, addr := range invalid {
		assert.False(t, IsValidIPv4(addr), addr)
	}
}

func TestPrefixToMask(t *testing.T) {
	cases := map[int]string{
		0:  "0.0.0.0",
		8:  "255.0.0.0",
		16: "255.255.0.0",
		24: "255.255.255.0",
		25: "255.255.255.128",
		32: "255.255.255.255",
	}
	for prefix, want := range cases {
		mask, err := PrefixToMask(prefix)
		require.NoError(t, err)
		assert.Equal(t, want, mask)
	}

	_, err := PrefixToMask(-1)
	assert.Error(t, err)
	_, err = PrefixToMask(33)
	assert.Error(t, err)
}
