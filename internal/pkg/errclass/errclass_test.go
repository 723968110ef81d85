//go:build unit

package errclass

import (
	"testing"

	"go-netcfg/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		diagnostic string
		want       types.ErrorKind
	}{
		{"The requested operation requires elevation.", types.KindElevationRequired},
		{"Run as Administrator to modify network settings", types.KindElevationRequired},
		{"Invalid source parameter was supplied", types.KindSyntaxRejected},
		{"The interface Ethernet 7 was not found", types.KindInterfaceNotFound},
		{"Could not find an interface with that name", types.KindInterfaceNotFound},
		{"netsh: context deadline exceeded", types.KindTimeout},
		{"The request timed out", types.KindTimeout},
		{"The parameter is incorrect.", types.KindBackendFailure},
		{"", types.KindBackendFailure},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.diagnostic), tc.diagnostic)
	}
}

func TestHintCoversAllKinds(t *testing.T) {
	kinds := []types.ErrorKind{
		types.KindValidation,
		types.KindInterfaceNotFound,
		types.KindInterfaceDisabled,
		types.KindElevationRequired,
		types.KindSyntaxRejected,
		types.KindDisconnected,
		types.KindNoSnapshot,
		types.KindTimeout,
		types.KindBackendFailure,
	}
	for _, kind := range kinds {
		assert.NotEmpty(t, Hint(kind), string(kind))
	}
	assert.Empty(t, Hint(types.KindNone))
}
