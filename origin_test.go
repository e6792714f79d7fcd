package sdpscan

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrigin(t *testing.T) {
	origin, err := parseOrigin("jdoe 2890844526 2890842807 IN IP4 10.47.16.5")
	require.NoError(t, err)
	assert.Equal(t, Origin{
		Username:       "jdoe",
		SessionID:      2890844526,
		SessionVersion: "2890842807",
		NetworkType:    "IN",
		AddressType:    "IP4",
		UnicastAddress: "10.47.16.5",
	}, origin)
}

// The session version is an opaque token and survives verbatim even
// when it is not a plain decimal.
func TestParseOriginVerbatimSessionVersion(t *testing.T) {
	origin, err := parseOrigin("- 1 0x1AF IN IP4 127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "0x1AF", origin.SessionVersion)
}

func TestParseOriginErrors(t *testing.T) {
	for _, value := range []string{
		"",
		"jdoe",
		"jdoe 2890844526 2890842807 IN IP4",
	} {
		t.Run("short `"+value+"`", func(t *testing.T) {
			_, err := parseOrigin(value)
			assert.ErrorIs(t, err, ErrInvalidOrigin)
		})
	}

	t.Run("session id not numeric", func(t *testing.T) {
		_, err := parseOrigin("jdoe abc 2890842807 IN IP4 10.47.16.5")
		var numErr *strconv.NumError
		assert.ErrorAs(t, err, &numErr)
	})
}
