package sdpscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNetworkType(t *testing.T) {
	testCases := []struct {
		typeString   string
		shouldFail   bool
		expectedType NetworkType
	}{
		{unknownStr, true, NetworkType(Unknown)},
		{"IN", false, NetworkTypeIN},
		{"in", true, NetworkType(Unknown)},
		{"ATM", true, NetworkType(Unknown)},
	}

	for i, testCase := range testCases {
		actual, err := NewNetworkType(testCase.typeString)
		if testCase.shouldFail {
			assert.ErrorIs(t, err, ErrInvalidNetworkType, "testCase: %d %v", i, testCase)
		} else {
			assert.NoError(t, err, "testCase: %d %v", i, testCase)
		}
		assert.Equal(t, testCase.expectedType, actual, "testCase: %d %v", i, testCase)
	}
}

func TestNetworkTypeString(t *testing.T) {
	assert.Equal(t, "IN", NetworkTypeIN.String())
	assert.Equal(t, unknownStr, NetworkType(Unknown).String())
}
