package sdpscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMediaType(t *testing.T) {
	testCases := []struct {
		typeString   string
		shouldFail   bool
		expectedType MediaType
	}{
		{unknownStr, true, MediaType(Unknown)},
		{"audio", false, MediaTypeAudio},
		{"video", false, MediaTypeVideo},
		{"text", false, MediaTypeText},
		{"application", false, MediaTypeApplication},
		{"Audio", true, MediaType(Unknown)},
		{"message", true, MediaType(Unknown)},
	}

	for i, testCase := range testCases {
		actual, err := NewMediaType(testCase.typeString)
		if testCase.shouldFail {
			assert.ErrorIs(t, err, ErrInvalidMedia, "testCase: %d %v", i, testCase)
		} else {
			assert.NoError(t, err, "testCase: %d %v", i, testCase)
		}
		assert.Equal(t, testCase.expectedType, actual, "testCase: %d %v", i, testCase)
	}
}

func TestMediaTypeString(t *testing.T) {
	testCases := []struct {
		mediaType      MediaType
		expectedString string
	}{
		{MediaType(Unknown), unknownStr},
		{MediaTypeAudio, "audio"},
		{MediaTypeVideo, "video"},
		{MediaTypeText, "text"},
		{MediaTypeApplication, "application"},
	}

	for i, testCase := range testCases {
		assert.Equal(t, testCase.expectedString, testCase.mediaType.String(), "testCase: %d %v", i, testCase)
	}
}
