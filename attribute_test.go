package sdpscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeIterator(t *testing.T) {
	region := "a=recvonly\n" +
		"a=rtpmap:96 opus/48000/2\r\n" +
		"a=msid:stream track\n" +
		"a=x\n"

	it := newAttributeIterator(region)

	var got []Attribute
	for it.Next() {
		got = append(got, it.Attribute())
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []Attribute{
		{Key: "recvonly"},
		{Key: "rtpmap", Value: "96 opus/48000/2"},
		{Key: "msid", Value: "stream track"},
		{Key: "x"},
	}, got)
}

func TestAttributeIteratorEmptyRegion(t *testing.T) {
	it := newAttributeIterator("")
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestAttributeIteratorRestartable(t *testing.T) {
	region := "a=mid:0\na=sendrecv\n"

	drain := func() []Attribute {
		it := newAttributeIterator(region)
		var attrs []Attribute
		for it.Next() {
			attrs = append(attrs, it.Attribute())
		}
		assert.NoError(t, it.Err())
		return attrs
	}

	assert.Equal(t, drain(), drain())
}

func TestAttributeIteratorShortLine(t *testing.T) {
	it := newAttributeIterator("a=mid:0\nb\n")

	require.True(t, it.Next())
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), ErrInvalidAttribute)
	assert.False(t, it.Next())
}

// Only the two-byte prefix is skipped; no further prefix validation is
// performed, and a colon in the first position yields an empty key.
func TestAttributeIteratorLoosePrefix(t *testing.T) {
	it := newAttributeIterator("a=:orphan\n")

	require.True(t, it.Next())
	assert.Equal(t, Attribute{Key: "", Value: "orphan"}, it.Attribute())
}
