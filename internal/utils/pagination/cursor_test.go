package pagination_test

import (
	"testing"

	"github.com/gashapp/gash-backend/internal/utils/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	in := pagination.Cursor{ActorID: "elena", CreatedUnix: 1756000000000}

	token, err := pagination.Encode(in)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	out, err := pagination.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCursorSeqRoundTrip(t *testing.T) {
	token, err := pagination.Encode(pagination.Cursor{Seq: 42})
	require.NoError(t, err)

	out, err := pagination.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), out.Seq)
	assert.Empty(t, out.ActorID)
}

func TestDecodeEmptyToken(t *testing.T) {
	c, err := pagination.Decode("")
	require.NoError(t, err)
	assert.Equal(t, pagination.Cursor{}, c)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := pagination.Decode("%%%not-a-token%%%")
	assert.Error(t, err)

	// valid base64, invalid JSON
	_, err = pagination.Decode("bm90LWpzb24=")
	assert.Error(t, err)
}
