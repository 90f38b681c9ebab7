package rng_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lost-woods/mechanica/src/rng"
)

var uuidV4Re = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNewUUID_Version4(t *testing.T) {
	id, err := rng.NewUUID(&counterSource{})
	require.NoError(t, err)
	require.Regexp(t, uuidV4Re, id)

	other, err := rng.NewUUID(rng.NewSeededSource(1))
	require.NoError(t, err)
	require.Regexp(t, uuidV4Re, other)
	require.NotEqual(t, id, other)
}

func TestNewUUID_SourceError(t *testing.T) {
	_, err := rng.NewUUID(failingSource{err: errExhausted})
	require.ErrorIs(t, err, errExhausted)
}
