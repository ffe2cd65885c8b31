package puzzles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/validator"
)

func TestNames(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"blocked-corner", "classic", "nearly-done"}, names)
}

func TestGet(t *testing.T) {
	e, err := Get("classic")
	require.NoError(t, err)
	assert.Equal(t, "classic", e.Name)
	assert.NotEmpty(t, e.Description)
	assert.Len(t, e.Rows, 9)

	_, err = Get("no-such-puzzle")
	assert.Error(t, err)
}

func TestByName_AllEntriesParseAndValidate(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)

	v := validator.New()
	for _, name := range names {
		b, err := ByName(name)
		require.NoError(t, err, "entry %s must parse", name)
		assert.NoError(t, v.Check(context.Background(), b), "entry %s must pass validation", name)
	}
}

func TestByName_Classic(t *testing.T) {
	b, err := ByName("classic")
	require.NoError(t, err)
	assert.Equal(t, uint8(5), b.Values[0][0])
	assert.Equal(t, 51, b.EmptyCount())
}
