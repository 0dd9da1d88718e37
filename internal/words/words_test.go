package words

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
)

func TestDefaultBank(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	for _, d := range game.Difficulties {
		assert.NotEmpty(t, b.Words(d), d)
	}
	assert.Contains(t, b.Words(game.Easy), "CAT")
	assert.Contains(t, b.Words(game.Medium), "HANGMAN")
	assert.Contains(t, b.Words(game.Hard), "RECURSION")

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, b, again)
}

func TestNewValidates(t *testing.T) {
	full := map[game.Difficulty][]string{
		game.Easy:   {"CAT"},
		game.Medium: {"PYTHON"},
		game.Hard:   {"DATABASE"},
	}
	_, err := New(full)
	require.NoError(t, err)

	missing := map[game.Difficulty][]string{game.Easy: {"CAT"}, game.Medium: {"PYTHON"}}
	_, err = New(missing)
	assert.ErrorIs(t, err, ErrEmptyTier)

	bad := map[game.Difficulty][]string{
		game.Easy:   {"CAT"},
		game.Medium: {"PY7HON"},
		game.Hard:   {"DATABASE"},
	}
	_, err = New(bad)
	assert.ErrorIs(t, err, ErrInvalidWord)

	lower := map[game.Difficulty][]string{
		game.Easy:   {"cat"},
		game.Medium: {"PYTHON"},
		game.Hard:   {"DATABASE"},
	}
	_, err = New(lower)
	assert.ErrorIs(t, err, ErrInvalidWord)
}

func TestPickCoversTier(t *testing.T) {
	b, err := New(map[game.Difficulty][]string{
		game.Easy:   {"CAT", "DOG", "SUN"},
		game.Medium: {"PYTHON"},
		game.Hard:   {"DATABASE"},
	})
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(3, 4))
	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		seen[b.Pick(game.Easy, rng)]++
	}
	assert.Len(t, seen, 3)
	for w, n := range seen {
		assert.Greater(t, n, 50, w)
	}
	assert.Equal(t, "PYTHON", b.Pick(game.Medium, rng))
}

func TestWordsReturnsCopy(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)
	l := b.Words(game.Easy)
	l[0] = "ZZZ"
	assert.NotEqual(t, "ZZZ", b.Words(game.Easy)[0])
}
