package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KK-9684/vue-sockets/internal/catalog"
	"github.com/KK-9684/vue-sockets/internal/roster"
)

func TestPlayersFragment(t *testing.T) {
	players := []roster.Player{
		{ID: 0, Name: "Red", Client: 3, Characters: []catalog.Character{{ID: 0, Name: "Mario", Owner: 0}}},
		{ID: 1, Name: "Blue"},
	}

	html, err := Players(players, 3)
	require.NoError(t, err)

	assert.Contains(t, html, `data-player-id="0"`)
	assert.Contains(t, html, "Red")
	assert.Contains(t, html, "Mario")
	assert.Contains(t, html, "player--own")
	assert.Contains(t, html, "player--controlled")
	assert.Contains(t, html, ">open<")
}

func TestPlayersFragmentWithoutFocusClient(t *testing.T) {
	players := []roster.Player{{ID: 0, Name: "Red"}}

	html, err := Players(players, 0)
	require.NoError(t, err)
	// An uncontrolled player must not match the zero client id.
	assert.NotContains(t, html, "player--own")
}

func TestPlayersFragmentEmptyRoster(t *testing.T) {
	html, err := Players(nil, 0)
	require.NoError(t, err)
	assert.Contains(t, html, "No players yet.")
}

func TestCharactersFragment(t *testing.T) {
	chars := []catalog.Character{
		{ID: 0, Name: "Mario", Image: "img/mario.png", Owner: 1},
		{ID: 1, Name: "Link", Owner: catalog.Unclaimed},
	}

	html, err := Characters(chars)
	require.NoError(t, err)

	assert.Contains(t, html, `data-character-id="0"`)
	assert.Contains(t, html, "character--claimed")
	assert.Contains(t, html, `src="/static/img/mario.png"`)
	assert.Contains(t, html, "Link")
}

func TestFragmentsEscapeNames(t *testing.T) {
	players := []roster.Player{{ID: 0, Name: "<script>alert(1)</script>"}}

	html, err := Players(players, 0)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestIndexPage(t *testing.T) {
	chars := []catalog.Character{{ID: 0, Name: "Mario", Owner: catalog.Unclaimed}}
	players := []roster.Player{{ID: 0, Name: "Red"}}

	html, err := Index(chars, players)
	require.NoError(t, err)

	assert.Contains(t, html, `id="players"`)
	assert.Contains(t, html, `id="characters"`)
	assert.Contains(t, html, "Mario")
	assert.Contains(t, html, "Red")
}
