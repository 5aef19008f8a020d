package draft

import (
	"errors"

	"github.com/KK-9684/vue-sockets/internal/catalog"
	"github.com/KK-9684/vue-sockets/internal/roster"
)

var ErrNoPlayerSelected = errors.New("no player selected")

// State is the session-wide draft state. Picks counts successful claims; it
// is bookkeeping only and nothing consults it to restrict whose turn it is.
type State struct {
	Picks int
}

// Claim moves a character from the unclaimed pool into playerID's roster and
// advances the pick counter. On any rejection the catalog, roster, and state
// are left exactly as they were.
func Claim(s State, cat *catalog.Catalog, ros *roster.Roster, playerID, characterID int) (State, error) {
	if playerID < 0 {
		return s, ErrNoPlayerSelected
	}
	if _, ok := ros.Get(playerID); !ok {
		return s, roster.ErrUnknownPlayer
	}
	if err := cat.Claim(characterID, playerID); err != nil {
		return s, err
	}
	ch, _ := cat.Get(characterID)
	if err := ros.AddCharacter(playerID, ch); err != nil {
		return s, err
	}
	s.Picks++
	return s, nil
}
