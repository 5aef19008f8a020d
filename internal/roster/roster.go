package roster

import (
	"errors"

	"github.com/KK-9684/vue-sockets/internal/catalog"
)

var ErrUnknownPlayer = errors.New("unknown player")

// Uncontrolled is the controller value of a player no client is driving.
// Client ids are minted from 1, so 0 is free to act as the sentinel.
const Uncontrolled uint64 = 0

// Player is one roster entry. Players are never removed; their id is their
// insertion position and stays valid for the life of the process.
type Player struct {
	ID         int
	Name       string
	Characters []catalog.Character // claimed characters, insertion order
	Client     uint64              // controlling client, Uncontrolled if none
}

func (p Player) Controlled() bool { return p.Client != Uncontrolled }

// Roster is the list of players created during the session.
type Roster struct {
	players []*Player
}

func New() *Roster {
	return &Roster{}
}

func (r *Roster) Len() int { return len(r.players) }

// Add appends a new uncontrolled player with an empty character list.
func (r *Roster) Add(name string) *Player {
	p := &Player{ID: len(r.players), Name: name, Client: Uncontrolled}
	r.players = append(r.players, p)
	return p
}

func (r *Roster) Get(id int) (*Player, bool) {
	if id < 0 || id >= len(r.players) {
		return nil, false
	}
	return r.players[id], true
}

// AssignClient records clientID as the player's controller. The controller
// link lives here and only here; the session updates its client-side index in
// the same event, so the two can never drift apart between events.
func (r *Roster) AssignClient(playerID int, clientID uint64) error {
	p, ok := r.Get(playerID)
	if !ok {
		return ErrUnknownPlayer
	}
	p.Client = clientID
	return nil
}

// ReleaseClient returns the player to the uncontrolled state. The player's
// characters are untouched.
func (r *Roster) ReleaseClient(playerID int) {
	if p, ok := r.Get(playerID); ok {
		p.Client = Uncontrolled
	}
}

// AddCharacter appends to the player's owned sequence. Claim legality is the
// draft layer's problem; by the time this runs the catalog has already
// accepted the claim.
func (r *Roster) AddCharacter(playerID int, ch catalog.Character) error {
	p, ok := r.Get(playerID)
	if !ok {
		return ErrUnknownPlayer
	}
	p.Characters = append(p.Characters, ch)
	return nil
}

// Snapshot deep-copies the roster for rendering off the session loop.
func (r *Roster) Snapshot() []Player {
	out := make([]Player, len(r.players))
	for i, p := range r.players {
		out[i] = *p
		out[i].Characters = append([]catalog.Character(nil), p.Characters...)
	}
	return out
}
