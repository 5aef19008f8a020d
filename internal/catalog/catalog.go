package catalog

import (
	"errors"
	"fmt"
)

var ErrUnknownCharacter = errors.New("unknown character")
var ErrAlreadyClaimed = errors.New("character already claimed")

// Unclaimed is the owner value of a character nobody has picked yet.
const Unclaimed = -1

// Record is one entry of the catalog source, before ids are assigned.
type Record struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Character is one catalog entry. The id is the record's position in the
// source and never changes; only Owner mutates, exactly once, when the
// character is claimed.
type Character struct {
	ID    int
	Name  string
	Image string
	Owner int // owning player id, Unclaimed until somebody picks it
}

func (c Character) Claimed() bool { return c.Owner != Unclaimed }

// Catalog is the full character table, built once at startup.
type Catalog struct {
	chars []Character
}

// Load builds the catalog from source records, assigning ids in source order.
func Load(records []Record) (*Catalog, error) {
	if len(records) == 0 {
		return nil, errors.New("catalog: source has no characters")
	}
	c := &Catalog{chars: make([]Character, len(records))}
	for i, r := range records {
		if r.Name == "" {
			return nil, fmt.Errorf("catalog: record %d has no name", i)
		}
		c.chars[i] = Character{ID: i, Name: r.Name, Image: r.Image, Owner: Unclaimed}
	}
	return c, nil
}

func (c *Catalog) Len() int { return len(c.chars) }

func (c *Catalog) Get(id int) (Character, bool) {
	if id < 0 || id >= len(c.chars) {
		return Character{}, false
	}
	return c.chars[id], true
}

// Claim hands the character to playerID. Once claimed a character stays
// claimed; there is no operation that returns one to the pool.
func (c *Catalog) Claim(id, playerID int) error {
	if id < 0 || id >= len(c.chars) {
		return ErrUnknownCharacter
	}
	if c.chars[id].Claimed() {
		return ErrAlreadyClaimed
	}
	c.chars[id].Owner = playerID
	return nil
}

// Snapshot copies the table so renders never observe a half-applied event.
func (c *Catalog) Snapshot() []Character {
	out := make([]Character, len(c.chars))
	copy(out, c.chars)
	return out
}
