package draft

import (
	"errors"
	"testing"

	"github.com/KK-9684/vue-sockets/internal/catalog"
	"github.com/KK-9684/vue-sockets/internal/roster"
)

func newFixtures(t *testing.T) (*catalog.Catalog, *roster.Roster) {
	t.Helper()
	cat, err := catalog.Load([]catalog.Record{{Name: "Mario"}, {Name: "Link"}, {Name: "Samus"}})
	if err != nil {
		t.Fatalf("catalog load: %v", err)
	}
	ros := roster.New()
	ros.Add("Red")
	return cat, ros
}

func TestClaimSuccess(t *testing.T) {
	cat, ros := newFixtures(t)

	s, err := Claim(State{}, cat, ros, 0, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Picks != 1 {
		t.Fatalf("want 1 pick, got %d", s.Picks)
	}

	ch, _ := cat.Get(1)
	if ch.Owner != 0 {
		t.Fatalf("want owner 0, got %d", ch.Owner)
	}
	p, _ := ros.Get(0)
	if len(p.Characters) != 1 || p.Characters[0].Name != "Link" {
		t.Fatalf("want Red to own [Link], got %+v", p.Characters)
	}
	if p.Characters[0].Owner != 0 {
		t.Fatalf("owned copy should carry the owner, got %d", p.Characters[0].Owner)
	}
}

func TestClaimRejections(t *testing.T) {
	cases := []struct {
		name        string
		playerID    int
		characterID int
		wantErr     error
	}{
		{name: "no player selected", playerID: -1, characterID: 0, wantErr: ErrNoPlayerSelected},
		{name: "unknown player", playerID: 7, characterID: 0, wantErr: roster.ErrUnknownPlayer},
		{name: "unknown character", playerID: 0, characterID: 99, wantErr: catalog.ErrUnknownCharacter},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat, ros := newFixtures(t)
			s, err := Claim(State{}, cat, ros, tc.playerID, tc.characterID)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
			if s.Picks != 0 {
				t.Fatalf("rejected claim moved the pick counter: %d", s.Picks)
			}
			p, _ := ros.Get(0)
			if len(p.Characters) != 0 {
				t.Fatalf("rejected claim changed the roster: %+v", p.Characters)
			}
		})
	}
}

func TestClaimAlreadyClaimedLeavesEverythingAlone(t *testing.T) {
	cat, ros := newFixtures(t)
	ros.Add("Blue")

	s, err := Claim(State{}, cat, ros, 0, 0)
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}

	s2, err := Claim(s, cat, ros, 1, 0)
	if !errors.Is(err, catalog.ErrAlreadyClaimed) {
		t.Fatalf("want ErrAlreadyClaimed, got %v", err)
	}
	if s2.Picks != s.Picks {
		t.Fatalf("rejected claim moved the pick counter: %d -> %d", s.Picks, s2.Picks)
	}

	ch, _ := cat.Get(0)
	if ch.Owner != 0 {
		t.Fatalf("Mario changed hands: owner %d", ch.Owner)
	}
	blue, _ := ros.Get(1)
	if len(blue.Characters) != 0 {
		t.Fatalf("Blue gained a character from a rejected claim: %+v", blue.Characters)
	}
}

func TestPickCounterCountsEveryClaim(t *testing.T) {
	cat, ros := newFixtures(t)

	s := State{}
	for i := 0; i < 3; i++ {
		var err error
		s, err = Claim(s, cat, ros, 0, i)
		if err != nil {
			t.Fatalf("claim %d: %v", i, err)
		}
		if s.Picks != i+1 {
			t.Fatalf("after claim %d: want %d picks, got %d", i, i+1, s.Picks)
		}
	}
}
