package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/KK-9684/vue-sockets/internal/catalog"
	"github.com/KK-9684/vue-sockets/internal/draft"
	"github.com/KK-9684/vue-sockets/internal/logging"
	"github.com/KK-9684/vue-sockets/internal/roster"
	"github.com/KK-9684/vue-sockets/internal/views"
)

type Msg interface{ isSessionMsg() }

// Join registers a new client. The minted id is sent on Reply; updates are
// delivered on Outbox until it is closed.
type Join struct {
	Outbox chan Update
	Reply  chan uint64
}

// Leave removes a client, releasing its controlled player first.
type Leave struct{ ClientID uint64 }

// AddPlayer appends a roster entry.
type AddPlayer struct {
	ClientID uint64
	Name     string
}

// PickPlayer makes the client the player's controller.
type PickPlayer struct {
	ClientID uint64
	PlayerID int
}

// AddCharacter claims a character for the client's controlled player.
type AddCharacter struct {
	ClientID    uint64
	CharacterID int
}

type GetState struct {
	Reply chan View
}

type Shutdown struct{}

// rendered is the completion of an off-loop render, posted back to the inbox
// so delivery happens on the loop like every other state access.
type rendered struct {
	kind string
	html string
}

func (Join) isSessionMsg()         {}
func (Leave) isSessionMsg()        {}
func (AddPlayer) isSessionMsg()    {}
func (PickPlayer) isSessionMsg()   {}
func (AddCharacter) isSessionMsg() {}
func (GetState) isSessionMsg()     {}
func (Shutdown) isSessionMsg()     {}
func (rendered) isSessionMsg()     {}

const (
	RebuildPlayers    = "rebuild-players"
	RebuildCharacters = "rebuild-characters"
)

// Update is one rendered fragment pushed to every connected client.
type Update struct {
	Kind string // RebuildPlayers | RebuildCharacters
	HTML string
}

// View reflects session state without data races; used by the index page and
// by tests.
type View struct {
	NumClients int
	Picks      int
	Players    []roster.Player
	Characters []catalog.Character
}

// noPlayer is a client's controlled-player value before it picks one.
const noPlayer = -1

type client struct {
	id     uint64
	color  logging.Color
	outbox chan Update
	player int // roster id, noPlayer until pick-player
}

func (c *client) label() string { return c.color.Label(c.id) }

// Session is the draft actor. All mutation of clients, roster, catalog, and
// the pick counter happens on its loop, one message at a time.
type Session struct {
	inbox   chan Msg
	clients map[uint64]*client
	nextID  uint64
	cat     *catalog.Catalog
	ros     *roster.Roster
	state   draft.State
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

// Render hooks, swappable in tests.
var renderPlayers = views.Players
var renderCharacters = views.Characters

func New(parent context.Context, cat *catalog.Catalog, log *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(parent)
	s := &Session{
		inbox:   make(chan Msg, 64),
		clients: make(map[uint64]*client),
		cat:     cat,
		ros:     roster.New(),
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}
	go s.loop()
	return s
}

func (s *Session) Inbox() chan<- Msg { return s.inbox }

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Join:
				// Ids are minted from a counter, never reused, and never
				// derived from storage position; 1-based so 0 stays the
				// roster's uncontrolled sentinel.
				s.nextID++
				c := &client{id: s.nextID, color: logging.RandomColor(), outbox: msg.Outbox, player: noPlayer}
				s.clients[c.id] = c
				s.log.Info("client connected", zap.String("client", c.label()))
				msg.Reply <- c.id

			case Leave:
				c := s.clients[msg.ClientID]
				if c == nil {
					break
				}
				if c.player != noPlayer {
					s.ros.ReleaseClient(c.player)
				}
				delete(s.clients, msg.ClientID)
				s.log.Info("client disconnected", zap.String("client", c.label()))

			case AddPlayer:
				c := s.clients[msg.ClientID]
				if c == nil {
					break
				}
				p := s.ros.Add(msg.Name)
				s.log.Info("player added",
					zap.String("client", c.label()),
					zap.String("player", p.Name),
					zap.Int("player_id", p.ID))
				s.publishPlayers(c.id)

			case PickPlayer:
				s.pickPlayer(msg)

			case AddCharacter:
				s.addCharacter(msg)

			case GetState:
				msg.Reply <- View{
					NumClients: len(s.clients),
					Picks:      s.state.Picks,
					Players:    s.ros.Snapshot(),
					Characters: s.cat.Snapshot(),
				}

			case rendered:
				s.broadcast(Update{Kind: msg.kind, HTML: msg.html})

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

func (s *Session) pickPlayer(msg PickPlayer) {
	c := s.clients[msg.ClientID]
	if c == nil {
		return
	}
	p, ok := s.ros.Get(msg.PlayerID)
	if !ok {
		s.log.Warn("pick of unknown player",
			zap.String("client", c.label()),
			zap.Int("player_id", msg.PlayerID))
		return
	}

	// Release the client's previous player so it opens up again.
	if c.player != noPlayer {
		if prev, ok := s.ros.Get(c.player); ok {
			s.log.Info("releasing player",
				zap.String("client", c.label()),
				zap.String("player", prev.Name))
		}
		s.ros.ReleaseClient(c.player)
	}

	// If another client was driving this player, detach it; a player has at
	// most one controller. Both sides of the link change inside this one
	// event, so no observer can see them disagree.
	if p.Controlled() {
		if prev := s.clients[p.Client]; prev != nil {
			prev.player = noPlayer
		}
	}
	_ = s.ros.AssignClient(p.ID, c.id)
	c.player = p.ID
	s.log.Info("client took control of player",
		zap.String("client", c.label()),
		zap.String("player", p.Name))
	s.publishPlayers(c.id)
}

func (s *Session) addCharacter(msg AddCharacter) {
	c := s.clients[msg.ClientID]
	if c == nil {
		return
	}
	if c.player == noPlayer {
		s.log.Warn("claim without a player selected",
			zap.String("client", c.label()),
			zap.Int("character_id", msg.CharacterID))
		return
	}
	next, err := draft.Claim(s.state, s.cat, s.ros, c.player, msg.CharacterID)
	if err != nil {
		s.log.Warn("claim rejected",
			zap.String("client", c.label()),
			zap.Int("character_id", msg.CharacterID),
			zap.Error(err))
		return
	}
	s.state = next

	ch, _ := s.cat.Get(msg.CharacterID)
	p, _ := s.ros.Get(c.player)
	s.log.Info("character claimed",
		zap.String("client", c.label()),
		zap.String("character", ch.Name),
		zap.String("player", p.Name),
		zap.Int("pick", s.state.Picks))
	s.publishPlayers(c.id)
	s.publishCharacters()
}

// publishPlayers snapshots the roster now and renders off the loop; the
// fragment reflects this moment even if later events land before the render
// finishes. Failed renders are logged and dropped.
func (s *Session) publishPlayers(clientID uint64) {
	players := s.ros.Snapshot()
	go func() {
		html, err := renderPlayers(players, clientID)
		if err != nil {
			s.log.Error("players render failed", zap.Error(err))
			return
		}
		s.post(rendered{kind: RebuildPlayers, html: html})
	}()
}

func (s *Session) publishCharacters() {
	chars := s.cat.Snapshot()
	go func() {
		html, err := renderCharacters(chars)
		if err != nil {
			s.log.Error("characters render failed", zap.Error(err))
			return
		}
		s.post(rendered{kind: RebuildCharacters, html: html})
	}()
}

func (s *Session) post(m rendered) {
	select {
	case s.inbox <- m:
	case <-s.ctx.Done():
	}
}

func (s *Session) broadcast(u Update) {
	for id, c := range s.clients {
		select {
		case c.outbox <- u:
			// ok
		default:
			// Client is slow/full - drop them.
			close(c.outbox)
			if c.player != noPlayer {
				s.ros.ReleaseClient(c.player)
			}
			delete(s.clients, id)
			s.log.Warn("dropped slow client", zap.String("client", c.label()))
		}
	}
}

func (s *Session) shutdown() {
	for id, c := range s.clients {
		close(c.outbox) // Tell client no more updates
		delete(s.clients, id)
	}
	s.cancel()
}
