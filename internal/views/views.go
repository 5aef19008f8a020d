package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/KK-9684/vue-sockets/internal/catalog"
	"github.com/KK-9684/vue-sockets/internal/roster"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// RosterContext feeds the players fragment. ClientID is the client whose
// action triggered the render; every observer receives the same fragment, so
// the "own player" highlight reflects the initiator, matching how the session
// has always rendered it.
type RosterContext struct {
	Players  []roster.Player
	ClientID uint64
}

// CatalogContext feeds the characters fragment.
type CatalogContext struct {
	Characters []catalog.Character
}

type indexContext struct {
	Roster  RosterContext
	Catalog CatalogContext
}

func render(name string, ctx any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, ctx); err != nil {
		return "", fmt.Errorf("views: render %s: %w", name, err)
	}
	return buf.String(), nil
}

// Players renders the replacement fragment for the roster area.
func Players(players []roster.Player, clientID uint64) (string, error) {
	return render("players.html", RosterContext{Players: players, ClientID: clientID})
}

// Characters renders the replacement fragment for the catalog area.
func Characters(chars []catalog.Character) (string, error) {
	return render("characters.html", CatalogContext{Characters: chars})
}

// Index renders the full page served at /, embedding both fragments.
func Index(chars []catalog.Character, players []roster.Player) (string, error) {
	return render("index.html", indexContext{
		Roster:  RosterContext{Players: players},
		Catalog: CatalogContext{Characters: chars},
	})
}
