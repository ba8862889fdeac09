package web

import (
	"bytes"
	"html/template"

	"github.com/jaminalder/time-travel-tic-tac-toe/internal/app"
	"github.com/jaminalder/time-travel-tic-tac-toe/internal/domain"
)

type templates struct {
	game  *template.Template
	frag  *template.Template
	index *template.Template
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>Tic-Tac-Toe</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head><body>{{template "content" .}}</body></html>`))
	// Define the fragment within the same set so the game page can include it
	template.Must(base.New("game").Parse(gameTemplate))
	index := template.Must(base.Clone())
	template.Must(index.New("content").Parse(
		`<h1>Tic-Tac-Toe</h1><form action="/game" method="post"><button>New game</button></form>`))
	game := template.Must(base.Clone())
	template.Must(game.New("content").Parse(`<div class="game">{{template "game" .}}</div>`))
	// Standalone fragment used for htmx swaps
	frag := template.Must(template.New("game_only").Parse(gameTemplate))
	return &templates{game: game, frag: frag, index: index}
}

func renderTemplate(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const gameTemplate = `
<div id="game">
  <div class="status">{{.Status}}</div>
  <div class="game-board">
  {{range $row := .Rows}}
    <div class="board-row">
    {{range $row}}
      <form hx-post="/game/{{$.ID}}/play" hx-target="#game" hx-swap="outerHTML" method="post">
        <input type="hidden" name="cell" value="{{.Index}}">
        <button class="square" type="submit"{{if .Disabled}} disabled{{end}}>{{.Mark}}</button>
      </form>
    {{end}}
    </div>
  {{end}}
  </div>
  <ol class="game-info">
  {{range .Moves}}
    <li>
      <form hx-post="/game/{{$.ID}}/jump" hx-target="#game" hx-swap="outerHTML" method="post">
        <input type="hidden" name="step" value="{{.Step}}">
        <button type="submit"{{if .Current}} aria-current="step"{{end}}>{{.Label}}</button>
      </form>
    </li>
  {{end}}
  </ol>
  <form hx-post="/game/{{.ID}}/restart" hx-target="#game" hx-swap="outerHTML" method="post">
    <button type="submit">Restart</button>
  </form>
</div>
`

type cellView struct {
	Index    int
	Mark     string
	Disabled bool
}

type moveView struct {
	Step    int
	Label   string
	Current bool
}

type gameView struct {
	ID     string
	Status string
	Rows   [3][3]cellView
	Moves  []moveView
}

func newGameView(gs *app.GameState) gameView {
	g := &gs.Game
	v := gameView{ID: gs.ID, Status: g.Status()}
	over := g.Winner() != domain.Empty
	for i, c := range g.Board() {
		v.Rows[i/3][i%3] = cellView{Index: i, Mark: c.String(), Disabled: over || c != domain.Empty}
	}
	for _, m := range g.Moves() {
		v.Moves = append(v.Moves, moveView{Step: m.Step, Label: m.Label, Current: m.Step == g.Step()})
	}
	return v
}
