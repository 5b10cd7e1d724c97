package web

import (
	"bytes"
	"html/template"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/domain"
)

type templates struct {
	page *template.Template
	game *template.Template
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"iter": func(n int) []int {
			a := make([]int, n)
			for i := range a {
				a[i] = i
			}
			return a
		},
		"add": func(a, b int) int { return a + b },
		"mul": func(a, b int) int { return a * b },
		"cellSymbol": func(c domain.Cell) string {
			return c.String()
		},
		"winCell": func(s app.Snapshot, idx int) bool {
			if !s.HasWinLine {
				return false
			}
			for _, i := range s.WinLine {
				if i == idx {
					return true
				}
			}
			return false
		},
		"orderLabel": func(o domain.Order) string {
			if o == domain.Ascending {
				return "Sort descending"
			}
			return "Sort ascending"
		},
	}
}

func loadTemplates() *templates {
	// Inline templates keep the binary self-contained; the page embeds the
	// same "game" fragment that the htmx endpoints re-render on each action.
	page := template.Must(template.New("page").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>Tic-Tac-Toe</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head><body>
<h1>Tic-Tac-Toe</h1>
{{template "game" .}}
</body></html>`))
	template.Must(page.New("game").Parse(gameTemplate))

	// Standalone fragment for htmx swap responses.
	game := template.Must(template.New("game").Funcs(funcs()).Parse(gameTemplate))

	return &templates{page: page, game: game}
}

func renderTemplate(t *template.Template, data any) []byte {
	var buf bytes.Buffer
	_ = t.Execute(&buf, data)
	return buf.Bytes()
}

const gameTemplate = `
<div id="game" data-game-id="{{.ID}}">
  <p class="status">{{.Status}}</p>
  <div class="board">
    {{range $r := iter 3}}
    <div class="row">
      {{range $c := iter 3}}
        {{$idx := add (mul $r 3) $c}}
        <form hx-post="/play" hx-target="#game" hx-swap="outerHTML" method="post" action="/play">
          <input type="hidden" name="cell" value="{{$idx}}">
          <button type="submit" class="cell{{if winCell $ $idx}} win{{end}}">{{cellSymbol (index $.Board $idx)}}</button>
        </form>
      {{end}}
    </div>
    {{end}}
  </div>
  <div class="controls">
    <form hx-post="/order" hx-target="#game" hx-swap="outerHTML" method="post" action="/order">
      <button type="submit">{{orderLabel .Order}}</button>
    </form>
    <form hx-post="/reset" hx-target="#game" hx-swap="outerHTML" method="post" action="/reset">
      <button type="submit">New game</button>
    </form>
  </div>
  <ol class="moves">
    {{range .Moves}}
    <li>
      {{if .Current}}<span class="here">{{.Label}}</span>{{else}}<form hx-post="/jump" hx-target="#game" hx-swap="outerHTML" method="post" action="/jump">
        <input type="hidden" name="move" value="{{.Index}}">
        <button type="submit">{{.Label}}</button>
      </form>{{end}}
    </li>
    {{end}}
  </ol>
</div>
`
