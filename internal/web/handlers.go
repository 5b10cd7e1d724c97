package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
)

type handlers struct {
	svc *app.Service
	tpl *templates
}

func (h *handlers) writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.Current()
	h.writeHTML(w, renderTemplate(h.tpl.page, snap))
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write([]byte(`{"ok":true}`))
}

// formInt reads a single integer form field; ok is false on missing or
// malformed input.
func formInt(r *http.Request, key string) (int, bool) {
	_ = r.ParseForm()
	v, err := strconv.Atoi(r.Form.Get(key))
	if err != nil {
		return 0, false
	}
	return v, true
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	cell, ok := formInt(r, "cell")
	if !ok {
		http.Error(w, "bad cell", http.StatusBadRequest)
		return
	}
	snap, applied, err := h.svc.Play(cell)
	if err != nil {
		if errors.Is(err, app.ErrBadCell) {
			http.Error(w, "bad cell", http.StatusBadRequest)
			return
		}
		http.Error(w, "play failed", http.StatusInternalServerError)
		return
	}
	if !applied {
		// Occupied cell or decided board: render the unchanged state.
		log.Debug().Str("game_id", snap.ID).Int("cell", cell).Msg("move rejected")
	}
	h.writeHTML(w, renderTemplate(h.tpl.game, snap))
}

func (h *handlers) jump(w http.ResponseWriter, r *http.Request) {
	move, ok := formInt(r, "move")
	if !ok {
		http.Error(w, "bad move", http.StatusBadRequest)
		return
	}
	snap, err := h.svc.JumpTo(move)
	if err != nil {
		if errors.Is(err, app.ErrNoSuchMove) {
			http.Error(w, "no such move", http.StatusBadRequest)
			return
		}
		http.Error(w, "jump failed", http.StatusInternalServerError)
		return
	}
	log.Debug().Str("game_id", snap.ID).Int("move", move).Msg("time travel")
	h.writeHTML(w, renderTemplate(h.tpl.game, snap))
}

func (h *handlers) order(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.ToggleOrder()
	h.writeHTML(w, renderTemplate(h.tpl.game, snap))
}

func (h *handlers) reset(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.Reset()
	log.Info().Str("game_id", snap.ID).Msg("new game")
	h.writeHTML(w, renderTemplate(h.tpl.game, snap))
}
