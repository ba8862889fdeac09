package web

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jaminalder/time-travel-tic-tac-toe/internal/app"
)

type handlers struct {
	svc *app.Service
	tpl *templates
	log *slog.Logger
}

func (h *handlers) write(w http.ResponseWriter, t *template.Template, data any) {
	b, err := renderTemplate(t, data)
	if err != nil {
		h.log.Error("render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	h.write(w, h.tpl.index, nil)
}

func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.CreateGame()
	if err != nil {
		http.Error(w, "failed to create", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	gs, ok := h.svc.Get(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.write(w, h.tpl.game, newGameView(gs))
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.Play(chi.URLParam(r, "id"), formInt(r, "cell"))
	h.fragment(w, r, gs, err)
}

func (h *handlers) jump(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.JumpTo(chi.URLParam(r, "id"), formInt(r, "step"))
	h.fragment(w, r, gs, err)
}

func (h *handlers) restart(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.Restart(chi.URLParam(r, "id"))
	h.fragment(w, r, gs, err)
}

func (h *handlers) fragment(w http.ResponseWriter, r *http.Request, gs *app.GameState, err error) {
	switch {
	case errors.Is(err, app.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		h.log.Error("game update failed", "error", err)
		http.Error(w, "update failed", http.StatusInternalServerError)
		return
	}
	h.write(w, h.tpl.frag, newGameView(gs))
}

// formInt reads an integer form value; anything unparseable maps to -1,
// which every game operation ignores.
func formInt(r *http.Request, key string) int {
	_ = r.ParseForm()
	v, err := strconv.Atoi(r.Form.Get(key))
	if err != nil {
		return -1
	}
	return v
}
