// Package httpadapter exposes the use-case service as a JSON API.
package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"svw.info/sudoku-dlx/internal/domain"
	"svw.info/sudoku-dlx/internal/solver"
	"svw.info/sudoku-dlx/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// Routes mounts the API. Method matching and URL parameters are chi's job;
// the handlers only deal with bodies.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Post("/solve", h.handleSolve)
		r.Post("/generate", h.handleGenerate)
		r.Post("/validate", h.handleValidate)
		r.Post("/hint", h.handleHint)
		r.Post("/puzzles", h.handleSave)
		r.Get("/puzzles", h.handleList)
		r.Get("/puzzles/{id}", h.handleLoad)
	})
	return r
}

// writeJSON sets the content type and encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errResp struct {
	Error string `json:"error"`
}

// writeError maps the solver sentinels and storage misses to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, solver.ErrInvalidPuzzle):
		status = http.StatusBadRequest
	case errors.Is(err, solver.ErrNoSolution):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, os.ErrNotExist):
		status = http.StatusNotFound
	}
	writeJSON(w, status, errResp{Error: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// ---- Solve ----

type solveReq struct {
	Board [9][9]uint8 `json:"board"`
}
type solveResp struct {
	Board      [9][9]uint8 `json:"board"`
	Unique     *bool       `json:"unique,omitempty"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if !decodeBody(w, r, &req) {
		return
	}
	in := &domain.Board{Values: req.Board}
	out, st, err := h.UC.Solve(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := solveResp{Board: out.Values, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes}
	if r.URL.Query().Get("unique") == "true" {
		unique, _, err := h.UC.Unique(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.Unique = &unique
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}
type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	DurationMs int64          `json:"durationMs"`
	Nodes      int            `json:"nodes"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	diff, err := domain.ParseDifficulty(strings.ToLower(strings.TrimSpace(req.Difficulty)))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.Generate(r.Context(), seed, diff)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, generateResp{Puzzle: p, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Validate ----

type validateReq struct {
	Board [9][9]uint8 `json:"board"`
}
type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if !decodeBody(w, r, &req) {
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Board   [9][9]uint8 `json:"board"`
	MaxTier string      `json:"maxTier,omitempty"`
}
type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func parseTier(s string) domain.StrategyTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pairs":
		return domain.StrategyPairs
	case "advanced":
		return domain.StrategyAdvanced
	case "xwing":
		return domain.StrategyXWing
	default:
		return domain.StrategySingles
	}
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if !decodeBody(w, r, &req) {
		return
	}
	hint, found, err := h.UC.Hint(r.Context(), &domain.Board{Values: req.Board}, parseTier(req.MaxTier))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: found, Hint: hint})
}

// ---- Puzzles: save / load / list ----

type saveResp struct {
	ID string `json:"id"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if !decodeBody(w, r, &p) {
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: p.ID})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	p, err := h.UC.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ps, err := h.UC.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResp{Puzzles: ps})
}
