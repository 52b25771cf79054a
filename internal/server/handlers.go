package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/roach88/athena/internal/engine"
	"github.com/roach88/athena/internal/puzzle"
	"github.com/roach88/athena/internal/render"
	"github.com/roach88/athena/internal/store"
)

// defaultHistoryLimit bounds /api/history when no limit is given.
const defaultHistoryLimit = 20

// ---- Systems ----

type systemInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Base int    `json:"base"`
}

type systemsResp struct {
	Systems []systemInfo `json:"systems"`
	Error   string       `json:"error,omitempty"`
}

func (s *Server) handleSystems(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	systems := s.reg.Systems()
	infos := make([]systemInfo, 0, len(systems))
	for _, sys := range systems {
		infos = append(infos, systemInfo{ID: sys.ID, Name: sys.Name, Base: sys.Base})
	}
	_ = json.NewEncoder(w).Encode(systemsResp{Systems: infos})
}

// ---- Convert ----

type convertReq struct {
	Number   int    `json:"number"`
	SystemID string `json:"system_id"`
}

type convertResp struct {
	Result   string   `json:"result"`
	Digits   []int    `json:"digits,omitempty"`
	Trace    []string `json:"trace,omitempty"`
	Renderer string   `json:"renderer,omitempty"`
	NoZero   bool     `json:"no_zero,omitempty"`
	Code     string   `json:"code,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req convertReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(convertResp{Error: "invalid JSON: " + err.Error()})
		return
	}

	// Conversion is pure, so responses are cacheable by (system, n).
	key := fmt.Sprintf("%s\x00%d", req.SystemID, req.Number)
	if resp, ok := s.cache.Get(key); ok {
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	res, err := s.eng.Convert(req.Number, req.SystemID)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case engine.IsNotFound(err):
			status = http.StatusNotFound
		case engine.IsNegativeInput(err):
			status = http.StatusBadRequest
		}
		resp := convertResp{Error: err.Error()}
		var engErr *engine.Error
		if errors.As(err, &engErr) {
			resp.Code = string(engErr.Code)
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	sys, _ := s.reg.Lookup(req.SystemID)
	resp := convertResp{
		Result:   render.Text(res, sys),
		Digits:   res.Digits,
		Trace:    res.Trace,
		Renderer: sys.DigitRenderer,
		NoZero:   res.NoZero,
	}
	s.cache.Add(key, resp)
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Puzzle ----

type puzzleResp struct {
	Puzzle *puzzle.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (s *Server) handlePuzzle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	seed, err := puzzle.NewSeed()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(puzzleResp{Error: err.Error()})
		return
	}

	// Generators are single-use here: one per request, fresh seed each.
	p, err := puzzle.NewGenerator(s.reg, seed).Generate(r.PathValue("system_id"))
	if err != nil {
		status := http.StatusInternalServerError
		if engine.IsNotFound(err) {
			status = http.StatusNotFound
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(puzzleResp{Error: err.Error()})
		return
	}

	if _, err := s.store.WritePuzzle(r.Context(), p, time.Now()); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(puzzleResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(puzzleResp{Puzzle: p})
}

// ---- Attempt ----

type attemptReq struct {
	PuzzleID string `json:"puzzle_id"`
	Answer   string `json:"answer"`
}

type attemptResp struct {
	Correct       bool   `json:"correct"`
	AnswerDisplay string `json:"answer_display,omitempty"`
	Hint          string `json:"hint,omitempty"`
	Tries         int    `json:"tries,omitempty"`
	Error         string `json:"error,omitempty"`
}

func (s *Server) handleAttempt(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req attemptReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PuzzleID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(attemptResp{Error: "invalid JSON or missing puzzle_id"})
		return
	}

	p, err := s.store.ReadPuzzle(r.Context(), req.PuzzleID)
	if errors.Is(err, sql.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(attemptResp{Error: "unknown puzzle id"})
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(attemptResp{Error: err.Error()})
		return
	}

	correct := puzzle.CheckAnswer(p, req.Answer)
	att := store.NewAttempt(p.ID, req.Answer, correct, time.Now())
	if err := s.store.WriteAttempt(r.Context(), att); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(attemptResp{Error: err.Error()})
		return
	}

	tries, err := s.store.ReadPuzzleAttempts(r.Context(), p.ID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(attemptResp{Error: err.Error()})
		return
	}

	resp := attemptResp{Correct: correct, AnswerDisplay: p.AnswerDisplay, Tries: len(tries)}
	if !correct {
		resp.Hint = p.Hint
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- History ----

type historyResp struct {
	Attempts []store.AttemptRecord `json:"attempts"`
	Stats    []store.SystemStats   `json:"stats"`
	Error    string                `json:"error,omitempty"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(historyResp{Error: "invalid limit"})
			return
		}
		limit = n
	}

	attempts, err := s.store.ReadRecentAttempts(r.Context(), limit)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(historyResp{Error: err.Error()})
		return
	}
	stats, err := s.store.ReadSystemStats(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(historyResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(historyResp{Attempts: attempts, Stats: stats})
}
