// Package statusserver exposes the self-play driver's progress over HTTP
// so an operator (or the training cluster's liveness probe) can see how a
// long-running worker is doing without tailing logs.
package statusserver

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
)

// Status is the worker's current progress, updated by the self-play
// driver as rounds and games complete.
type Status struct {
	Round          int        `json:"round"`
	TrainingRound  int        `json:"training_round"`
	GamesPlayed    int        `json:"games_played"`
	GamesThisRound int        `json:"games_this_round"`
	LastPayoff     [4]float32 `json:"last_payoff"`
	Healthy        bool       `json:"healthy"`
}

// Server tracks worker status and serves it over HTTP.
type Server struct {
	mutex  sync.Mutex
	status Status
}

// New returns a Server reporting itself healthy with no games played.
func New() *Server {
	return &Server{status: Status{Healthy: true}}
}

// RecordGame updates the tracked status after a self-play game finishes.
func (s *Server) RecordGame(round int, payoff [4]float32) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.status.GamesPlayed++
	s.status.GamesThisRound++
	s.status.TrainingRound = round
	s.status.LastPayoff = payoff
}

// StartRound resets the per-round game counter at the top of a training
// round.
func (s *Server) StartRound(round int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.status.Round = round
	s.status.GamesThisRound = 0
}

// SetHealthy flips the healthy flag, used when the evaluator connection is
// lost or restored.
func (s *Server) SetHealthy(healthy bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.status.Healthy = healthy
}

func (s *Server) snapshot() Status {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.status
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.snapshot()); err != nil {
		log.Printf("statusserver: encoding status: %v", err)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if !s.snapshot().Healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Router builds the mux.Router serving /status and /healthz.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/status", s.handleStatus).Methods("GET")
	router.HandleFunc("/healthz", s.handleHealthz).Methods("GET")
	return router
}

// ListenAndServe starts the status HTTP server on addr. It blocks until
// the server stops or errors.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("statusserver: listening on %s", addr)
	return http.ListenAndServe(addr, s.Router())
}
