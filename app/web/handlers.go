package web

import (
	"net/http"
	"strconv"

	log "github.com/go-pkgz/lgr"
)

// handleDashboard renders the whole page
func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	s.render(w, "base.html", "base", s.boardData())
}

// handleBoard returns the board partial
func (s *Server) handleBoard(w http.ResponseWriter, _ *http.Request) {
	s.render(w, "partials/board.html", "board", s.boardData())
}

// handleTabSelect switches the active tab
func (s *Server) handleTabSelect(w http.ResponseWriter, r *http.Request) {
	s.store.SelectTab(r.PathValue("name"))
	s.respond(w, r)
}

// handleToggleInterview flips the interview tag of a job
func (s *Server) handleToggleInterview(w http.ResponseWriter, r *http.Request) {
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}
	if !s.store.ToggleInterview(id) {
		log.Printf("[DEBUG] toggle interview ignored, job %d not found", id)
	}
	s.respond(w, r)
}

// handleToggleRejected flips the rejected tag of a job
func (s *Server) handleToggleRejected(w http.ResponseWriter, r *http.Request) {
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}
	if !s.store.ToggleRejected(id) {
		log.Printf("[DEBUG] toggle rejected ignored, job %d not found", id)
	}
	s.respond(w, r)
}

// handleDeleteJob removes a job, serves both POST .../delete and DELETE
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}
	if s.store.Delete(id) {
		log.Printf("[INFO] job %d deleted", id)
	}
	s.respond(w, r)
}

// respond finishes a state change. Requests from htmx get the re-rendered board,
// plain form posts are redirected back to the page.
func (s *Server) respond(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, s.url("/"), http.StatusSeeOther)
		return
	}
	s.render(w, "partials/board.html", "board", s.boardData())
}

// jobID extracts numeric job id from the path, writes 400 if it is not a number
func (s *Server) jobID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := r.PathValue("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		log.Printf("[WARN] invalid job id %q", idStr)
		http.Error(w, "Invalid job ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
