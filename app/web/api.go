package web

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobtrack/app/tracker"
)

// APIStatusResponse is the JSON response for /api/v1/status
type APIStatusResponse struct {
	Tab       string    `json:"tab"`
	Summary   string    `json:"summary"`
	Counts    APICounts `json:"counts"`
	Jobs      []APIJob  `json:"jobs"`
	Timestamp time.Time `json:"timestamp"`
}

// APIJobsResponse is the JSON response for /api/v1/jobs
type APIJobsResponse struct {
	Jobs []APIJob `json:"jobs"`
}

// APICounts represents job counts in JSON API response
type APICounts struct {
	Total     int `json:"total"`
	Interview int `json:"interview"`
	Rejected  int `json:"rejected"`
}

// APIJob represents a job in JSON API response
type APIJob struct {
	ID          int    `json:"id"`
	CompanyName string `json:"company_name"`
	Position    string `json:"position"`
	Location    string `json:"location,omitempty"`
	Type        string `json:"type,omitempty"`
	Salary      string `json:"salary,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

// toAPIJob converts tracker.Job to APIJob
func toAPIJob(job tracker.Job) APIJob {
	return APIJob{
		ID:          job.ID,
		CompanyName: job.CompanyName,
		Position:    job.Position,
		Location:    job.Location,
		Type:        job.Type,
		Salary:      job.Salary,
		Description: job.Description,
		Status:      job.Status.String(),
	}
}

func toAPIJobs(jobs []tracker.Job) []APIJob {
	res := make([]APIJob, 0, len(jobs))
	for _, j := range jobs {
		res = append(res, toAPIJob(j))
	}
	return res
}

// handleAPIStatus returns the active tab, counts and jobs visible in the tab
func (s *Server) handleAPIStatus(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	resp := APIStatusResponse{
		Tab:     snap.Tab.String(),
		Summary: summary(snap.Tab, snap.Counts),
		Counts: APICounts{
			Total:     snap.Counts.Total,
			Interview: snap.Counts.Interview,
			Rejected:  snap.Counts.Rejected,
		},
		Jobs:      toAPIJobs(snap.Jobs),
		Timestamp: time.Now(),
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleAPIJobs returns all jobs ignoring the active tab
func (s *Server) handleAPIJobs(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, APIJobsResponse{Jobs: toAPIJobs(s.store.Jobs())})
}

// writeJSON writes a JSON response with the given status code
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[WARN] failed to encode JSON response: %v", err)
	}
}
