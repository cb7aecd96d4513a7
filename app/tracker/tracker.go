// Package tracker implements the job store: an ordered list of job applications
// with per-job status tags and the currently selected tab filter.
// All operations are total, unknown ids are ignored rather than reported.
package tracker

import (
	"fmt"
	"sync"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobtrack/app/tracker/enums"
)

// Job represents a single job application
type Job struct {
	ID          int
	CompanyName string
	Position    string
	Location    string
	Type        string
	Salary      string
	Description string
	Status      enums.Status
}

// Counts holds the number of jobs in total and per tagged status
type Counts struct {
	Total     int
	Interview int
	Rejected  int
}

// Snapshot is a consistent view of the store taken under a single lock
type Snapshot struct {
	Tab    enums.Tab
	Jobs   []Job // filtered by Tab
	Counts Counts
}

// Store keeps jobs in display order and the active tab, thread safe
type Store struct {
	mu   sync.RWMutex
	jobs []Job
	tab  enums.Tab
}

// New makes a store seeded with jobs. Ids must be unique, the seed is copied.
func New(jobs []Job) (*Store, error) {
	seen := make(map[int]bool, len(jobs))
	res := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if seen[j.ID] {
			return nil, fmt.Errorf("duplicate job id %d", j.ID)
		}
		seen[j.ID] = true
		res = append(res, j)
	}
	return &Store{jobs: res, tab: enums.TabAll}, nil
}

// SetStatus applies toggle semantics: setting the status a job already has resets it to untagged,
// any other status overwrites the current one. Returns false if id not found.
func (s *Store) SetStatus(id int, status enums.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		log.Printf("[DEBUG] set status %s, job %d not found", status, id)
		return false
	}

	if s.jobs[idx].Status == status {
		s.jobs[idx].Status = enums.StatusUntagged
	} else {
		s.jobs[idx].Status = status
	}
	log.Printf("[DEBUG] job %d status %s", id, s.jobs[idx].Status)
	return true
}

// ToggleInterview flips the interview tag of the job
func (s *Store) ToggleInterview(id int) bool {
	return s.SetStatus(id, enums.StatusInterview)
}

// ToggleRejected flips the rejected tag of the job
func (s *Store) ToggleRejected(id int) bool {
	return s.SetStatus(id, enums.StatusRejected)
}

// Delete removes the job permanently. Returns false if id not found.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		log.Printf("[DEBUG] delete, job %d not found", id)
		return false
	}
	s.jobs = append(s.jobs[:idx], s.jobs[idx+1:]...)
	log.Printf("[DEBUG] job %d deleted, %d left", id, len(s.jobs))
	return true
}

// SetTab sets the active tab
func (s *Store) SetTab(tab enums.Tab) {
	s.mu.Lock()
	s.tab = tab
	s.mu.Unlock()
}

// SelectTab sets the active tab by name. Unknown names are accepted and select nothing.
func (s *Store) SelectTab(name string) {
	tab, err := enums.ParseTab(name)
	if err != nil {
		log.Printf("[WARN] unknown tab %q, nothing will match", name)
		tab = enums.Tab{}
	}
	s.SetTab(tab)
}

// Tab returns the active tab
func (s *Store) Tab() enums.Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tab
}

// Jobs returns a copy of all jobs regardless of the active tab
func (s *Store) Jobs() []Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]Job, len(s.jobs))
	copy(res, s.jobs)
	return res
}

// Filtered returns jobs matching the active tab, in display order
func (s *Store) Filtered() []Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered()
}

// Counts returns total, interview and rejected counts. Independent of the active tab.
func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts()
}

// Snapshot returns tab, filtered jobs and counts in one read
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Tab: s.tab, Jobs: s.filtered(), Counts: s.counts()}
}

func (s *Store) filtered() []Job {
	res := make([]Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if matches(s.tab, j.Status) {
			res = append(res, j)
		}
	}
	return res
}

func (s *Store) counts() Counts {
	res := Counts{Total: len(s.jobs)}
	for _, j := range s.jobs {
		switch j.Status {
		case enums.StatusInterview:
			res.Interview++
		case enums.StatusRejected:
			res.Rejected++
		}
	}
	return res
}

// index returns position of job with given id or -1. Caller holds the lock.
func (s *Store) index(id int) int {
	for i, j := range s.jobs {
		if j.ID == id {
			return i
		}
	}
	return -1
}

// matches reports if a job with status belongs to the tab
func matches(tab enums.Tab, status enums.Status) bool {
	switch tab {
	case enums.TabAll:
		return true
	case enums.TabInterview:
		return status == enums.StatusInterview
	case enums.TabRejected:
		return status == enums.StatusRejected
	default:
		return false
	}
}
