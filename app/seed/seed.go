// Package seed loads the initial list of job postings from YAML.
// The default dataset is embedded, a custom one can be provided as a file.
package seed

import (
	_ "embed" // embedded default dataset
	"fmt"
	"os"
	"strings"

	log "github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/umputun/jobtrack/app/tracker"
	"github.com/umputun/jobtrack/app/tracker/enums"
)

//go:embed jobs.yml
var defaultJobs []byte

// File is the top level structure of a seed file
type File struct {
	Jobs []Entry `yaml:"jobs" json:"jobs" jsonschema:"required,description=list of job postings in display order"`
}

// Entry is a single job posting in a seed file
type Entry struct {
	ID          int    `yaml:"id" json:"id" jsonschema:"required,description=unique job id"`
	Company     string `yaml:"company" json:"company" jsonschema:"required,description=company name"`
	Position    string `yaml:"position" json:"position" jsonschema:"required,description=position title"`
	Location    string `yaml:"location,omitempty" json:"location,omitempty" jsonschema:"description=job location"`
	Type        string `yaml:"type,omitempty" json:"type,omitempty" jsonschema:"description=employment type,example=Full-time"`
	Salary      string `yaml:"salary,omitempty" json:"salary,omitempty" jsonschema:"description=salary range"`
	Description string `yaml:"description,omitempty" json:"description,omitempty" jsonschema:"description=job description"`
	Status      string `yaml:"status,omitempty" json:"status,omitempty" jsonschema:"enum=all,enum=untagged,enum=interview,enum=rejected,description=initial status; all and empty mean untagged"`
}

// Default returns the embedded dataset
func Default() ([]tracker.Job, error) {
	jobs, err := Parse(defaultJobs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded seed: %w", err)
	}
	return jobs, nil
}

// Load reads jobs from a YAML file. Empty path means the embedded dataset.
func Load(path string) ([]tracker.Job, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from cli option
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	jobs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	log.Printf("[INFO] loaded %d jobs from %s", len(jobs), path)
	return jobs, nil
}

// Parse converts YAML seed data to jobs, keeping the order of entries
func Parse(data []byte) ([]tracker.Job, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	res := make([]tracker.Job, 0, len(f.Jobs))
	for i, e := range f.Jobs {
		status, err := parseStatus(e.Status)
		if err != nil {
			return nil, fmt.Errorf("job #%d (id %d): %w", i, e.ID, err)
		}
		res = append(res, tracker.Job{
			ID:          e.ID,
			CompanyName: e.Company,
			Position:    e.Position,
			Location:    e.Location,
			Type:        e.Type,
			Salary:      e.Salary,
			Description: e.Description,
			Status:      status,
		})
	}
	return res, nil
}

// parseStatus maps seed status names to enums.Status.
// "all" is accepted as the legacy spelling of untagged.
func parseStatus(s string) (enums.Status, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", "all":
		return enums.StatusUntagged, nil
	default:
		return enums.ParseStatus(v)
	}
}
