// Package web implements the web UI for the job tracker.
// Every user action mutates the tracker store and the whole board is re-rendered from templates.
package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	"github.com/dustin/go-humanize"
	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/jobtrack/app/tracker"
	"github.com/umputun/jobtrack/app/tracker/enums"
)

//go:embed templates/*.html templates/partials/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Store defines job store operations used by the web server, implemented by tracker.Store
type Store interface {
	ToggleInterview(id int) bool
	ToggleRejected(id int) bool
	Delete(id int) bool
	SelectTab(name string)
	Jobs() []tracker.Job
	Snapshot() tracker.Snapshot
}

// Server represents the web server
type Server struct {
	store          Store
	templates      map[string]*template.Template
	baseURL        string // base URL path for reverse proxy (e.g., /jobs), empty for root
	hostname       string // hostname to display in UI
	version        string
	authHash       string                      // bcrypt hash for basic auth, empty to disable
	csrfProtection *http.CrossOriginProtection // csrf protection for POST endpoints
	limiter        *limiter.Limiter            // rate limiter for state-changing endpoints
}

// Config holds server configuration
type Config struct {
	Store     Store
	BaseURL   string  // base URL path for reverse proxy (e.g., /jobs), empty for root
	Hostname  string  // hostname to display in UI
	Version   string  // application version
	AuthHash  string  // bcrypt hash for basic auth (empty to disable)
	RateLimit float64 // max state-changing requests per second per IP, 0 for default
}

// TemplateData holds data for templates
type TemplateData struct {
	Tab         enums.Tab
	Tabs        []TabInfo
	Jobs        []tracker.Job
	Counts      tracker.Counts
	Summary     string // "3 of 8 jobs" line for the active tab
	BaseURL     string
	Hostname    string
	Version     string
	FullVersion string
	CurrentYear int
	AuthEnabled bool
}

// TabInfo describes a single tab control
type TabInfo struct {
	Name   string
	Label  string
	Count  int
	Active bool
}

// New creates a new web server
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("web server initialization failed: Store is required")
	}

	rate := cfg.RateLimit
	if rate <= 0 {
		rate = 10
	}
	lmt := tollbooth.NewLimiter(rate, nil)
	lmt.SetIPLookup(limiter.IPLookup{Name: "RemoteAddr"})
	lmt.SetMessage("Too many requests, slow down")

	s := &Server{
		store:          cfg.Store,
		baseURL:        strings.TrimSuffix(cfg.BaseURL, "/"),
		hostname:       cfg.Hostname,
		version:        cfg.Version,
		authHash:       cfg.AuthHash,
		csrfProtection: http.NewCrossOriginProtection(),
		limiter:        lmt,
	}

	templates, err := s.parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("web server initialization failed: failed to parse HTML templates: %w", err)
	}
	s.templates = templates

	return s, nil
}

// Run starts the web server and blocks until ctx canceled
func (s *Server) Run(ctx context.Context, address string) error {
	server := &http.Server{
		Addr:              address,
		Handler:           s.handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown server: %v", err)
		}
	}()

	log.Printf("[INFO] starting web server on %s", address)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

// handler returns the http.Handler with base URL wrapping applied
func (s *Server) handler() http.Handler {
	routes := s.routes()
	if s.baseURL == "" {
		return routes
	}

	mux := http.NewServeMux()
	// base URL without trailing slash redirects to the one with slash
	mux.HandleFunc(s.baseURL, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.baseURL+"/", http.StatusMovedPermanently)
	})
	mux.Handle(s.baseURL+"/", http.StripPrefix(s.baseURL, routes))
	return mux
}

// routes returns the http.Handler with all routes configured
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	// global middleware - applied to all routes
	router.Use(
		rest.RealIP,
		rest.Recoverer(log.Default()),
		rest.Throttle(1000),
		rest.AppInfo("jobtrack", "umputun", s.version),
		rest.Ping,
		rest.Trace,
		rest.SizeLimit(64*1024), // 64KB max request size
		logger.New(logger.Log(log.Default()), logger.Prefix("[DEBUG]")).Handler,
	)

	// must be set before any routes are defined
	if s.authHash != "" {
		log.Printf("[INFO] authentication enabled for web UI")
		router.Use(s.authMiddleware)
	}

	router.HandleFunc("GET /", s.handleDashboard)

	// htmx endpoints, each state change answers with the whole board
	router.Mount("/api").Route(func(api *routegroup.Bundle) {
		api.Use(rest.NoCache)
		api.Use(s.csrfProtection.Handler)

		api.HandleFunc("GET /board", s.handleBoard)

		mutate := api.With(tollbooth.HTTPMiddleware(s.limiter))
		mutate.HandleFunc("POST /tab/{name}", s.handleTabSelect)
		mutate.HandleFunc("POST /jobs/{id}/interview", s.handleToggleInterview)
		mutate.HandleFunc("POST /jobs/{id}/rejected", s.handleToggleRejected)
		mutate.HandleFunc("POST /jobs/{id}/delete", s.handleDeleteJob)
		mutate.HandleFunc("DELETE /jobs/{id}", s.handleDeleteJob)
	})

	// JSON API for CLI/programmatic access
	router.Mount("/api/v1").Route(func(api *routegroup.Bundle) {
		api.Use(rest.NoCache)
		api.HandleFunc("GET /status", s.handleAPIStatus)
		api.HandleFunc("GET /jobs", s.handleAPIJobs)
	})

	fsys, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Printf("[ERROR] failed to create static file system: %v", err)
		router.Handle("GET /static/", http.FileServer(http.FS(staticFS)))
	} else {
		router.HandleFiles("/static/", http.FS(fsys))
	}

	return router
}

// render renders a template
func (s *Server) render(w http.ResponseWriter, page, tmplName string, data any) {
	tmpl, ok := s.templates[page]
	if !ok {
		log.Printf("[WARN] template %s not found", page)
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, tmplName, data); err != nil {
		log.Printf("[WARN] failed to execute template: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[WARN] failed to write response: %v", err)
	}
}

// parseTemplates parses all templates
func (s *Server) parseTemplates() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template)

	funcMap := template.FuncMap{
		"num":         num,
		"statusLabel": statusLabel,
		"tagged":      tagged,
		"url":         s.url,
	}

	// parse base template with all partials
	base, err := template.New("base.html").Funcs(funcMap).ParseFS(templatesFS,
		"templates/base.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base template: %w", err)
	}
	templates["base.html"] = base

	// parse partials separately for htmx requests
	partials, err := template.New("board.html").Funcs(funcMap).ParseFS(templatesFS, "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse partials: %w", err)
	}
	templates["partials/board.html"] = partials

	return templates, nil
}

// boardData makes template data for the current store state
func (s *Server) boardData() TemplateData {
	snap := s.store.Snapshot()
	return TemplateData{
		Tab:         snap.Tab,
		Tabs:        makeTabs(snap.Tab, snap.Counts),
		Jobs:        snap.Jobs,
		Counts:      snap.Counts,
		Summary:     summary(snap.Tab, snap.Counts),
		BaseURL:     s.baseURL,
		Hostname:    s.hostname,
		Version:     shortVersion(s.version),
		FullVersion: s.version,
		CurrentYear: time.Now().Year(),
		AuthEnabled: s.authHash != "",
	}
}

// makeTabs returns tab controls in fixed order, badges show counts regardless of the active tab
func makeTabs(active enums.Tab, counts tracker.Counts) []TabInfo {
	res := make([]TabInfo, 0, len(enums.TabValues()))
	for _, tab := range enums.TabValues() {
		ti := TabInfo{Name: tab.String(), Active: tab == active}
		switch tab {
		case enums.TabAll:
			ti.Label, ti.Count = "All", counts.Total
		case enums.TabInterview:
			ti.Label, ti.Count = "Interview", counts.Interview
		case enums.TabRejected:
			ti.Label, ti.Count = "Rejected", counts.Rejected
		}
		res = append(res, ti)
	}
	return res
}

// summary returns jobs count line for the active tab
func summary(tab enums.Tab, counts tracker.Counts) string {
	switch tab {
	case enums.TabAll:
		return fmt.Sprintf("%s jobs", num(counts.Total))
	case enums.TabInterview:
		return fmt.Sprintf("%s of %s jobs", num(counts.Interview), num(counts.Total))
	case enums.TabRejected:
		return fmt.Sprintf("%s of %s jobs", num(counts.Rejected), num(counts.Total))
	default:
		return fmt.Sprintf("0 of %s jobs", num(counts.Total))
	}
}

// template helper functions

func num(n int) string {
	return humanize.Comma(int64(n))
}

// statusLabel returns the badge text for a tagged status, empty for untagged
func statusLabel(st enums.Status) string {
	switch st {
	case enums.StatusInterview:
		return "Interview"
	case enums.StatusRejected:
		return "Rejected"
	default:
		return ""
	}
}

func tagged(st enums.Status) bool {
	return st == enums.StatusInterview || st == enums.StatusRejected
}

// url prepends the base URL to a path for reverse proxy support
func (s *Server) url(path string) string {
	return s.baseURL + path
}

// shortVersion extracts a short version string from full version
// for version like "v1.7.0-abc1234-20241225", returns "v1.7.0"
func shortVersion(fullVer string) string {
	if fullVer == "" || fullVer == "unknown" {
		return fullVer
	}
	if idx := strings.Index(fullVer, "-"); idx > 0 {
		return fullVer[:idx]
	}
	return fullVer
}
