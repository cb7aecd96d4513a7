package web

import (
	"net/http"
	"strings"

	log "github.com/go-pkgz/lgr"
	"golang.org/x/crypto/bcrypt"
)

const authUser = "jobtrack"

// authMiddleware requires basic auth for everything except static resources
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") {
			next.ServeHTTP(w, r)
			return
		}

		username, password, ok := r.BasicAuth()
		if ok && username == authUser && s.checkPassword(password) {
			next.ServeHTTP(w, r)
			return
		}
		if ok {
			log.Printf("[WARN] failed login for %q from %s", username, r.RemoteAddr)
		}

		w.Header().Set("WWW-Authenticate", `Basic realm="Jobtrack", charset="UTF-8"`)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	})
}

// checkPassword compares password with the configured bcrypt hash
func (s *Server) checkPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(s.authHash), []byte(password)) == nil
}
