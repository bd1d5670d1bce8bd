package web

import (
	"net/http"

	"github.com/JonMunkholm/csvview/internal/core"
	"github.com/JonMunkholm/csvview/internal/csvtext"
)

// handleAPITable returns the stored CSV parsed as {delimiter, rows, bytes}.
func (s *Server) handleAPITable(w http.ResponseWriter, r *http.Request) {
	view, err := s.serviceFor(r).Restore(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleAPIStore stores the request body as the CSV text and returns it parsed.
func (s *Server) handleAPIStore(w http.ResponseWriter, r *http.Request) {
	raw, ok := s.readBody(w, r)
	if !ok {
		return
	}

	view, err := s.serviceFor(r).Load(r.Context(), raw)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleAPIClear removes the stored text.
func (s *Server) handleAPIClear(w http.ResponseWriter, r *http.Request) {
	if err := s.serviceFor(r).Clear(r.Context()); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAPIParse parses the request body without storing it. The optional
// delimiter query parameter forces comma or semicolon.
func (s *Server) handleAPIParse(w http.ResponseWriter, r *http.Request) {
	delim, err := csvtext.ParseDelimiter(r.URL.Query().Get("delimiter"))
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	raw, ok := s.readBody(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, core.Preview(raw, delim))
}

// readBody reads and decodes a size-limited request body. On failure it has
// already responded.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	limit := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	raw, err := core.ReadText(r.Body, limit)
	if err != nil {
		s.fail(w, r, err)
		return "", false
	}
	return raw, true
}
