package web

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/JonMunkholm/csvview/internal/core"
	"github.com/JonMunkholm/csvview/internal/logging"
	"github.com/JonMunkholm/csvview/internal/web/templates"
)

// multipartOverhead is the room left for multipart framing on top of the
// file size limit.
const multipartOverhead = 1 << 20

// clearedNotice is shown after the stored CSV was removed.
const clearedNotice = "Saved data removed."

// handlePage renders the viewer, including the stored table if there is one.
// Failing to restore is logged and the page is shown without a table.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := templates.PageParams{MaxFileSize: s.cfg.Upload.MaxFileSize}
	if r.URL.Query().Get("cleared") == "1" {
		params.Notice = clearedNotice
	}

	view, err := s.serviceFor(r).Restore(ctx)
	switch {
	case err == nil:
		params.View = view
	case errors.Is(err, core.ErrNothingStored):
	default:
		logging.FromContext(ctx).Warn("restore failed", "error", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Page(params).Render(ctx, w); err != nil {
		logging.FromContext(ctx).Error("render page", "error", err)
	}
}

// handleUpload reads the multipart file field "file", stores its text and
// redirects back to the page, which then shows the table.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	limit := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)

	if err := r.ParseMultipartForm(limit); err != nil {
		s.fail(w, r, uploadError(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.fail(w, r, uploadError(err))
		return
	}
	defer file.Close()

	raw, err := core.ReadText(file, limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ctx := logging.ContextWith(r.Context(), "file", header.Filename)
	if _, err := s.serviceFor(r).Load(ctx, raw); err != nil {
		s.fail(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleClear removes the stored text and shows the page with a notice.
func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.serviceFor(r).Clear(r.Context()); err != nil {
		s.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/?cleared=1", http.StatusSeeOther)
}

// handleDownload sends the stored text back byte for byte as an attachment.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	dl, err := s.serviceFor(r).Download(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", dl.ContentType)
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": dl.FileName}))
	h.Set("Content-Length", strconv.Itoa(len(dl.Body)))
	h.Set("Cache-Control", "no-store")

	if _, err := w.Write(dl.Body); err != nil {
		logging.FromContext(r.Context()).Warn("download write failed", "error", err)
	}
}

// healthResponse is the body of /healthz.
type healthResponse struct {
	Status string             `json:"status"`
	Loads  core.LimiterStatus `json:"loads"`
}

// handleHealth reports that the server is up and how busy it is.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Loads: s.service.LoadStatus()})
}

// uploadError classifies multipart parsing failures.
func uploadError(err error) error {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return fmt.Errorf("%w: %v", core.ErrFileTooLarge, err)
	}
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return core.ErrNoFile
	}
	return fmt.Errorf("%w: %v", core.ErrNoFile, err)
}
