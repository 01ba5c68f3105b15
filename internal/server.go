package internal

import (
	"bytes"
	"context"
	"embed"
	stderrors "errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"team-lab/domain"
	"team-lab/errors"
	"team-lab/export"
	"team-lab/presenter"
	"team-lab/repositories"
	"team-lab/roster"
	"team-lab/services"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

//go:embed teams.html
var templatesFS embed.FS

const genericError = "Something went wrong while building the teams. Please try again."

type TeamView struct {
	Name      string
	Breakdown string
	Members   []domain.RosterEntry
}

type PageData struct {
	Text        string
	GroupCount  int
	Error       string
	Summary     string
	Reduced     bool
	Teams       []TeamView
	DownloadURL string
}

// Server is the web form around the team service: paste or upload a roster, pick a team
// count, see the teams and download them once as a workbook.
type Server struct {
	log            *slog.Logger
	service        services.ITeamService
	exports        repositories.IExportRepository
	maxUploadBytes int64
	tmpl           *template.Template
}

func NewServer(log *slog.Logger, service services.ITeamService, exports repositories.IExportRepository, maxUploadBytes int64) *Server {
	return &Server{
		log:            log,
		service:        service,
		exports:        exports,
		maxUploadBytes: maxUploadBytes,
		tmpl:           template.Must(template.ParseFS(templatesFS, "teams.html")),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.form)
	mux.HandleFunc("POST /teams", s.assign)
	mux.HandleFunc("GET /download/{id}", s.download)
	return s.recoverer(mux)
}

// Run serves until ctx is cancelled, then shuts down within a short grace period.
func (s *Server) Run(ctx context.Context, address string) error {
	httpServer := &http.Server{
		Addr:              address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting web server", "address", address)
		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("web server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("Shutting down web server...")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func (s *Server) form(w http.ResponseWriter, _ *http.Request) {
	s.render(w, http.StatusOK, PageData{GroupCount: 1})
}

func (s *Server) assign(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil && !stderrors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			s.render(w, http.StatusRequestEntityTooLarge, PageData{
				GroupCount: 1,
				Error:      fmt.Sprintf("The upload is larger than %d bytes.", tooLarge.Limit),
			})
			return
		}
		s.fail(w, PageData{GroupCount: 1}, fmt.Errorf("parse form: %w", err))
		return
	}

	data := PageData{Text: r.FormValue("roster"), GroupCount: 1}
	count, err := strconv.Atoi(strings.TrimSpace(r.FormValue("teams")))
	if err != nil || count < 1 {
		s.fail(w, data, errors.ErrInvalidGroupCount)
		return
	}
	data.GroupCount = count

	players, err := s.loadRoster(r, data.Text)
	if err != nil {
		s.fail(w, data, err)
		return
	}
	allocation, err := s.service.Assign(players, count)
	if err != nil {
		s.fail(w, data, err)
		return
	}
	var workbook bytes.Buffer
	if err = s.service.Export(&workbook, allocation); err != nil {
		s.fail(w, data, err)
		return
	}
	id, err := s.exports.Store(workbook.Bytes())
	if err != nil {
		s.fail(w, data, err)
		return
	}

	data.Summary = presenter.Summary(allocation)
	data.Reduced = allocation.Reduced()
	data.Teams = lo.Map(allocation.Groups, func(group domain.Group, _ int) TeamView {
		return TeamView{Name: group.Name(), Breakdown: presenter.Breakdown(group), Members: group.Members}
	})
	data.DownloadURL = "/download/" + id.String()
	s.render(w, http.StatusOK, data)
}

// loadRoster prefers an uploaded table over the pasted text. A urlencoded form only carries text.
func (s *Server) loadRoster(r *http.Request, text string) (domain.Roster, error) {
	if r.MultipartForm == nil {
		return roster.ParseText(text)
	}
	file, _, err := r.FormFile("upload")
	if stderrors.Is(err, http.ErrMissingFile) {
		return roster.ParseText(text)
	}
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	return roster.LoadTable(file)
}

func (s *Server) download(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	content, err := s.exports.Take(id)
	if stderrors.Is(err, errors.ErrExportNotFound) {
		http.Error(w, "This download has expired or was already retrieved.", http.StatusNotFound)
		return
	}
	if err != nil {
		s.log.Error("download failed", "id", id, "error", err)
		http.Error(w, genericError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": export.FileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	if _, err = w.Write(content); err != nil {
		s.log.Warn("download interrupted", "id", id, "error", err)
	}
}

// fail shows input problems next to the form and hides everything else behind a generic message.
func (s *Server) fail(w http.ResponseWriter, data PageData, err error) {
	if errors.IsValidation(err) {
		s.log.Warn("request rejected", "error", err)
		data.Error = err.Error()
		s.render(w, http.StatusBadRequest, data)
		return
	}
	s.log.Error("request failed", "error", err)
	data.Error = genericError
	s.render(w, http.StatusInternalServerError, data)
}

func (s *Server) render(w http.ResponseWriter, status int, data PageData) {
	var page bytes.Buffer
	if err := s.tmpl.Execute(&page, data); err != nil {
		s.log.Error("template rendering failed", "error", err)
		http.Error(w, genericError, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.Copy(w, &page)
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				s.log.Error("handler panic", "panic", recovered, "path", r.URL.Path)
				http.Error(w, genericError, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
