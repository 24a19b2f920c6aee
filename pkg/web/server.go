package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	gotemplate "github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
	"github.com/goliatone/go-formbuilder/pkg/store"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

//go:embed pages/*.tpl
var embeddedPages embed.FS

const timeLayout = "2006-01-02 15:04"

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for requests and failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFormRenderer replaces the renderer used for previews and responses.
func WithFormRenderer(renderer render.Renderer) Option {
	return func(s *Server) {
		if renderer != nil {
			s.forms = renderer
		}
	}
}

// WithPages replaces the template renderer used for list pages. It must
// provide forms.tpl and responses.tpl.
func WithPages(pages rendertemplate.TemplateRenderer) Option {
	return func(s *Server) {
		if pages != nil {
			s.pages = pages
		}
	}
}

// Server is the read-only HTTP surface over a store.
type Server struct {
	store  *store.Store
	logger *log.Logger
	forms  render.Renderer
	pages  rendertemplate.TemplateRenderer
	router chi.Router
}

// New builds a Server and its routes.
func New(st *store.Store, opts ...Option) (*Server, error) {
	if st == nil {
		return nil, errors.New("web: store is required")
	}
	s := &Server{store: st, logger: log.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.forms == nil {
		renderer, err := html.New()
		if err != nil {
			return nil, fmt.Errorf("web: form renderer: %w", err)
		}
		s.forms = renderer
	}
	if s.pages == nil {
		sub, err := fs.Sub(embeddedPages, "pages")
		if err != nil {
			return nil, fmt.Errorf("web: pages: %w", err)
		}
		engine, err := gotemplate.New(gotemplate.WithFS(sub))
		if err != nil {
			return nil, fmt.Errorf("web: pages: %w", err)
		}
		s.pages = engine
	}

	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/forms", http.StatusFound)
	})
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(html.AssetsFS()))))

	r.Route("/forms", func(r chi.Router) {
		r.Get("/", s.listForms)
		r.Route("/{formID}", func(r chi.Router) {
			r.Get("/", s.previewForm)
			r.Get("/schema", s.formSchema)
			r.Get("/responses", s.listResponses)
			r.Get("/responses/{responseID}", s.showResponse)
		})
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

type formItem struct {
	ID        string
	Title     string
	Fields    int
	Responses int
	Updated   string
}

type responseItem struct {
	ID      string
	Name    string
	Created string
	Updated string
}

func (s *Server) listForms(w http.ResponseWriter, r *http.Request) {
	templates, err := s.store.LoadTemplates(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	responses, err := s.store.LoadResponses(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	items := make([]formItem, 0, len(templates))
	for id, tpl := range templates {
		title := strings.TrimSpace(tpl.Title)
		if title == "" {
			title = render.UntitledForm
		}
		updated := tpl.UpdatedAt
		if updated.IsZero() {
			updated = tpl.CreatedAt
		}
		items = append(items, formItem{
			ID:        id,
			Title:     title,
			Fields:    len(tpl.Config.Fields()),
			Responses: len(responses[id]),
			Updated:   formatTime(updated),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Title != items[j].Title {
			return items[i].Title < items[j].Title
		}
		return items[i].ID < items[j].ID
	})

	s.page(w, r, "forms", map[string]any{"forms": items})
}

func (s *Server) previewForm(w http.ResponseWriter, r *http.Request) {
	tpl, err := s.store.LoadTemplate(r.Context(), chi.URLParam(r, "formID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.renderForm(w, r, tpl.Config, render.Options{Mode: model.ViewModeCreate})
}

func (s *Server) formSchema(w http.ResponseWriter, r *http.Request) {
	tpl, err := s.store.LoadTemplate(r.Context(), chi.URLParam(r, "formID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	payload, err := validation.Compile(tpl.Config).MarshalOpenAPI()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}

func (s *Server) listResponses(w http.ResponseWriter, r *http.Request) {
	tpl, err := s.store.LoadTemplate(r.Context(), chi.URLParam(r, "formID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	all, err := s.store.LoadResponses(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	responses := all[tpl.ID]
	items := make([]responseItem, 0, len(responses))
	for _, resp := range responses {
		items = append(items, responseItem{
			ID:      resp.ResponseID,
			Name:    model.RespondentName(tpl.Config, resp),
			Created: formatTime(resp.CreatedAt),
			Updated: formatTime(resp.UpdatedAt),
		})
	}

	s.page(w, r, "responses", map[string]any{
		"title":     tpl.Title,
		"form_id":   tpl.ID,
		"responses": items,
	})
}

func (s *Server) showResponse(w http.ResponseWriter, r *http.Request) {
	mode := model.ViewModeView
	if raw := r.URL.Query().Get("mode"); raw != "" {
		parsed, err := model.ParseViewMode(raw)
		if err != nil || parsed == model.ViewModeCreate {
			http.Error(w, "mode must be view or edit", http.StatusBadRequest)
			return
		}
		mode = parsed
	}

	formID := chi.URLParam(r, "formID")
	tpl, err := s.store.LoadTemplate(r.Context(), formID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	resp, err := s.store.LoadResponse(r.Context(), formID, chi.URLParam(r, "responseID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.renderForm(w, r, tpl.Config, render.Options{Mode: mode, Values: resp.Data})
}

func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, form model.Form, opts render.Options) {
	out, err := s.forms.Render(r.Context(), form, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", s.forms.ContentType())
	_, _ = w.Write(out)
}

func (s *Server) page(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	out, err := s.pages.RenderTemplate(name, data)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrTemplateNotFound), errors.Is(err, store.ErrResponseNotFound):
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	default:
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}
