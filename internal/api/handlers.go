package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vetle/manweb/internal/apperr"
	"github.com/vetle/manweb/internal/corpus"
	"github.com/vetle/manweb/internal/render"
	"github.com/vetle/manweb/internal/workers"
)

// aliasMarker starts the first line of a page that is a pure indirection to
// another page, e.g. ".so man1/ls.1".
const aliasMarker = ".so "

// Handler holds the page-resolution and render-pipeline handlers.
type Handler struct {
	corpus corpus.Provider
	fmtr   render.Formatter
	pool   workers.Runner
}

// NewHandler creates a new Handler.
func NewHandler(c corpus.Provider, f render.Formatter, pool workers.Runner) *Handler {
	return &Handler{corpus: c, fmtr: f, pool: pool}
}

// Find handles GET /{name}: it resolves a bare page name to a concrete
// section and redirects to the canonical page URL.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	base, section, ok := splitSection(name)
	if !ok {
		// No usable suffix; probe the priority order for an existing page.
		for _, s := range SectionProbeOrder {
			if h.corpus.Probe(s, name) {
				base, section, ok = name, s, true
				break
			}
		}
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	http.Redirect(w, r, "/"+section+"/"+base+"."+section+".html", http.StatusTemporaryRedirect)
}

// Render handles GET /{section}/{name}: the conditional render pipeline.
// Freshness is checked before anything is decompressed, and alias indirection
// is resolved without ever invoking the formatter.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	since, err := parseIfModifiedSince(r)
	if err != nil {
		http.Error(w, "cannot parse If-Modified-Since", http.StatusBadRequest)
		return
	}

	section := chi.URLParam(r, "section")
	name, ok := strings.CutSuffix(chi.URLParam(r, "name"), ".html")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	ctx := r.Context()
	mtime, err := workers.Do(ctx, h.pool, func() (time.Time, error) {
		return h.corpus.ModTime(section, name)
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	mtime = mtime.Truncate(time.Second)

	if !since.IsZero() && !mtime.After(since) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	line, err := workers.Do(ctx, h.pool, func() (string, error) {
		return h.corpus.FirstLine(section, name)
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if target, isAlias := strings.CutPrefix(line, aliasMarker); isAlias {
		// Alias targets are relative paths like man1/ls.1; the leading
		// "man" maps onto this service's /{section}/... shape.
		rest, ok := strings.CutPrefix(target, "man")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		setDate(w, mtime)
		http.Redirect(w, r, "/"+rest+".html", http.StatusTemporaryRedirect)
		return
	}

	doc, err := workers.Do(ctx, h.pool, func() (string, error) {
		return h.fmtr.Render(h.corpus.Path(section, name))
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	setDate(w, mtime)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(doc)); err != nil {
		slog.Error("write response failed", slog.String("error", err.Error()))
	}
}

// fail translates a collaborator error into a terminal response. Internal
// failures are logged server-side; the client only sees the status.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(apperr.FromFS(err))
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
	}
	w.WriteHeader(status)
}

// parseIfModifiedSince returns the client's freshness token, or the zero time
// when the header is absent.
func parseIfModifiedSince(r *http.Request) (time.Time, error) {
	v := r.Header.Get("If-Modified-Since")
	if v == "" {
		return time.Time{}, nil
	}
	return http.ParseTime(v)
}

// setDate carries the backing file's mtime on content-bearing responses.
// The Date header (not Last-Modified) is deliberate: clients hand this exact
// value back as If-Modified-Since, and the server's own Date is suppressed
// when the handler has already set one.
func setDate(w http.ResponseWriter, mtime time.Time) {
	w.Header().Set("Date", mtime.UTC().Format(http.TimeFormat))
}
