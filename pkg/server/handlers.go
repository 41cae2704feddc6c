package server

import (
	"bytes"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/matzehuels/depview/pkg/buildinfo"
	"github.com/matzehuels/depview/pkg/cache"
	"github.com/matzehuels/depview/pkg/errors"
	"github.com/matzehuels/depview/pkg/nodelink"
	"github.com/matzehuels/depview/pkg/observability"
	"github.com/matzehuels/depview/pkg/view/snapshot"
	"github.com/matzehuels/depview/pkg/webpage"
)

const maxSnapshotSide = 4096

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	g := s.source()
	var buf bytes.Buffer
	err := observability.Track(r.Context(), "page", "html", g.NodeCount(), func() (int, error) {
		err := webpage.Render(&buf, webpage.OptionsFromConfig(s.cfg, g))
		return buf.Len(), err
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.source())
}

func (s *Server) handleSnapshot(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := snapshot.Options{
			Width:  s.cfg.Snapshot.Width,
			Height: s.cfg.Snapshot.Height,
			Format: snapshot.Format(format),
		}
		var err error
		if opts.Width, err = sizeParam(r, "width", opts.Width); err != nil {
			s.writeError(w, r, err)
			return
		}
		if opts.Height, err = sizeParam(r, "height", opts.Height); err != nil {
			s.writeError(w, r, err)
			return
		}

		g := s.source()
		key := cache.ArtifactKey(cache.GraphHash(g), cache.ArtifactKeyOpts{
			Kind: "snapshot", Format: format, Width: opts.Width, Height: opts.Height,
		})
		out, err := s.cached(w, r, key, func() ([]byte, error) {
			var buf bytes.Buffer
			err := observability.Track(r.Context(), "snapshot", format, g.NodeCount(), func() (int, error) {
				err := snapshot.Render(&buf, g, opts)
				return buf.Len(), err
			})
			return buf.Bytes(), err
		})
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", contentType(format))
		_, _ = w.Write(out)
	}
}

func (s *Server) handleExport(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g := s.source()
		key := cache.ArtifactKey(cache.GraphHash(g), cache.ArtifactKeyOpts{Kind: "export", Format: format})
		out, err := s.cached(w, r, key, func() ([]byte, error) {
			var out []byte
			err := observability.Track(r.Context(), "export", format, g.NodeCount(), func() (int, error) {
				dot := nodelink.ToDOT(g, nodelink.Options{})
				if format == "dot" {
					out = []byte(dot)
					return len(out), nil
				}
				var err error
				out, err = nodelink.RenderSVG(r.Context(), dot)
				if err != nil {
					err = errors.Wrap(errors.ErrCodeInternal, err, "render node-link diagram")
				}
				return len(out), err
			})
			return out, err
		})
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", contentType(format))
		_, _ = w.Write(out)
	}
}

// cached serves key from the render cache, rendering on a miss.
func (s *Server) cached(w http.ResponseWriter, r *http.Request, key string, render func() ([]byte, error)) ([]byte, error) {
	data, hit, err := cache.Fetch(r.Context(), s.cache, key, s.cfg.Server.CacheTTL, render)
	if err != nil {
		return nil, err
	}
	if hit {
		w.Header().Set(CacheHeader, "HIT")
	} else {
		w.Header().Set(CacheHeader, "MISS")
	}
	return data, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Short(),
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "no route for %s", r.URL.Path))
}

func sizeParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 || n > maxSnapshotSide {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s must be an integer in 1..%d, got %q", name, maxSnapshotSide, v)
	}
	return n, nil
}

func contentType(format string) string {
	switch format {
	case "png":
		return "image/png"
	case "svg":
		return "image/svg+xml"
	case "dot":
		return "text/vnd.graphviz; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if s.logger != nil && status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorBody{Error: errors.UserMessage(err), Code: string(errors.GetCode(err))})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
