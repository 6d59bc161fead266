// Package web serves a live preview of the current artwork: an HTML page
// with the rendered image, a render endpoint that turns any share hash into
// pixels, and a websocket that reloads the page when the favorites file
// changes on disk.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	geogrid "github.com/0xJensMalm/GeoGrid"
)

// Server wraps the HTTP server for the preview page.
type Server struct {
	httpServer *http.Server
	def        *geogrid.Config
	store      *geogrid.FavStore
	hub        *Hub
	watcher    *Watcher

	// Renders are strictly sequential; two overlapping renders would
	// interleave pattern regeneration with drawing.
	renderMu sync.Mutex
}

// NewServer builds a preview server on the given port. def is the artwork
// shown when no hash is supplied; store may be nil to disable favorites and
// live reload.
func NewServer(port int, def *geogrid.Config, store *geogrid.FavStore) *Server {
	s := &Server{
		def:   def,
		store: store,
		hub:   NewHub(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /render", s.handleRender)
	mux.HandleFunc("GET /api/v1/favorites", s.handleFavorites)
	mux.HandleFunc("GET /ws", s.hub.ServeWS)

	if store != nil {
		w, err := NewWatcher(store.Path())
		if err != nil {
			log.Printf("Warning: favorites watcher unavailable: %v", err)
		} else {
			w.Subscribe(s.hub)
			s.watcher = w
		}
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      Logging(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	return s
}

// Start begins listening for HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	if s.watcher != nil {
		if err := s.watcher.Start(); err != nil {
			log.Printf("Warning: favorites watcher failed to start: %v", err)
		}
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler exposes the route table, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head><title>geogrid {{.Hash}}</title></head>
<body style="margin:0;background:#111;display:flex;flex-direction:column;align-items:center">
<img src="/render?h={{.Hash}}&px={{.Px}}" alt="{{.Hash}}" style="margin:2em 0">
<code style="color:#999">{{.Hash}}</code>
<script>
  const ws = new WebSocket("ws://" + location.host + "/ws");
  ws.onmessage = (ev) => {
    const msg = JSON.parse(ev.data);
    if (msg.type === "reload") location.reload();
  };
</script>
</body>
</html>`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	hash := r.URL.Query().Get("h")
	if hash == "" {
		hash = s.def.Hash()
	} else if _, err := geogrid.ParseHash(hash); err != nil {
		BadRequest(w, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	indexTmpl.Execute(w, map[string]any{"Hash": hash, "Px": 700})
}

// handleRender streams a PNG of the artwork for ?h=<hash>. An invalid hash
// is the user's to correct: it maps to 400, never to a crash.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	hash := r.URL.Query().Get("h")
	cfg := s.def
	if hash != "" {
		c, err := geogrid.ParseHash(hash)
		if err != nil {
			BadRequest(w, err.Error())
			return
		}
		cfg = c
	}

	px := 700
	if v := r.URL.Query().Get("px"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			BadRequest(w, "bad px")
			return
		}
		px = geogrid.ClampInt(n, 100, 2000)
	}

	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	cw, ch := cfg.CanvasSize(px)
	raster := geogrid.NewRaster(cw, ch)
	if err := geogrid.RenderConfig(raster, cfg, float64(cw), float64(ch)); err != nil {
		Error(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, raster.Image()); err != nil {
		log.Printf("render write failed: %v", err)
	}
}

func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		JSON(w, http.StatusOK, []geogrid.Favorite{})
		return
	}
	favs, err := s.store.Load()
	if err != nil {
		Error(w, err)
		return
	}
	if favs == nil {
		favs = []geogrid.Favorite{}
	}
	JSON(w, http.StatusOK, favs)
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error writes an error response, mapping domain errors to HTTP status codes.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, geogrid.ErrInvalidHash):
		status = http.StatusBadRequest
	case errors.Is(err, geogrid.ErrFavoriteNotFound):
		status = http.StatusNotFound
	case errors.Is(err, geogrid.ErrDuplicateFavorite):
		status = http.StatusConflict
	}
	JSON(w, status, map[string]string{"error": err.Error()})
}

// BadRequest writes a 400 error with the given message.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, map[string]string{"error": message})
}

// Logging wraps a handler with request logging.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}
