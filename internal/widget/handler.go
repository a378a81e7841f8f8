package widget

import (
	"embed"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"calcpad/internal/domain"
	"calcpad/internal/input"
)

//go:embed static/index.html
var static embed.FS

// PressRequest is the body of POST /press.
type PressRequest struct {
	Keys []string `json:"keys"`
}

type errorResponse struct {
	Error   string              `json:"error"`
	Display domain.DisplayState `json:"display"`
}

// Handler exposes one editor over HTTP.
type Handler struct {
	mu  sync.Mutex
	ed  domain.Editor
	log *zap.Logger
	mux *http.ServeMux
}

// NewHandler returns a Handler driving ed. log may be nil.
func NewHandler(ed domain.Editor, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &Handler{ed: ed, log: log, mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /{$}", h.index)
	h.mux.HandleFunc("GET /display", h.display)
	h.mux.HandleFunc("POST /press", h.press)
	h.mux.HandleFunc("POST /clear", h.clearAll)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	h.mux.ServeHTTP(rec, r)
	h.log.Info("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("remote", r.RemoteAddr),
		zap.Int("status", rec.status),
		zap.Int("bytes", rec.bytes),
		zap.Duration("duration", time.Since(start)),
	)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (h *Handler) display(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	d := h.ed.Display()
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, d)
}

func (h *Handler) press(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req PressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actions, parseErr := input.ParseAll(req.Keys)

	h.mu.Lock()
	for _, a := range actions {
		if err := h.ed.Apply(a); err != nil && !errors.Is(err, domain.ErrEvaluation) {
			h.mu.Unlock()
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	d := h.ed.Display()
	h.mu.Unlock()

	if parseErr != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: parseErr.Error(), Display: d})
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handler) clearAll(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.ed.Clear()
	d := h.ed.Display()
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, d)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}
