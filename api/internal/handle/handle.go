package handle

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"tokenform/api/internal/config"
)

type Handle struct {
	id           config.Identity
	maxBodyBytes int64
	log          *zap.Logger
}

func New(id config.Identity, maxBodyBytes int64, log *zap.Logger) *Handle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handle{
		id:           id,
		maxBodyBytes: maxBodyBytes,
		log:          log,
	}
}

// Register mounts the classifier routes on mux.
func (h *Handle) Register(mux *http.ServeMux) {
	mux.HandleFunc("/bfhl", h.BFHL)
	mux.HandleFunc("/api/bfhl", h.BFHL)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
