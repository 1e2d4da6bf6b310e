// Package httpserver exposes the beautifier over HTTP: a health probe,
// a parse endpoint returning the classified deck as JSON, and a beautify
// endpoint returning the produced document as a download.
package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"deckglow/model"
)

// Beautifier is what the handlers need from the pipeline.
type Beautifier interface {
	Parse(path string) (*model.Deck, error)
	Run(ctx context.Context, userPath string) (string, error)
}

// maxUploadBytes bounds the multipart form size.
const maxUploadBytes = 100 << 20

// contentTypePPTX is the MIME type for the beautified download.
const contentTypePPTX = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// Server holds the handler dependencies.
type Server struct {
	beautifier Beautifier
	log        *zap.Logger
	tempDir    string
}

// New builds a Server. An empty tempDir means the system temp directory.
func New(b Beautifier, tempDir string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Server{beautifier: b, log: log, tempDir: tempDir}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/parse", s.handleParse)
	mux.HandleFunc("POST /api/beautify", s.handleBeautify)
	return s.withCORS(s.withRequestLog(mux))
}

// parseEnvelope is the /api/parse response body.
type parseEnvelope struct {
	Meta   model.Meta    `json:"meta"`
	Slides []*model.Page `json:"slides"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	path, name, err := s.saveUpload(r)
	if err != nil {
		s.errorJSON(w, r, http.StatusBadRequest, err)
		return
	}
	defer os.Remove(path)

	deck, err := s.beautifier.Parse(path)
	if err != nil {
		s.errorJSON(w, r, http.StatusUnprocessableEntity, fmt.Errorf("parse %s: %w", name, err))
		return
	}

	writeJSON(w, http.StatusOK, parseEnvelope{
		Meta:   deck.Meta(),
		Slides: deck.Pages,
	})
}

func (s *Server) handleBeautify(w http.ResponseWriter, r *http.Request) {
	path, name, err := s.saveUpload(r)
	if err != nil {
		s.errorJSON(w, r, http.StatusBadRequest, err)
		return
	}
	defer os.Remove(path)

	out, err := s.beautifier.Run(r.Context(), path)
	if err != nil {
		s.errorJSON(w, r, http.StatusInternalServerError, err)
		return
	}
	defer os.RemoveAll(filepath.Dir(out))

	f, err := os.Open(out)
	if err != nil {
		s.errorJSON(w, r, http.StatusInternalServerError, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", contentTypePPTX)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "beautified_"+name))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		s.log.Warn("download interrupted", zap.Error(err))
	}
}

// saveUpload writes the multipart "file" field to a temp file and returns
// its path and the client-supplied filename.
func (s *Server) saveUpload(r *http.Request) (path, name string, err error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", "", fmt.Errorf("multipart form: %w", err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", "", fmt.Errorf("form field %q: %w", "file", err)
	}
	defer file.Close()

	name = filepath.Base(header.Filename)
	if name == "" || name == "." {
		name = "upload.pptx"
	}

	tmp, err := os.CreateTemp(s.tempDir, "upload-*.pptx")
	if err != nil {
		return "", "", fmt.Errorf("temp file: %w", err)
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		os.Remove(tmp.Name())
		return "", "", fmt.Errorf("save upload: %w", err)
	}
	return tmp.Name(), name, nil
}

func (s *Server) errorJSON(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.log.Warn("request failed",
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err))
	writeJSON(w, status, map[string]string{"detail": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// withCORS applies the permissive cross-origin policy: any origin, any
// method, any header. Preflight requests are answered directly.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRequestLog assigns each request a UUID and logs method, path,
// and duration.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}
