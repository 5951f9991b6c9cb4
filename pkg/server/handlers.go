package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"blinkdeploys/tokenscope/pkg/catalog"
	"blinkdeploys/tokenscope/pkg/processing"
	"blinkdeploys/tokenscope/pkg/server/middleware"
	"blinkdeploys/tokenscope/pkg/telemetry/health"
	"blinkdeploys/tokenscope/pkg/telemetry/logging"
)

// errBadUpload marks request bodies that cannot be read as text.
var errBadUpload = errors.New("bad upload")

// errTooLarge marks request bodies over the upload limit.
var errTooLarge = errors.New("request body too large")

type handlers struct {
	processor *processing.Processor
	catalog   *catalog.Catalog
	version   health.VersionInfo
	maxUpload int64
}

// rootResponse is the service description served at /.
type rootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func (h *handlers) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{
		Message: "tokenscope LLM cost analysis service",
		Version: h.version.Version,
		Endpoints: map[string]string{
			"/analyze":  "POST - upload a text file (multipart field \"file\" or raw body) for a full cost report",
			"/compress": "POST - compress text and report the token reduction",
			"/models":   "GET - list supported models and their pricing",
			"/health":   "GET - liveness probe",
			"/ready":    "GET - readiness probe",
		},
	})
}

// modelsResponse lists the pricing catalog.
type modelsResponse struct {
	AsOf   string       `json:"as_of"`
	Models catalog.Tree `json:"models"`
}

func (h *handlers) models(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, modelsResponse{
		AsOf:   h.catalog.AsOf().Format("2006-01-02"),
		Models: h.catalog.Tree(),
	})
}

func (h *handlers) analyze(w http.ResponseWriter, r *http.Request) {
	text, ok := h.readText(w, r)
	if !ok {
		return
	}

	report, err := h.processor.Analyze(r.Context(), text)
	if err != nil {
		writeProcessingError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *handlers) compress(w http.ResponseWriter, r *http.Request) {
	text, ok := h.readText(w, r)
	if !ok {
		return
	}

	result, err := h.processor.Compress(r.Context(), text)
	if err != nil {
		writeProcessingError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// readText reads the request text from the multipart "file" field or the
// raw body, enforcing the upload limit and UTF-8. It writes the error
// response itself and reports whether the handler should continue.
func (h *handlers) readText(w http.ResponseWriter, r *http.Request) (string, bool) {
	data, err := h.readBody(w, r)
	switch {
	case errors.Is(err, errTooLarge):
		middleware.WriteError(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds %d bytes", h.maxUpload))
		return "", false
	case err != nil:
		middleware.WriteError(w, r, http.StatusBadRequest, err.Error())
		return "", false
	case !utf8.Valid(data):
		middleware.WriteError(w, r, http.StatusBadRequest, "file must be UTF-8 text")
		return "", false
	}
	return string(data), true
}

func (h *handlers) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		data, err := io.ReadAll(r.Body)
		return data, classifyReadError(err)
	}

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		return nil, classifyReadError(err)
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, fmt.Errorf("%w: multipart field \"file\" is missing", errBadUpload)
		}
		return nil, classifyReadError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	return data, classifyReadError(err)
}

func classifyReadError(err error) error {
	if err == nil {
		return nil
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
		return errTooLarge
	}
	return fmt.Errorf("%w: %v", errBadUpload, err)
}

// writeProcessingError maps analysis errors to status codes.
func writeProcessingError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, processing.ErrEmptyInput):
		middleware.WriteError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, processing.ErrNoModelFits):
		middleware.WriteError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, processing.ErrTokenizer):
		middleware.WriteError(w, r, http.StatusBadGateway, "token counting failed")
	default:
		logging.FromContext(r.Context(), slog.Default()).ErrorContext(r.Context(), "analysis failed", "error", err)
		middleware.WriteError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}
