package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"agenda/internal/model"
	"agenda/internal/shared"
	"agenda/internal/store"
)

type API struct {
	Service *Service
	Info    shared.InfoResponse
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, r *http.Request, code int, msg string) {
	writeJSON(w, code, shared.ErrorResponse{
		Status:  code,
		Error:   http.StatusText(code),
		Message: msg,
		Path:    r.URL.Path,
	})
}

// writeError maps service and store errors to HTTP statuses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeProblem(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrValidation):
		writeProblem(w, r, http.StatusInternalServerError, err.Error())
	default:
		log.Printf("request failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeProblem(w, r, http.StatusInternalServerError, err.Error())
	}
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(io.LimitReader(r.Body, 2<<20))
}

// Handler returns the routed API wrapped in request logging.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", a.ListAll)
	mux.HandleFunc("POST /{$}", a.Create)
	mux.HandleFunc("DELETE /{$}", a.DeleteAll)
	mux.HandleFunc("GET /info", a.GetInfo)
	mux.HandleFunc("GET /day/{day}", a.ListByDay)
	mux.HandleFunc("GET /{id}", a.GetByID)
	return logRequests(mux)
}

func (a *API) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := a.Service.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *API) ListByDay(w http.ResponseWriter, r *http.Request) {
	items, err := a.Service.ListByDay(r.Context(), r.PathValue("day"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *API) GetByID(w http.ResponseWriter, r *http.Request) {
	item, err := a.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (a *API) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeProblem(w, r, http.StatusBadRequest, "bad body")
		return
	}
	var item model.AgendaItem
	if err := json.Unmarshal(body, &item); err != nil {
		writeProblem(w, r, http.StatusBadRequest, "bad json")
		return
	}

	saved, err := a.Service.Create(r.Context(), item)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/"+url.PathEscape(saved.ID))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, shared.AddedMessage)
}

func (a *API) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := a.Service.DeleteAll(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (a *API) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Info)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("http: method=%s path=%s status=%d dur=%s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
