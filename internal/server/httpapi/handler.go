package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/blogadmin/internal/server/router"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error string `json:"error"`
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// handleAPI maps the HTTP request 1:1 onto a router.Request. Unrouted paths
// answer 404 and unsupported verbs on a known path answer 405.
func (s *HTTPServer) handleAPI(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "could not read body"})
		return
	}

	req, err := router.NewRequest(r.Method, r.URL.Path, r.URL.Query(), body)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		return
	}
	req.Token = bearerToken(r)

	resp, err := s.router.Dispatch(r.Context(), req)
	if err != nil {
		var unhandled *router.UnhandledError
		switch {
		case errors.As(err, &unhandled) && unhandled.PathKnown:
			writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: err.Error()})
		case errors.Is(err, router.ErrUnhandled):
			writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		default:
			s.logger.Error(r.Context(), "dispatch", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		}
		return
	}

	writeJSON(w, resp.Status, resp.Body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
