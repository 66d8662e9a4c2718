package http

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/newsscraper"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	newsscraper.EFETCH:    http.StatusBadGateway,
	newsscraper.EINTERNAL: http.StatusInternalServerError,
	newsscraper.EINVALID:  http.StatusBadRequest,
	newsscraper.ENOTFOUND: http.StatusNotFound,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error writes err to the client as JSON. Internal errors are logged and
// their details are not exposed.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := newsscraper.ErrorCode(err), newsscraper.ErrorMessage(err)

	if code == newsscraper.EINTERNAL {
		s.logger().Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}

	writeJSON(w, ErrorStatusCode(code), &ErrorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
