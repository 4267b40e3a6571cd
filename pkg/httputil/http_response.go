package httputil

import (
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

const maxBodyBytes = 1 << 20

var ErrEmptyBody = errors.New("empty request body")

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	WriteJSONResponse(w, statusCode, resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// DecodeJSONBody reads at most 1 MiB of r's body into dst.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	defer r.Body.Close()
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := sonic.ConfigDefault.NewDecoder(body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	return err
}
