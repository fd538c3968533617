package common

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cindyhont/jobly-backend/apperror"
	"github.com/cindyhont/jobly-backend/log"
	"github.com/cindyhont/jobly-backend/model"
)

const maxBodyBytes = 1 << 20

func SendResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// SendError answers with the status of err's kind. Anything that is not a client
// error is logged and reported without its details.
func SendError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperror.KindOf(err).Status()
	if status >= http.StatusInternalServerError {
		log.ErrorWithContext(r.Context(), "%s %s: %v", r.Method, r.URL.Path, err)
	}
	SendResponse(w, status, &model.ErrorResponse{
		Error: model.ErrorBody{Message: apperror.Message(err), Status: status},
	})
}

// ReadBody reads the request body, refusing anything over 1MB.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, apperror.Wrap(err, apperror.InvalidInput, "invalid request body")
	}
	return body, nil
}

// Unmarshal decodes body into dst, classifying any failure as invalid input.
func Unmarshal(body []byte, dst interface{}) error {
	if err := json.Unmarshal(body, dst); err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperror.Wrap(err, apperror.InvalidInput, "invalid request body")
	}
	return nil
}

// NotFound answers unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	SendError(w, r, apperror.NewNotFound("not found"))
}

func TooLongTooShort(s string, min int, max int) bool {
	len := len(s)
	return len < min || len > max
}
