package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	msgInternalError = "внутренняя ошибка сервера"

	// maxBodyBytes ограничение на размер тела запроса
	maxBodyBytes = 1 << 20
)

// ErrorResponse единый формат ошибки API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RespondJSON пишет ответ в JSON. data == nil означает пустое тело.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError пишет ошибку с произвольным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondPreconditionRequired используется для необратимых операций без подтверждения
func RespondPreconditionRequired(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusPreconditionRequired, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// IsConfirmed проверяет query-параметр confirm=true
func IsConfirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}
