package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Категории ошибок в теле ответа
const (
	KindValidation   = "validation"
	KindNotFound     = "not_found"
	KindAccessDenied = "access_denied"
	KindStorage      = "storage"
)

// ErrorResponse тело ответа при ошибке
type ErrorResponse struct {
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

// DecodeJSON декодирует тело запроса, отклоняя неизвестные поля
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}

	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	// Ошибку энкодинга уже не доставить клиенту: заголовки отправлены
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ответ с ошибкой указанной категории
func RespondError(w http.ResponseWriter, status int, kind, reason string) {
	RespondJSON(w, status, ErrorResponse{Kind: kind, Reason: reason})
}

// RespondBadRequest ответ 400 с категорией validation
func RespondBadRequest(w http.ResponseWriter, reason string) {
	RespondError(w, http.StatusBadRequest, KindValidation, reason)
}

// RespondNotFound ответ 404 с категорией not_found
func RespondNotFound(w http.ResponseWriter, reason string) {
	RespondError(w, http.StatusNotFound, KindNotFound, reason)
}

// RespondForbidden ответ 403 с категорией access_denied
func RespondForbidden(w http.ResponseWriter, reason string) {
	RespondError(w, http.StatusForbidden, KindAccessDenied, reason)
}

// RespondConflict ответ 409 с категорией validation
func RespondConflict(w http.ResponseWriter, reason string) {
	RespondError(w, http.StatusConflict, KindValidation, reason)
}

// RespondInternalError ответ 500 с категорией storage
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, KindStorage, "internal server error")
}
