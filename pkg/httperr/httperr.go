// httperr стандартизирует ответы об ошибках HTTP-слоя обоих сервисов.
// Формат единый для всех эндпойнтов:
//
//	{"error": {"code": "...", "message": "...", "request_id": "..."}}
//
// Маппинг доменных ошибок на HTTP-статусы живёт в транспортных пакетах
// сервисов (internal/*/transport/http/errors.go); httperr отвечает только
// за форму ответа. Сообщения безопасные: детали внутренних ошибок и
// причина отказа в аутентификации наружу не утекают.
package httperr

import (
	"encoding/json"
	"net/http"
)

// APIError — единый формат ошибки для клиента.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Write пишет статус и унифицированное тело ошибки,
// добавляя request_id из заголовка запроса, если он есть.
func Write(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	resp := ErrorResponse{Error: APIError{Code: code, Message: message}}

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// Unauthenticated — 401 с нейтральным сообщением.
// Форма одинакова для неверных кредов, битого и просроченного токена,
// чтобы по ответу нельзя было различить причину.
func Unauthenticated(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	Write(w, r, http.StatusUnauthorized, "unauthenticated", "unauthenticated")
}

// InvalidArgument — 400 на битые входные данные.
func InvalidArgument(w http.ResponseWriter, r *http.Request) {
	Write(w, r, http.StatusBadRequest, "invalid_argument", "invalid argument")
}

// NotFound — 404 на отсутствующий ресурс.
func NotFound(w http.ResponseWriter, r *http.Request) {
	Write(w, r, http.StatusNotFound, "not_found", "not found")
}

// Internal — 500 без утечки деталей.
func Internal(w http.ResponseWriter, r *http.Request) {
	Write(w, r, http.StatusInternalServerError, "internal", "internal error")
}
