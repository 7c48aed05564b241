package http

import (
	"encoding/json"
	"net/http"

	"github.com/avorobeva/go-post-board/internal/posts/service"
	"github.com/avorobeva/go-post-board/internal/posts/token"
)

// Handlers агрегирует зависимости HTTP-слоя posts-сервиса.
type Handlers struct {
	svc      *service.Service
	verifier *token.Verifier
}

func NewHandlers(svc *service.Service, verifier *token.Verifier) *Handlers {
	return &Handlers{svc: svc, verifier: verifier}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
