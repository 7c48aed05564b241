package http

import (
	"errors"
	"net/http"

	"github.com/avorobeva/go-post-board/internal/posts/service"
	"github.com/avorobeva/go-post-board/pkg/httperr"
)

// writeServiceError маппит ошибки бизнес-слоя на HTTP-статусы.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTitle),
		errors.Is(err, service.ErrInvalidContent):
		httperr.InvalidArgument(w, r)
	case errors.Is(err, service.ErrPostNotFound):
		httperr.NotFound(w, r)
	default:
		httperr.Internal(w, r)
	}
}
