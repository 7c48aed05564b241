package http

import (
	"net/http"

	"github.com/avorobeva/go-post-board/pkg/httperr"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// createPostRequest — тело POST /api/posts.
// Поля author нет намеренно: автор — principal запроса.
type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreatePost создаёт пост от имени аутентифицированного принципала.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r.Context())
	if !ok {
		httperr.Unauthenticated(w, r)
		return
	}

	var in createPostRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.InvalidArgument(w, r)
		return
	}

	post, err := h.svc.CreatePost(r.Context(), principal, in.Title, in.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

// PostByID возвращает один пост по его id. Эндпойнт публичный.
func (h *Handlers) PostByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.InvalidArgument(w, r)
		return
	}

	post, err := h.svc.PostByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// ListPosts возвращает все посты. Эндпойнт публичный.
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListPosts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// MyPosts возвращает посты аутентифицированного принципала.
func (h *Handlers) MyPosts(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r.Context())
	if !ok {
		httperr.Unauthenticated(w, r)
		return
	}

	posts, err := h.svc.PostsByAuthor(r.Context(), principal)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// PostsByAuthor возвращает посты указанного автора. Эндпойнт публичный.
func (h *Handlers) PostsByAuthor(w http.ResponseWriter, r *http.Request) {
	author := chi.URLParam(r, "author")
	if author == "" {
		httperr.InvalidArgument(w, r)
		return
	}

	posts, err := h.svc.PostsByAuthor(r.Context(), author)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}
