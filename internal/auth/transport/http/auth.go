package http

import (
	"net/http"

	"github.com/avorobeva/go-post-board/pkg/httperr"
	"github.com/avorobeva/go-post-board/pkg/middleware"
)

// tokenResponse — ответ POST /token.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// createUserRequest — тело POST /users/.
type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// userResponse — ответ GET /users/me/.
type userResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Token выпускает access-токен по form-encoded паре username/password.
func (h *Handlers) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httperr.InvalidArgument(w, r)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := h.svc.LoginUser(r.Context(), username, password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token.Token,
		TokenType:   "bearer",
	})
}

// CreateUser регистрирует нового пользователя.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in createUserRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.InvalidArgument(w, r)
		return
	}

	user, err := h.svc.RegisterUser(r.Context(), in.Username, in.Email, in.Password, in.Role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
}

// Me возвращает пользователя, которому принадлежит предъявленный токен.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.AuthTokenFrom(r.Context())
	if !ok {
		httperr.Unauthenticated(w, r)
		return
	}

	user, err := h.svc.CurrentUser(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
}
