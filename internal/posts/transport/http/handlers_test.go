package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avorobeva/go-post-board/internal/posts/config"
	"github.com/avorobeva/go-post-board/internal/posts/mocks"
	"github.com/avorobeva/go-post-board/internal/posts/models"
	"github.com/avorobeva/go-post-board/internal/posts/service"
	"github.com/avorobeva/go-post-board/internal/posts/storage"
	"github.com/avorobeva/go-post-board/internal/posts/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Не короче 32 байт: go-jose отвергает более короткие HS256-ключи.
const testSecret = "posts-transport-test-secret-0123456789"

type env struct {
	storage  *mocks.MockStorage
	producer *mocks.MockEventProducer
	server   *httptest.Server
}

func newEnv(t *testing.T) *env {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := mocks.NewMockStorage(ctrl)
	pr := mocks.NewMockEventProducer(ctrl)
	svc := service.New(st, pr, config.KafkaConfig{Topic: "posts", PublishTimeout: time.Second})

	h := NewHandlers(svc, token.NewVerifier(testSecret))
	srv := httptest.NewServer(NewRouter(h, Options{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Timeout: 5 * time.Second,
	}))
	t.Cleanup(srv.Close)

	return &env{storage: st, producer: pr, server: srv}
}

// mintToken выпускает токен так же, как это делает auth-сервис.
func mintToken(t *testing.T, secret, sub string, ttl time.Duration) string {
	t.Helper()

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, method, url, bearer string, body any) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreatePost_Created(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	e.storage.EXPECT().SavePost(gomock.Any(), gomock.Any()).Return(nil)
	e.producer.EXPECT().PublishPostCreated(gomock.Any(), gomock.Any()).Return(nil)

	tok := mintToken(t, testSecret, "alice", 30*time.Minute)
	resp := doJSON(t, http.MethodPost, e.server.URL+"/api/posts", tok,
		map[string]string{"title": "hello", "content": "world"})

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	post := decodeBody[models.Post](t, resp)
	// Автор — subject токена, а не поле тела.
	require.Equal(t, "alice", post.Author)
	require.Equal(t, "hello", post.Title)
	require.NotEqual(t, uuid.Nil, post.ID)
}

func TestCreatePost_BrokerDownStillCreated(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	e.storage.EXPECT().SavePost(gomock.Any(), gomock.Any()).Return(nil)
	e.producer.EXPECT().PublishPostCreated(gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	tok := mintToken(t, testSecret, "alice", 30*time.Minute)
	resp := doJSON(t, http.MethodPost, e.server.URL+"/api/posts", tok,
		map[string]string{"title": "hello", "content": "world"})

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestCreatePost_AuthorFieldRejected(t *testing.T) {
	t.Parallel()

	e := newEnv(t)

	tok := mintToken(t, testSecret, "alice", 30*time.Minute)
	resp := doJSON(t, http.MethodPost, e.server.URL+"/api/posts", tok,
		map[string]string{"title": "hello", "content": "world", "author": "mallory"})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestCreatePost_Unauthenticated(t *testing.T) {
	t.Parallel()

	e := newEnv(t)

	tests := []struct {
		name   string
		bearer string
	}{
		{"no_token", ""},
		{"garbage", "not-a-jwt"},
		{"wrong_secret", mintToken(t, "other-secret-0123456789abcdefghijklm", "alice", 30*time.Minute)},
		{"expired", mintToken(t, testSecret, "alice", -time.Minute)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			resp := doJSON(t, http.MethodPost, e.server.URL+"/api/posts", tc.bearer,
				map[string]string{"title": "hello", "content": "world"})
			defer resp.Body.Close()

			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			require.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))

			// Причина отказа по ответу неразличима.
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, "unauthenticated", body.Error.Code)
		})
	}
}

func TestCreatePost_InvalidBody(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	tok := mintToken(t, testSecret, "alice", 30*time.Minute)

	resp := doJSON(t, http.MethodPost, e.server.URL+"/api/posts", tok,
		map[string]string{"title": "", "content": "world"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestListPosts_Public(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	want := []models.Post{
		{ID: uuid.New(), Title: "second", Author: "bob", CreatedAt: time.Now().UTC()},
		{ID: uuid.New(), Title: "first", Author: "alice", CreatedAt: time.Now().UTC().Add(-time.Hour)},
	}
	e.storage.EXPECT().ListPosts(gomock.Any()).Return(want, nil)

	// Без токена: чтение публичное.
	resp := doJSON(t, http.MethodGet, e.server.URL+"/api/posts", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeBody[[]models.Post](t, resp)
	require.Len(t, got, 2)
	require.Equal(t, want[0].ID, got[0].ID)
}

func TestMyPosts_FiltersByPrincipal(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	want := []models.Post{{ID: uuid.New(), Title: "mine", Author: "alice"}}
	e.storage.EXPECT().PostsByAuthor(gomock.Any(), "alice").Return(want, nil)

	tok := mintToken(t, testSecret, "alice", 30*time.Minute)
	resp := doJSON(t, http.MethodGet, e.server.URL+"/api/posts/my-posts", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeBody[[]models.Post](t, resp)
	require.Len(t, got, 1)
	require.Equal(t, "alice", got[0].Author)
}

func TestMyPosts_Unauthenticated(t *testing.T) {
	t.Parallel()

	e := newEnv(t)

	resp := doJSON(t, http.MethodGet, e.server.URL+"/api/posts/my-posts", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestPostByID_Public(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	want := models.Post{ID: uuid.New(), Title: "t", Content: "c", Author: "alice", CreatedAt: time.Now().UTC()}
	e.storage.EXPECT().PostByID(gomock.Any(), want.ID).Return(&want, nil)

	resp := doJSON(t, http.MethodGet, e.server.URL+"/api/posts/"+want.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeBody[models.Post](t, resp)
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, "alice", got.Author)
}

func TestPostByID_NotFound(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	id := uuid.New()
	e.storage.EXPECT().PostByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)

	resp := doJSON(t, http.MethodGet, e.server.URL+"/api/posts/"+id.String(), "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestPostByID_BadID(t *testing.T) {
	t.Parallel()

	e := newEnv(t)

	// Не-UUID в пути отклоняется до обращения к хранилищу.
	resp := doJSON(t, http.MethodGet, e.server.URL+"/api/posts/not-a-uuid", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestPostsByAuthor_Public(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	want := []models.Post{{ID: uuid.New(), Title: "t", Author: "bob"}}
	e.storage.EXPECT().PostsByAuthor(gomock.Any(), "bob").Return(want, nil)

	resp := doJSON(t, http.MethodGet, e.server.URL+"/api/posts/by-author/bob", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeBody[[]models.Post](t, resp)
	require.Len(t, got, 1)
	require.Equal(t, "bob", got[0].Author)
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	e := newEnv(t)

	resp := doJSON(t, http.MethodGet, e.server.URL+"/livez", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, e.server.URL+"/healthz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
