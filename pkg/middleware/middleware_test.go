package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// capHandler фиксирует запрос, дошедший до конца цепочки.
type capHandler struct {
	called bool
	r      *http.Request
}

func (c *capHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.called = true
	c.r = r
	w.WriteHeader(http.StatusNoContent)
}

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	sink := &capHandler{}
	h := Chain(sink, mw("outer"), mw("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, sink.called)
	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestRequestID_Generates(t *testing.T) {
	t.Parallel()

	sink := &capHandler{}
	h := Chain(sink, RequestID())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rec.Header().Get("X-Request-Id")
	require.Len(t, id, 32)
	require.Equal(t, id, RequestIDFrom(sink.r.Context()))
}

func TestRequestID_PropagatesClientID(t *testing.T) {
	t.Parallel()

	sink := &capHandler{}
	h := Chain(sink, RequestID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "client-id-1")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "client-id-1", rec.Header().Get("X-Request-Id"))
	require.Equal(t, "client-id-1", RequestIDFrom(sink.r.Context()))
}

func TestAuthBearer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantOK    bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"no_header", "", "", false},
		{"empty_token", "Bearer ", "", false},
		{"spaces_only", "Bearer    ", "", false},
		{"wrong_scheme", "Basic abc", "", false},
		{"lowercase_scheme", "bearer abc", "", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sink := &capHandler{}
			h := Chain(sink, AuthBearer())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			require.True(t, sink.called)
			token, ok := AuthTokenFrom(sink.r.Context())
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.wantToken, token)
		})
	}
}

func TestRecover_PanicBecomes500(t *testing.T) {
	t.Parallel()

	h := Chain(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}),
		Recover(),
	)

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	// Причина паники не утекает на клиент.
	require.NotContains(t, rec.Body.String(), "boom")
}

func TestTimeout_SetsDeadline(t *testing.T) {
	t.Parallel()

	sink := &capHandler{}
	h := Chain(sink, Timeout(time.Second))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	_, ok := sink.r.Context().Deadline()
	require.True(t, ok)
}

func TestTimeout_ZeroIsNoop(t *testing.T) {
	t.Parallel()

	sink := &capHandler{}
	h := Chain(sink, Timeout(0))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	_, ok := sink.r.Context().Deadline()
	require.False(t, ok)
}

func TestLogging_WritesRecord(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sink := &capHandler{}
	h := Chain(sink, RequestID(), Logging(logger))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/path", nil))
	})
	require.Equal(t, http.StatusNoContent, rec.Code)
}
