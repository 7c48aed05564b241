package httperr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestWrite(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "rid-1")

	rec := httptest.NewRecorder()
	Write(rec, req, http.StatusTeapot, "some_code", "some message")

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeErr(t, rec)
	require.Equal(t, "some_code", resp.Error.Code)
	require.Equal(t, "some message", resp.Error.Message)
	require.Equal(t, "rid-1", resp.Error.RequestID)
}

func TestWrite_NoRequestID(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusBadRequest, "c", "m")

	resp := decodeErr(t, rec)
	require.Empty(t, resp.Error.RequestID)
}

func TestUnauthenticated(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Unauthenticated(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	require.Equal(t, "unauthenticated", decodeErr(t, rec).Error.Code)
}

func TestInvalidArgumentAndInternal(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	InvalidArgument(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	Internal(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
