// middleware — общие net/http мидлвары обоих HTTP-сервисов:
// recover, request-id, логирование, извлечение Bearer-токена и таймаут.
// Верификация токена здесь не выполняется: каждый сервис проверяет
// токен самостоятельно своим верификатором.
package middleware

import (
	"net/http"
)

// Middleware — стандартный net/http мидлвар.
type Middleware func(http.Handler) http.Handler

// ctxKeyRequestID/ctxKeyAuthToken — ключи значений, которые мидлвары
// кладут в контекст запроса.
type ctxKeyRequestID struct{}
type ctxKeyAuthToken struct{}

// Chain применяет мидлвары к обработчику в порядке их перечисления.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// statusWriter оборачивает ResponseWriter, чтобы перехватить статус и размер.
type statusWriter struct {
	http.ResponseWriter
	status int
	count  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	count, err := w.ResponseWriter.Write(p)
	w.count += count
	return count, err
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}
