// token — независимая проверка access-токенов, выпущенных auth-сервисом.
// Реализация сознательно не делит код (и библиотеку подписи) с auth-сервисом:
// подпись проверяется через go-jose, из клеймов извлекается только subject.
// Контракт совместимости: для любого входа вердикт (принять/отклонить)
// совпадает с локальным верификатором auth-сервиса при одинаковом секрете —
// включая битые токены (отклоняются без паник) и токены на границе exp.
package token

import (
	"errors"
	"fmt"
	"time"

	jose "github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
)

var (
	// ErrInvalidToken — токен битый по формату или подписи.
	// Подпись чужим секретом неотличима от испорченного токена.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк (now >= exp).
	ErrTokenExpired = errors.New("token expired")
)

// Verifier проверяет HS256-токены общим с auth-сервисом секретом.
// Секрет неизменяем после создания; несколько Verifier с разными
// секретами спокойно живут в одном процессе.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

// NewVerifier создаёт Verifier с секретом из конфигурации процесса.
func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// WithNow подменяет источник времени. Нужен тестам границы exp.
func (v *Verifier) WithNow(now func() time.Time) *Verifier {
	v.now = now
	return v
}

// Subject проверяет подпись и срок действия токена и возвращает subject —
// аутентифицированного принципала запроса. Остальные клеймы не читаются.
//
// Сравнение exp инклюзивное и без leeway: токен с exp == now уже просрочен.
// Сравнение выполняется явно, а не через jwt.Claims.Validate: у go-jose
// строгая (">") проверка с дефолтным leeway, которая на границе разошлась бы
// с golang-jwt на стороне auth-сервиса.
func (v *Verifier) Subject(tokenStr string) (string, error) {
	const op = "posts.token.Subject"

	parsed, err := jwt.ParseSigned(tokenStr, []jose.SignatureAlgorithm{jose.HS256})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	var claims jwt.Claims
	if err := parsed.Claims(v.secret, &claims); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.Expiry != nil && !v.now().Before(claims.Expiry.Time()) {
		return "", fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return claims.Subject, nil
}
