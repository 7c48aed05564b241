package models

import "time"

// AccessToken — выпущенный access-токен и момент его истечения.
// Токен самодостаточен (подпись + exp), на сервере не персистится;
// списка отзыва нет — токен "умирает" только по истечению срока.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}
