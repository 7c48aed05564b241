package models

import (
	"time"

	"github.com/google/uuid"
)

// Post — запись в таблице posts.
// Author — subject токена, которым был авторизован создавший запрос;
// клиентом не задаётся.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}
