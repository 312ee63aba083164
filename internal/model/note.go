// internal/model/note.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Note はトピックに対するユーザーのメモ。トピックごとに最大1件。
type Note struct {
	NoteID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"note_id"`
	TopicID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"topic_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Note) TableName() string {
	return "notes"
}

// メモ作成リクエストDTO
type PostNoteRequest struct {
	TopicID uuid.UUID `json:"topic_id" validate:"required"`
	Content string    `json:"content" validate:"required"`
}

// メモ更新リクエストDTO
type PatchNoteRequest struct {
	Content string `json:"content" validate:"required"`
}
