// internal/model/topic.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Topic はコース内の1日分のマイクロレッスンを表します。
// (course_id, assigned_date, sort_order) の組は一意。
type Topic struct {
	TopicID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"topic_id"`
	CourseID     uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:uq_course_date_order" json:"course_id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"not null" json:"description"`
	Content      string         `gorm:"type:text;not null" json:"content"`
	Sources      pq.StringArray `gorm:"type:text[]" json:"sources"`
	AssignedDate time.Time      `gorm:"not null;index;uniqueIndex:uq_course_date_order" json:"assigned_date"`
	Order        int            `gorm:"column:sort_order;not null;uniqueIndex:uq_course_date_order" json:"order"` // order はSQL予約語のためカラム名は sort_order
	Completed    bool           `gorm:"not null;default:false" json:"completed"`
	CompletedAt  *time.Time     `json:"completed_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	// 関連 (Preload用)
	Course *Course `gorm:"foreignKey:CourseID;references:CourseID" json:"-"`
}

func (Topic) TableName() string {
	return "topics"
}

// GeneratedTopic は生成モデルが返すトピック1件分の構造
type GeneratedTopic struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Sources     []string `json:"sources"`
	Order       int      `json:"order"`
}
