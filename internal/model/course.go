// internal/model/course.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course はユーザーが取り組む学習コースを表します。
// 有効なコース (is_active = true) はユーザーごとに常に1件以下。
type Course struct {
	CourseID     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"course_id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	CourseName   string         `gorm:"not null" json:"course_name"`
	FocusArea    string         `gorm:"not null" json:"focus_area"`
	TopicsPerDay int            `gorm:"not null" json:"topics_per_day"`
	IsActive     bool           `gorm:"not null;default:false;index" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)
	Topics []Topic `gorm:"foreignKey:CourseID" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}

// コース作成リクエストDTO
type CreateCourseRequest struct {
	CourseName   string `json:"course_name" validate:"required,min=1,max=200"`
	FocusArea    string `json:"focus_area" validate:"required,min=10"`
	TopicsPerDay int    `json:"topics_per_day" validate:"required,min=1,max=10"`
}
