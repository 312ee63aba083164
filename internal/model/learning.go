// internal/model/learning.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LearningMode はトピックの提示形式
type LearningMode string

const (
	ModeChat    LearningMode = "chat"
	ModeGame    LearningMode = "game"
	ModeAudio   LearningMode = "audio"
	ModePodcast LearningMode = "podcast"
	ModeVideo   LearningMode = "video"
	ModeComic   LearningMode = "comic"
	ModeCustom  LearningMode = "custom"
)

// LearningSession は学習操作1回ごとの追記専用ログ
type LearningSession struct {
	SessionID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"session_id"`
	TopicID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"topic_id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Mode      LearningMode   `gorm:"type:varchar(20);not null" json:"mode"`
	Data      datatypes.JSON `json:"data,omitempty"` // チャットの全文など任意の構造化ペイロード
	CreatedAt time.Time      `json:"created_at"`
}

func (LearningSession) TableName() string {
	return "learning_sessions"
}

// ConversionStatus は生成アーティファクトの状態
type ConversionStatus string

const (
	ConversionCompleted ConversionStatus = "completed"
	ConversionFailed    ConversionStatus = "failed"
)

// MediaConversion は (topic, mode) ごとの生成済みアーティファクトのキャッシュ。
// (topic_id, mode) に複合ユニーク制約を張り、同時リクエストでも1件しか作られない。
type MediaConversion struct {
	ConversionID uuid.UUID        `gorm:"type:uuid;primaryKey" json:"conversion_id"`
	TopicID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_topic_mode" json:"topic_id"`
	Mode         LearningMode     `gorm:"type:varchar(20);not null;uniqueIndex:uq_topic_mode" json:"mode"`
	Content      string           `gorm:"type:text" json:"content"`
	URL          string           `gorm:"type:text" json:"url"`
	Status       ConversionStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (MediaConversion) TableName() string {
	return "media_conversions"
}

// ChatMessage はチャットモードの1発言
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
}

// チャットリクエストDTO。クライアントが会話履歴全体を毎回送り直す。
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

// カスタム機能リクエストDTO
type CustomRequest struct {
	Description string `json:"description" validate:"required"`
}

// 各モードのレスポンスDTO
type GameResponse struct {
	GameHTML string `json:"game_html"`
	GameURL  string `json:"game_url"`
}

type AudioResponse struct {
	AudioURL string `json:"audio_url"`
}

type VideoResponse struct {
	VideoURL string `json:"video_url"`
}

type ComicResponse struct {
	ComicURL string   `json:"comic_url"`
	Panels   []string `json:"panels"`
}

type CustomResponse struct {
	Content string `json:"content"`
}
