// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "MicroLearn"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultGenerationDays = 30
	DefaultJWTExpiryHours = 24 * 7 // 元の仕様に合わせて7日間
	DefaultOpenAIModel    = "gpt-4o-mini"
)
