// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// 設定ファイルが見つからないディレクトリを指定し、デフォルト値の適用を確認する
	Cfg = Config{}
	err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultServerPort, Cfg.Server.Port)
	assert.Equal(t, DefaultLogLevel, Cfg.Log.Level)
	assert.Equal(t, DefaultGenerationDays, Cfg.Generation.NumberOfDays)
	assert.Equal(t, DefaultJWTExpiryHours, Cfg.JWT.ExpiryHours)
	assert.Equal(t, DefaultOpenAIModel, Cfg.OpenAI.Model)
}
