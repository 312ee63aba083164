// internal/service/scheduler_test.go
package service

import (
	"testing"
	"time"

	"go_micro_learn/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	tests := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{
			name:  "正常系: UTCの昼",
			input: time.Date(2025, 6, 15, 13, 45, 30, 0, time.UTC),
			want:  time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "正常系: すでに0時",
			input: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "正常系: タイムゾーン付きはUTCに変換してから切り捨てる",
			input: time.Date(2025, 6, 15, 7, 0, 0, 0, jst), // UTCでは前日22時
			want:  time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfDay(tt.input))
		})
	}
}

func TestScheduleTopics(t *testing.T) {
	courseID := uuid.New()
	start := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	day0 := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("正常系: 1日2件で4件を2日に割り当てる", func(t *testing.T) {
		generated := []model.GeneratedTopic{
			{Title: "t1", Content: "c1", Order: 1},
			{Title: "t2", Content: "c2", Order: 2},
			{Title: "t3", Content: "c3", Order: 3},
			{Title: "t4", Content: "c4", Order: 4},
		}

		topics := ScheduleTopics(generated, courseID, 2, start)

		require.Len(t, topics, 4)
		assert.Equal(t, day0, topics[0].AssignedDate)
		assert.Equal(t, day0, topics[1].AssignedDate)
		assert.Equal(t, day0.AddDate(0, 0, 1), topics[2].AssignedDate)
		assert.Equal(t, day0.AddDate(0, 0, 1), topics[3].AssignedDate)

		for i, topic := range topics {
			assert.Equal(t, courseID, topic.CourseID)
			assert.Equal(t, generated[i].Order, topic.Order)
			assert.Equal(t, generated[i].Title, topic.Title)
			assert.False(t, topic.Completed)
			assert.NotEqual(t, uuid.Nil, topic.TopicID)
		}
	})

	t.Run("正常系: 件数が割り切れない場合は最終日が端数になる", func(t *testing.T) {
		generated := []model.GeneratedTopic{
			{Title: "t1", Content: "c1", Order: 1},
			{Title: "t2", Content: "c2", Order: 2},
			{Title: "t3", Content: "c3", Order: 3},
		}

		topics := ScheduleTopics(generated, courseID, 2, start)

		require.Len(t, topics, 3)
		assert.Equal(t, day0, topics[0].AssignedDate)
		assert.Equal(t, day0, topics[1].AssignedDate)
		assert.Equal(t, day0.AddDate(0, 0, 1), topics[2].AssignedDate)
	})

	t.Run("正常系: orderが無い場合は位置から補完する", func(t *testing.T) {
		generated := []model.GeneratedTopic{
			{Title: "t1", Content: "c1"},
			{Title: "t2", Content: "c2"},
		}

		topics := ScheduleTopics(generated, courseID, 1, start)

		require.Len(t, topics, 2)
		assert.Equal(t, 1, topics[0].Order)
		assert.Equal(t, 2, topics[1].Order)
	})

	t.Run("正常系: 同一日内でorderが重複した日は位置ベースで振り直す", func(t *testing.T) {
		// 生成結果のorderは信用できない。重複のまま挿入すると
		// 一意制約でコース作成全体が失敗する。
		generated := []model.GeneratedTopic{
			{Title: "t1", Content: "c1", Order: 1},
			{Title: "t2", Content: "c2", Order: 1}, // day0内で重複
			{Title: "t3", Content: "c3", Order: 3},
			{Title: "t4", Content: "c4", Order: 4},
		}

		topics := ScheduleTopics(generated, courseID, 2, start)

		require.Len(t, topics, 4)
		// 重複した日 (day0) だけ振り直し
		assert.Equal(t, 1, topics[0].Order)
		assert.Equal(t, 2, topics[1].Order)
		// 重複の無い日 (day1) は生成結果のorderをそのまま使う
		assert.Equal(t, 3, topics[2].Order)
		assert.Equal(t, 4, topics[3].Order)
	})

	t.Run("正常系: 全件orderが同じでも日毎に一意になる", func(t *testing.T) {
		generated := []model.GeneratedTopic{
			{Title: "t1", Content: "c1", Order: 1},
			{Title: "t2", Content: "c2", Order: 1},
			{Title: "t3", Content: "c3", Order: 1},
		}

		topics := ScheduleTopics(generated, courseID, 2, start)

		require.Len(t, topics, 3)
		assert.Equal(t, 1, topics[0].Order)
		assert.Equal(t, 2, topics[1].Order)
		// 端数の最終日は1件のみなので重複は発生しない
		assert.Equal(t, 1, topics[2].Order)
	})

	t.Run("正常系: 空入力は空を返す", func(t *testing.T) {
		topics := ScheduleTopics(nil, courseID, 2, start)
		assert.Empty(t, topics)
	})
}
