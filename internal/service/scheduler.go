// internal/service/scheduler.go
package service

import (
	"time"

	"go_micro_learn/internal/model"

	"github.com/google/uuid"
)

// StartOfDay は与えられた時刻の0時 (UTC) を返します
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ScheduleTopics は生成されたトピック列を開始日から1日 topicsPerDay 件ずつ
// 順番に割り当てます。i番目のトピックは startDate + (i / topicsPerDay) 日に入る。
func ScheduleTopics(generated []model.GeneratedTopic, courseID uuid.UUID, topicsPerDay int, startDate time.Time) []*model.Topic {
	if topicsPerDay < 1 {
		topicsPerDay = 1
	}
	start := StartOfDay(startDate)

	topics := make([]*model.Topic, 0, len(generated))
	for i, g := range generated {
		dayOffset := i / topicsPerDay

		order := g.Order
		if order <= 0 {
			// 生成結果に order が無い場合は列の位置から補完する
			order = i + 1
		}

		topics = append(topics, &model.Topic{
			TopicID:      uuid.New(),
			CourseID:     courseID,
			Title:        g.Title,
			Description:  g.Description,
			Content:      g.Content,
			Sources:      g.Sources,
			AssignedDate: start.AddDate(0, 0, dayOffset),
			Order:        order,
			Completed:    false,
		})
	}

	// 生成結果の order は同一日内で重複しうる。そのまま挿入すると
	// (course_id, assigned_date, sort_order) の一意制約で丸ごと失敗するため、
	// 重複を検出した日は位置ベースで振り直す。
	for d := 0; d < len(topics); d += topicsPerDay {
		end := d + topicsPerDay
		if end > len(topics) {
			end = len(topics)
		}
		day := topics[d:end]
		seen := make(map[int]bool, len(day))
		duplicated := false
		for _, t := range day {
			if seen[t.Order] {
				duplicated = true
				break
			}
			seen[t.Order] = true
		}
		if duplicated {
			for j, t := range day {
				t.Order = j + 1
			}
		}
	}
	return topics
}
