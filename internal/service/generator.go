//go:generate mockery --name ContentGenerator --output ./mocks --outpkg mocks --case=underscore
// internal/service/generator.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go_micro_learn/internal/config"
	"go_micro_learn/internal/middleware"
	"go_micro_learn/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

// ContentGenerator は学習コンテンツの生成を抽象化します。
// audio/podcast/video/comic は現状プレースホルダ実装 (外部サービス未連携)。
type ContentGenerator interface {
	GenerateTopics(ctx context.Context, courseName, focusArea string, topicsPerDay, numberOfDays int) ([]model.GeneratedTopic, error)
	Chat(ctx context.Context, topicContent string, messages []model.ChatMessage) (*model.ChatMessage, error)
	GenerateGame(ctx context.Context, topicTitle, topicContent string) (string, error)
	BuildCustomFeature(ctx context.Context, topicContent, description string) (string, error)
	ConvertToAudio(ctx context.Context, content string) (string, error)
	ConvertToPodcast(ctx context.Context, content string) (string, error)
	ConvertToVideo(ctx context.Context, topicTitle, content string) (string, error)
	ConvertToComic(ctx context.Context, topicTitle, content string) ([]string, error)
}

type openAIGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerator(cfg *config.Config) ContentGenerator {
	return &openAIGenerator{
		client: openai.NewClient(cfg.OpenAI.APIKey),
		model:  cfg.OpenAI.Model,
	}
}

// GenerateTopics はコース全体のトピック一覧を一括生成します
func (g *openAIGenerator) GenerateTopics(ctx context.Context, courseName, focusArea string, topicsPerDay, numberOfDays int) ([]model.GeneratedTopic, error) {
	logger := middleware.GetLogger(ctx)
	totalTopics := topicsPerDay * numberOfDays

	prompt := fmt.Sprintf(`You are an expert curriculum designer creating micro-learning content. Generate %d detailed micro-learning topics for a course on "%s".

Focus Area: %s

Requirements:
1. Each topic should be learnable in 15-30 minutes
2. Topics should be clear, specific, and activity-oriented
3. Progress from beginner to intermediate/advanced concepts
4. Make learning easy and understandable
5. Each topic should build on previous ones logically

For each topic, provide:
- title: A clear, concise title
- description: A 1-2 sentence description of what will be learned
- content: Detailed explanation (300-500 words) with examples, analogies, and practical applications
- sources: 2-3 relevant URLs for further reading (can be documentation, articles, tutorials)

Return a JSON array of topics with this exact structure:
[
  {
    "title": "Topic Title",
    "description": "Brief description",
    "content": "Detailed content...",
    "sources": ["url1", "url2"],
    "order": 1
  }
]

IMPORTANT: Return ONLY the JSON array, no additional text or markdown formatting.`, totalTopics, courseName, focusArea)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an expert curriculum designer. Always respond with valid JSON only, no markdown formatting.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.7,
		MaxTokens:   4000,
	})
	if err != nil {
		logger.Error("OpenAI topic generation request failed", "error", err, "course_name", courseName)
		return nil, fmt.Errorf("openAIGenerator.GenerateTopics: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, &model.MalformedOutputError{Raw: "", Reason: "no choices returned"}
	}

	topics, err := parseGeneratedTopics(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	if len(topics) != totalTopics {
		// 件数ズレは許容する (モデルの揺らぎ)。スケジューリングは実件数基準。
		logger.Warn("Generated topic count differs from requested",
			"requested", totalTopics,
			"generated", len(topics),
		)
	}
	return topics, nil
}

// Chat はトピックの内容を前提知識としたチューター応答を返します
func (g *openAIGenerator) Chat(ctx context.Context, topicContent string, messages []model.ChatMessage) (*model.ChatMessage, error) {
	logger := middleware.GetLogger(ctx)

	systemPrompt := fmt.Sprintf(`You are a helpful learning assistant. The student is learning about the following topic:

%s

Help them understand the topic better by:
1. Answering questions clearly and concisely
2. Providing examples and analogies
3. Breaking down complex concepts
4. Encouraging critical thinking
5. Being patient and supportive

Keep responses concise (2-3 paragraphs max) unless asked for more detail.`, topicContent)

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	chatMessages = append(chatMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    chatMessages,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		logger.Error("OpenAI chat request failed", "error", err)
		return nil, fmt.Errorf("openAIGenerator.Chat: %w", err)
	}

	content := "Sorry, I could not generate a response."
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		content = resp.Choices[0].Message.Content
	}
	return &model.ChatMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: content,
	}, nil
}

// GenerateGame は自己完結したHTML5のミニゲームを生成します
func (g *openAIGenerator) GenerateGame(ctx context.Context, topicTitle, topicContent string) (string, error) {
	logger := middleware.GetLogger(ctx)

	prompt := fmt.Sprintf(`Create a simple, educational 2D game in HTML5 that teaches the concept: "%s".

Topic content: %s

Create a complete, self-contained HTML file that includes:
1. HTML structure
2. CSS styling (make it colorful and engaging)
3. JavaScript game logic using Canvas or DOM elements
4. The game should:
   - Be interactive and fun
   - Reinforce the learning concept
   - Have clear instructions
   - Track score or progress
   - Be playable immediately

Return ONLY the complete HTML code, no explanations or markdown formatting.`, topicTitle, topicContent)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an expert game developer. Return only valid HTML code, no markdown formatting.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.8,
		MaxTokens:   2000,
	})
	if err != nil {
		logger.Error("OpenAI game generation request failed", "error", err, "topic_title", topicTitle)
		return "", fmt.Errorf("openAIGenerator.GenerateGame: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", &model.MalformedOutputError{Raw: "", Reason: "no choices returned"}
	}

	gameHTML := stripCodeFence(resp.Choices[0].Message.Content)
	if gameHTML == "" {
		return "", &model.MalformedOutputError{Raw: resp.Choices[0].Message.Content, Reason: "empty game HTML"}
	}
	return gameHTML, nil
}

// BuildCustomFeature はユーザー記述に基づくインタラクティブ教材HTMLを生成します
func (g *openAIGenerator) BuildCustomFeature(ctx context.Context, topicContent, description string) (string, error) {
	logger := middleware.GetLogger(ctx)

	prompt := fmt.Sprintf(`Create a custom interactive learning feature based on this description: "%s"

Topic content: %s

Create a complete, self-contained HTML file with inline CSS and JavaScript that implements this custom feature.
Make it interactive, educational, and visually appealing.

Return ONLY the complete HTML code, no explanations or markdown formatting.`, description, topicContent)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an expert web developer. Return only valid HTML code, no markdown formatting.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.8,
		MaxTokens:   2000,
	})
	if err != nil {
		logger.Error("OpenAI custom feature request failed", "error", err)
		return "", fmt.Errorf("openAIGenerator.BuildCustomFeature: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", &model.MalformedOutputError{Raw: "", Reason: "no choices returned"}
	}

	html := stripCodeFence(resp.Choices[0].Message.Content)
	if html == "" {
		return "", &model.MalformedOutputError{Raw: resp.Choices[0].Message.Content, Reason: "empty custom feature HTML"}
	}
	return html, nil
}

// TODO: ElevenLabs / Amazon Polly 等のTTS連携が入るまでのプレースホルダ
func (g *openAIGenerator) ConvertToAudio(ctx context.Context, content string) (string, error) {
	return "Audio generation not yet implemented. Integrate with services like ElevenLabs, Amazon Polly, or Google TTS.", nil
}

func (g *openAIGenerator) ConvertToPodcast(ctx context.Context, content string) (string, error) {
	return "Podcast generation not yet implemented. This would create a conversational-style audio.", nil
}

func (g *openAIGenerator) ConvertToVideo(ctx context.Context, topicTitle, content string) (string, error) {
	return "Video generation not yet implemented. Integrate with services like D-ID, Synthesia, or create slideshows with narration.", nil
}

func (g *openAIGenerator) ConvertToComic(ctx context.Context, topicTitle, content string) ([]string, error) {
	return []string{"Comic generation not yet implemented. Integrate with DALL-E or Midjourney APIs."}, nil
}

// stripCodeFence はモデルが付けがちなMarkdownコードフェンスを除去します
func stripCodeFence(s string) string {
	s = strings.ReplaceAll(s, "```json\n", "")
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```html\n", "")
	s = strings.ReplaceAll(s, "```html", "")
	s = strings.ReplaceAll(s, "```\n", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// parseGeneratedTopics はモデル出力をJSON配列として解釈・検証します。
// 解釈できない出力は生テキスト付きの MalformedOutputError として返す。
func parseGeneratedTopics(raw string) ([]model.GeneratedTopic, error) {
	cleaned := stripCodeFence(raw)

	var topics []model.GeneratedTopic
	if err := json.Unmarshal([]byte(cleaned), &topics); err != nil {
		return nil, &model.MalformedOutputError{Raw: raw, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if len(topics) == 0 {
		return nil, &model.MalformedOutputError{Raw: raw, Reason: "empty topic array"}
	}
	for i, t := range topics {
		if t.Title == "" || t.Content == "" {
			return nil, &model.MalformedOutputError{
				Raw:    raw,
				Reason: fmt.Sprintf("topic %d is missing title or content", i),
			}
		}
	}
	return topics, nil
}
