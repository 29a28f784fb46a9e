package handler

import "github.com/tomekjam/ai-digest/pkg/slack"

type StoryResponse struct {
	Rank     int    `json:"rank"`
	Category string `json:"category"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Summary  string `json:"summary"`
	Impact   string `json:"impact"`
}

type PreviewResponse struct {
	Stories    []StoryResponse `json:"stories"`
	StoryCount int             `json:"story_count"`
	ModelUsed  string          `json:"model_used"`
	Message    slack.Message   `json:"message"`
}
