package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"tax-practice-management/internal/task"
	"tax-practice-management/pkg/openai"
)

// taskCategories are the recognized classification targets.
var taskCategories = []string{
	"Payroll Processing",
	"Tax Preparation",
	"Documentation",
	"Client Management",
	"Employee Management",
}

// defaultCategory is used when the model's answer matches no known category.
const defaultCategory = "Documentation"

const classifySystemPrompt = `You classify accounting-practice tasks into exactly one category.
Categories: Payroll Processing, Tax Preparation, Documentation, Client Management, Employee Management.
Respond with JSON only: {"category": "...", "suggestions": [{"category": "...", "confidence": 0.0}]}`

// classifyResult mirrors the JSON the model is instructed to return.
type classifyResult struct {
	Category    string            `json:"category"`
	Suggestions []task.Suggestion `json:"suggestions"`
}

// Classify assigns a category to a task via the classification service.
// Service and parse failures fall back to the default category rather than
// failing the caller's workflow.
func (uc *implUseCase) Classify(ctx context.Context, input task.ClassifyInput) (task.ClassifyOutput, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return task.ClassifyOutput{}, task.ErrClassifyRequired
	}
	if uc.openai == nil {
		return task.ClassifyOutput{Category: defaultCategory}, nil
	}

	resp, err := uc.openai.ChatCompletion(ctx, &openai.Request{
		Messages: []openai.Message{
			{Role: "system", Content: classifySystemPrompt},
			{Role: "user", Content: "Title: " + input.Title + "\nDescription: " + input.Description},
		},
		Temperature: 0.2,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task/usecase.Classify: %v", err)
		return task.ClassifyOutput{}, task.ErrClassifyFailed
	}
	if len(resp.Choices) == 0 {
		return task.ClassifyOutput{Category: defaultCategory}, nil
	}

	var result classifyResult
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.Trim(content, "` \n")
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		uc.l.Warnf(ctx, "task/usecase.Classify unparseable answer: %v", err)
		return task.ClassifyOutput{Category: defaultCategory}, nil
	}

	if !knownCategory(result.Category) {
		result.Category = defaultCategory
	}
	return task.ClassifyOutput{
		Category:    result.Category,
		Suggestions: clampSuggestions(result.Suggestions),
	}, nil
}

func knownCategory(c string) bool {
	for _, known := range taskCategories {
		if strings.EqualFold(c, known) {
			return true
		}
	}
	return false
}

// clampSuggestions drops unknown categories and clamps confidences to [0, 1].
func clampSuggestions(in []task.Suggestion) []task.Suggestion {
	var out []task.Suggestion
	for _, s := range in {
		if !knownCategory(s.Category) {
			continue
		}
		if s.Confidence < 0 {
			s.Confidence = 0
		}
		if s.Confidence > 1 {
			s.Confidence = 1
		}
		out = append(out, s)
	}
	return out
}
