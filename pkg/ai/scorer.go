package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// MatchAnalysis breaks the overall score into per-dimension percentages.
type MatchAnalysis struct {
	SkillsMatch         int `json:"skills_match"`
	ExperienceRelevance int `json:"experience_relevance"`
	EducationAlignment  int `json:"education_alignment"`
	KeywordOptimization int `json:"keyword_optimization"`
}

// Analysis is the structured verdict for one resume against one job description.
type Analysis struct {
	Score             int           `json:"score"`
	MatchAnalysis     MatchAnalysis `json:"match_analysis"`
	Strengths         []string      `json:"strengths"`
	Improvements      []string      `json:"improvements"`
	MissingKeywords   []string      `json:"missing_keywords"`
	OverallAssessment string        `json:"overall_assessment"`
}

// ResumeScorer scores a resume against a job description.
type ResumeScorer interface {
	Score(ctx context.Context, jobDescription, resumeText string) (*Analysis, error)
}

// OpenAIScorer implements ResumeScorer using the OpenAI chat completion API.
type OpenAIScorer struct {
	client *openai.Client
	model  string
}

func NewOpenAIScorer(apiKey, model string) *OpenAIScorer {
	if apiKey == "" {
		return &OpenAIScorer{client: nil}
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIScorer{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// IsConfigured reports whether an API key was supplied.
func (s *OpenAIScorer) IsConfigured() bool {
	return s.client != nil
}

const scorePrompt = `You are an expert ATS (Applicant Tracking System) analyzer. Analyze the following resume against the job description and respond with a JSON object:
{
  "score": <number 0-100>,
  "match_analysis": {
    "skills_match": <percentage>,
    "experience_relevance": <percentage>,
    "education_alignment": <percentage>,
    "keyword_optimization": <percentage>
  },
  "strengths": ["..."],
  "improvements": ["..."],
  "missing_keywords": ["..."],
  "overall_assessment": "<friendly 2-3 sentence summary>"
}

Job Description:
%s

Resume Content:
%s

Respond with the JSON object only.`

func (s *OpenAIScorer) Score(ctx context.Context, jobDescription, resumeText string) (*Analysis, error) {
	if s.client == nil {
		return nil, fmt.Errorf("ai: scorer not configured")
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(scorePrompt, jobDescription, resumeText),
			},
		},
		MaxTokens: 800,
	})
	if err != nil {
		return nil, fmt.Errorf("ai: completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("ai: empty completion")
	}

	analysis := ParseAnalysis(resp.Choices[0].Message.Content)
	return analysis, nil
}

var jsonBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ParseAnalysis extracts the JSON verdict from a model reply. The model may
// wrap the object in a markdown code fence; unparseable output degrades to a
// conservative fallback instead of failing the request.
func ParseAnalysis(text string) *Analysis {
	payload := text
	if m := jsonBlockRegex.FindStringSubmatch(text); m != nil {
		payload = m[1]
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(payload)), &analysis); err != nil {
		analysis = Analysis{
			Score: 70,
			MatchAnalysis: MatchAnalysis{
				SkillsMatch:         70,
				ExperienceRelevance: 70,
				EducationAlignment:  70,
				KeywordOptimization: 70,
			},
			Strengths:         []string{"Your resume has relevant experience"},
			Improvements:      []string{"Add more keywords from the job description", "Highlight specific achievements"},
			MissingKeywords:   []string{},
			OverallAssessment: fallbackAssessment(text),
		}
	}

	analysis.Score = clamp(analysis.Score, 0, 100)
	return &analysis
}

func fallbackAssessment(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "Your resume shows potential. Consider tailoring it more closely to the job requirements."
	}
	if len(text) > 200 {
		return text[:200]
	}
	return text
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
