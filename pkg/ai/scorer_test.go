package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAnalysisPlainJSON(t *testing.T) {
	reply := `{"score": 85, "match_analysis": {"skills_match": 90, "experience_relevance": 80, "education_alignment": 85, "keyword_optimization": 75}, "strengths": ["Strong Go experience"], "improvements": ["Add metrics"], "missing_keywords": ["Kubernetes"], "overall_assessment": "Good fit."}`

	a := ParseAnalysis(reply)

	assert.Equal(t, 85, a.Score)
	assert.Equal(t, 90, a.MatchAnalysis.SkillsMatch)
	assert.Equal(t, []string{"Kubernetes"}, a.MissingKeywords)
}

func TestParseAnalysisCodeFence(t *testing.T) {
	reply := "Here is the analysis:\n```json\n{\"score\": 42, \"overall_assessment\": \"Needs work.\"}\n```"

	a := ParseAnalysis(reply)

	assert.Equal(t, 42, a.Score)
	assert.Equal(t, "Needs work.", a.OverallAssessment)
}

func TestParseAnalysisClampsScore(t *testing.T) {
	assert.Equal(t, 100, ParseAnalysis(`{"score": 250}`).Score)
	assert.Equal(t, 0, ParseAnalysis(`{"score": -5}`).Score)
}

func TestParseAnalysisFallback(t *testing.T) {
	a := ParseAnalysis("I could not produce JSON, sorry.")

	assert.Equal(t, 70, a.Score)
	assert.NotEmpty(t, a.Strengths)
	assert.Contains(t, a.OverallAssessment, "could not produce JSON")
}

func TestNewOpenAIScorerUnconfigured(t *testing.T) {
	s := NewOpenAIScorer("", "")
	assert.False(t, s.IsConfigured())

	_, err := s.Score(context.Background(), "job", "resume")
	assert.Error(t, err)
}

func TestNewOpenAIScorerDefaultModel(t *testing.T) {
	s := NewOpenAIScorer("sk-test", "")
	assert.True(t, s.IsConfigured())
	assert.Equal(t, "gpt-4o-mini", s.model)

	s = NewOpenAIScorer("sk-test", "gpt-4o")
	assert.Equal(t, "gpt-4o", s.model)
}
