package domain

import (
	"context"

	"go-jobboard-backend/pkg/ai"
)

type ATSUsecase interface {
	// CheckResume extracts text from the uploaded resume and scores it
	// against the job description.
	CheckResume(ctx context.Context, filename, contentType string, size int64, content []byte, jobDescription string) (*ai.Analysis, error)
}
