package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/ai"
	"go-jobboard-backend/pkg/apperror"
)

const maxResumeSize = 5 << 20 // 5 MB

type atsUsecase struct {
	scorer ai.ResumeScorer
}

func NewATSUsecase(scorer ai.ResumeScorer) domain.ATSUsecase {
	return &atsUsecase{scorer: scorer}
}

func (u *atsUsecase) CheckResume(ctx context.Context, filename, contentType string, size int64, content []byte, jobDescription string) (*ai.Analysis, error) {
	if u.scorer == nil {
		return nil, apperror.New(503, "Resume scoring is not configured", nil)
	}
	if size > maxResumeSize {
		return nil, apperror.BadRequest("Resume file must be 5MB or smaller")
	}

	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		return nil, apperror.BadRequest("Job description is required")
	}

	text := extractText(content)
	if text == "" {
		return nil, apperror.BadRequest("Could not extract text from this resume; please upload a text-based file")
	}

	analysis, err := u.scorer.Score(ctx, jobDescription, text)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return analysis, nil
}

// extractText pulls readable text out of an uploaded resume. Plain text and
// text-based PDFs yield usable content; scanned documents come back empty.
func extractText(content []byte) string {
	if utf8.Valid(content) {
		return strings.TrimSpace(string(content))
	}

	// Salvage printable runs from binary formats.
	var b strings.Builder
	run := 0
	for _, c := range content {
		if c == '\n' || c == '\t' || (c >= 0x20 && c < 0x7f) {
			b.WriteByte(c)
			run++
		} else {
			if run > 0 && run < 4 {
				// Short runs are most likely structure noise, not prose.
				s := b.String()
				b.Reset()
				b.WriteString(s[:len(s)-run])
			}
			if run > 0 {
				b.WriteByte(' ')
			}
			run = 0
		}
	}
	text := strings.Join(strings.Fields(b.String()), " ")
	if len(text) < 40 {
		return ""
	}
	return text
}
