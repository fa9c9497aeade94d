package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"Name":     "Name",
	"Email":    "Email",
	"Password": "Password",
	"Role":     "Role",
	"Phone":    "Phone number",
	"Location": "Location",
	"Bio":      "Bio",

	"Title":          "Job title",
	"Description":    "Description",
	"Company":        "Company",
	"Salary":         "Salary",
	"EmploymentType": "Employment type",
	"SkillIDs":       "Skills",

	"ReceiverID": "Receiver",
	"Content":    "Message content",
	"Status":     "Status",
	"Names":      "Skill names",
}

// Translate converts validator errors into user-facing messages. Unknown
// fields fall back to the raw field name so new DTOs never panic here.
// Errors that did not come from validator (malformed JSON, type mismatches)
// return nil so callers can substitute a generic message instead of leaking
// decoder internals.
func Translate(err error) []string {
	var verrs validator.ValidationErrors
	if ok := asValidationErrors(err, &verrs); !ok {
		return nil
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label, ok := FieldLabels[fe.Field()]
		if !ok {
			label = fe.Field()
		}
		messages = append(messages, messageFor(label, fe))
	}
	return messages
}

func messageFor(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "valid_name":
		return fmt.Sprintf("%s contains invalid characters", label)
	case "valid_phone":
		return fmt.Sprintf("%s must be a valid phone number", label)
	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji", label)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = verrs
	return true
}
