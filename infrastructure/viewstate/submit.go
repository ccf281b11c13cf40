package viewstate

import (
	"context"
	"sort"
	"strings"

	"companysite/models"
)

// Submitter receives a form record when the user presses Submit.
type Submitter interface {
	SubmitProduct(ctx context.Context, form models.ProductForm) error
	SubmitAbout(ctx context.Context, form models.AboutForm) error
}

// NopSubmitter accepts every submission and does nothing with it.
type NopSubmitter struct{}

func (NopSubmitter) SubmitProduct(context.Context, models.ProductForm) error { return nil }

func (NopSubmitter) SubmitAbout(context.Context, models.AboutForm) error { return nil }

// ValidationError reports field-level problems with a submitted form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
