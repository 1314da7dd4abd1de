package validation

import (
	"strings"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/utils/accounting"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCategory trims the category, substitutes the default for blank
// input and title-cases everything else.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return domain.UncategorizedCategory
	}
	// A Caser keeps state, so each call gets its own.
	return cases.Title(language.Und).String(category)
}

// NormalizeFields canonicalizes validated creation fields.
func NormalizeFields(f domain.ExpenseFields) domain.ExpenseFields {
	return domain.ExpenseFields{
		Amount:      accounting.RoundAmount(f.Amount),
		Description: strings.TrimSpace(f.Description),
		Category:    NormalizeCategory(f.Category),
		Date:        f.Date.UTC(),
	}
}

// NormalizePatch canonicalizes only the fields present in the patch.
func NormalizePatch(p domain.ExpensePatch) domain.ExpensePatch {
	var out domain.ExpensePatch
	if p.Amount != nil {
		amount := accounting.RoundAmount(*p.Amount)
		out.Amount = &amount
	}
	if p.Description != nil {
		description := strings.TrimSpace(*p.Description)
		out.Description = &description
	}
	if p.Category != nil {
		category := NormalizeCategory(*p.Category)
		out.Category = &category
	}
	if p.Date != nil {
		date := p.Date.UTC()
		out.Date = &date
	}
	return out
}
