package dto

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/utils"
)

// SummaryParams holds the optional date bounds of a summary request.
type SummaryParams struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// DateRangeResponse echoes the bounds a summary was computed over.
type DateRangeResponse struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// CategorySummaryResponse is one row of the category breakdown.
type CategorySummaryResponse struct {
	Category string `json:"category" example:"Food"`
	Amount   string `json:"amount" example:"40.25"`
	Count    int64  `json:"count" example:"3"`
}

// SummaryResponse represents the expense summary report
type SummaryResponse struct {
	TotalAmount  string                    `json:"total_amount" example:"70.25"`
	ExpenseCount int64                     `json:"expense_count" example:"6"`
	DateRange    DateRangeResponse         `json:"date_range"`
	Categories   []CategorySummaryResponse `json:"categories"`
}

// ToSummaryResponse converts a domain.ExpenseSummary to its wire form.
func ToSummaryResponse(s *domain.ExpenseSummary) SummaryResponse {
	res := SummaryResponse{
		TotalAmount:  utils.FormatAmount(s.TotalAmount),
		ExpenseCount: s.ExpenseCount,
		Categories:   make([]CategorySummaryResponse, len(s.Categories)),
	}
	if s.StartDate != nil {
		start := FormatTimestamp(*s.StartDate)
		res.DateRange.Start = &start
	}
	if s.EndDate != nil {
		end := FormatTimestamp(*s.EndDate)
		res.DateRange.End = &end
	}
	for i, c := range s.Categories {
		res.Categories[i] = CategorySummaryResponse{
			Category: c.Category,
			Amount:   utils.FormatAmount(c.Amount),
			Count:    c.Count,
		}
	}
	return res
}
