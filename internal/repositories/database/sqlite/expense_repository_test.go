package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ExpenseRepositoryTestSuite struct {
	suite.Suite
	ctx       context.Context
	repo      *SQLiteExpenseRepository
	reporting *reportingRepository
	now       time.Time
}

func (s *ExpenseRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	db, err := database.OpenSQLite(s.ctx, filepath.Join(s.T().TempDir(), "expenses.db"), true)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })

	m, err := database.NewMigrator(db, database.DriverSQLite)
	s.Require().NoError(err)
	_, err = database.MigrateUp(m)
	s.Require().NoError(err)

	s.repo = newSQLiteExpenseRepository(db)
	s.reporting = newReportingRepository(db).(*reportingRepository)
}

func TestExpenseRepositorySuite(t *testing.T) {
	suite.Run(t, new(ExpenseRepositoryTestSuite))
}

func (s *ExpenseRepositoryTestSuite) save(amount, description, category string, date time.Time) *domain.Expense {
	e := domain.NewExpense(domain.ExpenseFields{
		Amount:      decimal.RequireFromString(amount),
		Description: description,
		Category:    category,
		Date:        date,
	}, s.now)
	saved, err := s.repo.SaveExpense(s.ctx, e)
	s.Require().NoError(err)
	return saved
}

func day(d int) time.Time {
	return time.Date(2025, 1, d, 12, 0, 0, 0, time.UTC)
}

func (s *ExpenseRepositoryTestSuite) TestSaveAndFind() {
	saved := s.save("25.50", "Coffee", "Food", day(10))
	s.Positive(saved.ExpenseID)

	found, err := s.repo.FindExpenseByID(s.ctx, saved.ExpenseID)
	s.Require().NoError(err)
	s.Equal("25.50", found.Amount.StringFixed(2))
	s.Equal("Coffee", found.Description)
	s.Equal("Food", found.Category)
	s.Equal(day(10), found.Date)
	s.Equal(s.now, found.CreatedAt)
	s.Equal(s.now, found.UpdatedAt)
}

func (s *ExpenseRepositoryTestSuite) TestFindMissing() {
	_, err := s.repo.FindExpenseByID(s.ctx, 999)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ExpenseRepositoryTestSuite) TestListFiltersSortsAndPages() {
	s.save("10.00", "a", "Food", day(1))
	s.save("30.00", "b", "Travel", day(2))
	s.save("20.00", "c", "Food", day(3))
	s.save("5.00", "d", "Food", day(20))

	food := "Food"
	start, end := day(1), day(10)
	got, total, err := s.repo.ListExpenses(s.ctx, domain.ExpenseQuery{
		Filter:    domain.ExpenseFilter{Category: &food, StartDate: &start, EndDate: &end},
		SortBy:    domain.SortByAmount,
		SortOrder: domain.SortDesc,
		Page:      1,
		PerPage:   10,
	})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(got, 2)
	s.Equal("20.00", got[0].Amount.StringFixed(2))
	s.Equal("10.00", got[1].Amount.StringFixed(2))

	page2, total, err := s.repo.ListExpenses(s.ctx, domain.ExpenseQuery{
		SortBy: domain.SortByDate, SortOrder: domain.SortAsc, Page: 2, PerPage: 3,
	})
	s.Require().NoError(err)
	s.Equal(int64(4), total)
	s.Require().Len(page2, 1)
	s.Equal("d", page2[0].Description)

	beyond, _, err := s.repo.ListExpenses(s.ctx, domain.ExpenseQuery{
		SortBy: domain.SortByDate, SortOrder: domain.SortAsc, Page: 5, PerPage: 3,
	})
	s.Require().NoError(err)
	s.Empty(beyond)
}

func (s *ExpenseRepositoryTestSuite) TestListTiesBreakOnID() {
	first := s.save("10.00", "first", "Food", day(1))
	second := s.save("10.00", "second", "Food", day(1))

	got, _, err := s.repo.ListExpenses(s.ctx, domain.ExpenseQuery{
		SortBy: domain.SortByAmount, SortOrder: domain.SortDesc, Page: 1, PerPage: 10,
	})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(second.ExpenseID, got[0].ExpenseID)
	s.Equal(first.ExpenseID, got[1].ExpenseID)
}

func (s *ExpenseRepositoryTestSuite) TestUpdateAppliesInTransaction() {
	saved := s.save("25.50", "Coffee", "Food", day(10))
	later := s.now.Add(time.Hour)

	updated, err := s.repo.UpdateExpense(s.ctx, saved.ExpenseID, func(e *domain.Expense) error {
		amount := decimal.RequireFromString("30.00")
		e.Apply(domain.ExpensePatch{Amount: &amount}, later)
		return nil
	})
	s.Require().NoError(err)
	s.Equal("30.00", updated.Amount.StringFixed(2))
	s.Equal(later, updated.UpdatedAt)

	found, err := s.repo.FindExpenseByID(s.ctx, saved.ExpenseID)
	s.Require().NoError(err)
	s.Equal("30.00", found.Amount.StringFixed(2))
	s.Equal("Coffee", found.Description)
	s.Equal(s.now, found.CreatedAt)
	s.Equal(later, found.UpdatedAt)
}

func (s *ExpenseRepositoryTestSuite) TestUpdateAbortsOnApplyError() {
	saved := s.save("25.50", "Coffee", "Food", day(10))
	boom := errors.New("boom")

	_, err := s.repo.UpdateExpense(s.ctx, saved.ExpenseID, func(e *domain.Expense) error {
		e.Description = "changed"
		return boom
	})
	s.ErrorIs(err, boom)

	found, err := s.repo.FindExpenseByID(s.ctx, saved.ExpenseID)
	s.Require().NoError(err)
	s.Equal("Coffee", found.Description)
}

func (s *ExpenseRepositoryTestSuite) TestUpdateMissing() {
	called := false
	_, err := s.repo.UpdateExpense(s.ctx, 42, func(*domain.Expense) error {
		called = true
		return nil
	})
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.False(called)
}

func (s *ExpenseRepositoryTestSuite) TestDelete() {
	saved := s.save("25.50", "Coffee", "Food", day(10))

	s.Require().NoError(s.repo.DeleteExpense(s.ctx, saved.ExpenseID))
	s.ErrorIs(s.repo.DeleteExpense(s.ctx, saved.ExpenseID), apperrors.ErrNotFound)

	_, err := s.repo.FindExpenseByID(s.ctx, saved.ExpenseID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ExpenseRepositoryTestSuite) TestCategoriesAndCount() {
	count, err := s.repo.CountExpenses(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)

	s.save("1.00", "a", "Food", day(1))
	s.save("2.00", "b", "Food", day(2))
	s.save("3.00", "c", domain.UncategorizedCategory, day(3))

	categories, err := s.repo.ListCategories(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"Food", domain.UncategorizedCategory}, categories)

	count, err = s.repo.CountExpenses(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(3), count)

	s.NoError(s.repo.Ping(s.ctx))
}

func (s *ExpenseRepositoryTestSuite) TestSummarizeByCategory() {
	s.save("10.10", "a", "Food", day(1))
	s.save("5.05", "b", "Food", day(2))
	s.save("100.00", "c", "Travel", day(15))

	all, err := s.reporting.SummarizeByCategory(s.ctx, nil, nil)
	s.Require().NoError(err)
	totals := map[string]domain.CategoryTotal{}
	for _, row := range all {
		totals[row.Category] = row
	}
	s.Equal("15.15", totals["Food"].Amount.StringFixed(2))
	s.Equal(int64(2), totals["Food"].Count)
	s.Equal("100.00", totals["Travel"].Amount.StringFixed(2))

	start, end := day(1), day(10)
	ranged, err := s.reporting.SummarizeByCategory(s.ctx, &start, &end)
	s.Require().NoError(err)
	s.Require().Len(ranged, 1)
	s.Equal("Food", ranged[0].Category)

	empty, err := s.reporting.SummarizeByCategory(s.ctx, &end, &end)
	s.Require().NoError(err)
	s.Empty(empty)
}

func TestCents(t *testing.T) {
	assert.Equal(t, int64(2556), toCents(decimal.RequireFromString("25.555")))
	assert.Equal(t, "25.50", fromCents(2550).StringFixed(2))

	ts, err := decodeTime(encodeTime(day(3)).(string))
	require.NoError(t, err)
	assert.Equal(t, day(3), ts)

	ts, err = decodeTime("2025-01-03T12:00:00+00:00")
	require.NoError(t, err)
	assert.Equal(t, day(3), ts)
}
