package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/validation"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/SscSPs/expense_tracker/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

var errInvalidJSON = errors.New("invalid JSON payload")

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService   portssvc.ExpenseSvcFacade
	defaultPerPage   int
	maxContentLength int64
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade, defaultPerPage int, maxContentLength int64) *expenseHandler {
	if defaultPerPage <= 0 {
		defaultPerPage = pagination.DefaultPerPage
	}
	return &expenseHandler{
		expenseService:   es,
		defaultPerPage:   defaultPerPage,
		maxContentLength: maxContentLength,
	}
}

// registerExpenseRoutes registers routes related to expenses.
func registerExpenseRoutes(rg *gin.RouterGroup, h *expenseHandler) {
	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:id", h.getExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
	rg.GET("/categories", h.listCategories)
}

// createExpense godoc
// @Summary Create a new expense
// @Description Validates, normalizes and stores a new expense. Unknown fields are ignored.
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error, invalid JSON or content type"
// @Failure 413 {object} dto.ErrorResponse "Request body too large"
// @Failure 500 {object} dto.ErrorResponse "Failed to create expense"
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	input, ok := h.readJSONObject(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Expense created successfully", slog.Int64("expense_id", expense.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists expenses with filtering, sorting and pagination
// @Tags expenses
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page (1-100)" default(20)
// @Param category query string false "Exact category"
// @Param start_date query string false "Inclusive lower date bound (ISO 8601)"
// @Param end_date query string false "Inclusive upper date bound (ISO 8601)"
// @Param sort_by query string false "date, amount, category, created_at or description" default(date)
// @Param sort_order query string false "asc or desc" default(desc)
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve expenses"
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListExpenses", slog.String("error", err.Error()))
		respondBadRequest(c, dto.CodeInvalidParameters, "Invalid query parameters: "+err.Error())
		return
	}

	query, err := h.toExpenseQuery(params)
	if err != nil {
		logger.Warn("Invalid query params for ListExpenses", slog.String("error", err.Error()))
		respondBadRequest(c, dto.CodeInvalidParameters, "Invalid query parameters: "+err.Error())
		return
	}

	expenses, total, err := h.expenseService.ListExpenses(c.Request.Context(), query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Debug("Expenses listed successfully", slog.Int("count", len(expenses)), slog.Int64("total", total))
	c.JSON(http.StatusOK, dto.ListExpensesResponse{
		Expenses:   dto.ToListExpenseResponse(expenses),
		Pagination: pagination.NewMeta(query.Page, query.PerPage, total),
	})
}

// toExpenseQuery converts the raw query string values. Range checks are left
// to the service so they surface as validation errors.
func (h *expenseHandler) toExpenseQuery(p dto.ListExpensesParams) (domain.ExpenseQuery, error) {
	query := domain.ExpenseQuery{
		SortBy:    domain.SortField(strings.TrimSpace(p.SortBy)),
		SortOrder: domain.SortOrder(strings.TrimSpace(p.SortOrder)),
		Page:      1,
		PerPage:   h.defaultPerPage,
	}

	var err error
	if query.Page, err = intParam("page", p.Page, 1); err != nil {
		return query, err
	}
	if query.PerPage, err = intParam("per_page", p.PerPage, h.defaultPerPage); err != nil {
		return query, err
	}
	if category := strings.TrimSpace(p.Category); category != "" {
		query.Filter.Category = &category
	}
	if query.Filter.StartDate, err = dateParam("start_date", p.StartDate); err != nil {
		return query, err
	}
	if query.Filter.EndDate, err = dateParam("end_date", p.EndDate); err != nil {
		return query, err
	}
	return query, nil
}

func intParam(name, raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return n, nil
}

func dateParam(name, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := validation.ParseDateTime(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an ISO 8601 date, got %q", name, raw)
	}
	return &t, nil
}

// getExpense godoc
// @Summary Get an expense by ID
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid expense ID"
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve expense"
// @Router /expenses/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	expenseID, ok := expenseIDParam(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// updateExpense godoc
// @Summary Update an expense
// @Description Updates only the supplied fields of an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Fields to change"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error, invalid JSON or content type"
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Failure 413 {object} dto.ErrorResponse "Request body too large"
// @Failure 500 {object} dto.ErrorResponse "Failed to update expense"
// @Router /expenses/{id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expenseID, ok := expenseIDParam(c)
	if !ok {
		return
	}

	input, ok := h.readJSONObject(c)
	if !ok {
		return
	}
	if len(input) == 0 {
		respondBadRequest(c, dto.CodeValidation, "Update data cannot be empty")
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), expenseID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Expense updated successfully", slog.Int64("expense_id", expense.ExpenseID))
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Param id path int true "Expense ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid expense ID"
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete expense"
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expenseID, ok := expenseIDParam(c)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Expense deleted successfully", slog.Int64("expense_id", expenseID))
	c.Status(http.StatusNoContent)
}

// listCategories godoc
// @Summary List categories
// @Description Lists every category in use, sorted alphabetically
// @Tags expenses
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve categories"
// @Router /categories [get]
func (h *expenseHandler) listCategories(c *gin.Context) {
	categories, err := h.expenseService.ListCategories(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

// expenseIDParam parses the :id path segment. Values that are not integers
// get the same validation error the service returns for non-positive ids.
func expenseIDParam(c *gin.Context) (int64, bool) {
	expenseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid expense ID in path", slog.String("id", c.Param("id")))
		respondWithError(c, apperrors.NewValidationError("Expense ID must be a positive integer"))
		return 0, false
	}
	return expenseID, true
}

// readJSONObject checks the content type and decodes the body into a
// generic object. Numbers keep their literal text. It writes the error
// response itself and reports false on failure.
func (h *expenseHandler) readJSONObject(c *gin.Context) (map[string]any, bool) {
	if !isJSONContentType(c.GetHeader("Content-Type")) {
		respondBadRequest(c, dto.CodeInvalidContentType, "Content-Type must be application/json")
		return nil, false
	}

	payload, err := decodeJSON(c.Request.Body)
	if err != nil {
		if middleware.IsBodyTooLarge(err) {
			middleware.AbortRequestTooLarge(c, h.maxContentLength)
			return nil, false
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to decode JSON body", slog.String("error", err.Error()))
		respondBadRequest(c, dto.CodeInvalidJSON, "Invalid JSON payload")
		return nil, false
	}

	input, ok := payload.(map[string]any)
	if !ok {
		respondWithError(c, apperrors.NewValidationError("Invalid input type"))
		return nil, false
	}
	return input, true
}

func decodeJSON(body io.Reader) (any, error) {
	if body == nil {
		return nil, errInvalidJSON
	}
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, errInvalidJSON
	}
	// Anything after the first value other than whitespace is malformed.
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); err != io.EOF {
		if err == nil {
			return nil, errInvalidJSON
		}
		return nil, err
	}
	return payload, nil
}

func isJSONContentType(header string) bool {
	if header == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}
