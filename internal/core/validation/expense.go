package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

const (
	fieldAmount      = "amount"
	fieldDescription = "description"
	fieldCategory    = "category"
	fieldDate        = "date"
)

// MaxAmount is the largest amount a NUMERIC(10,2) column can hold.
var MaxAmount = decimal.RequireFromString("99999999.99")

// Amounts are only rounded or compared once their exponent and coefficient
// fall inside these bounds. Rescaling costs grow with 10^|exponent|.
const (
	minAmountExponent  = -20
	maxAmountExponent  = 10
	maxCoefficientBits = 128
)

// Messages keyed by field and failing validator tag.
var fieldMessages = map[string]map[string]string{
	fieldAmount: {
		"required":       "Amount is required",
		"positive_money": "Amount must be positive",
		"max_money":      "Amount must not exceed " + MaxAmount.StringFixed(domain.AmountPlaces),
	},
	fieldDescription: {
		"required":        "Description is required",
		"notblank":        "Description cannot be empty",
		"description_len": fmt.Sprintf("Description must be between 1 and %d characters", domain.MaxDescriptionLength),
	},
	fieldCategory: {
		"category_len": fmt.Sprintf("Category must be %d characters or less", domain.MaxCategoryLength),
	},
}

// createInput is the typed form of a creation payload checked by the validator.
type createInput struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required,positive_money,max_money"`
	Description *string          `json:"description" validate:"required,notblank,description_len"`
	Category    *string          `json:"category" validate:"omitempty,category_len"`
}

// updateInput is the typed form of a partial update. omitnil keeps a supplied
// empty description subject to notblank.
type updateInput struct {
	Amount      *decimal.Decimal `json:"amount" validate:"omitnil,positive_money,max_money"`
	Description *string          `json:"description" validate:"omitnil,notblank,description_len"`
	Category    *string          `json:"category" validate:"omitempty,category_len"`
}

// Validator turns untyped request payloads into typed expense fields.
// It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewValidator creates a Validator whose default expense date is the current UTC time.
func NewValidator() *Validator {
	return NewValidatorWithClock(func() time.Time { return time.Now().UTC() })
}

// NewValidatorWithClock creates a Validator using now for defaulted dates.
func NewValidatorWithClock(now func() time.Time) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Decimals are validated through their canonical string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterAlias("description_len", fmt.Sprintf("max=%d", domain.MaxDescriptionLength))
	v.RegisterAlias("category_len", fmt.Sprintf("max=%d", domain.MaxCategoryLength))
	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "positive_money", positiveMoney)
	mustRegister(v, "max_money", maxMoney)

	return &Validator{validate: v, now: now}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %s validator: %v", tag, err))
	}
}

// positiveMoney passes when the amount stays above zero once quantized to cents.
func positiveMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive() && d.Round(domain.AmountPlaces).IsPositive()
}

func maxMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.Round(domain.AmountPlaces).LessThanOrEqual(MaxAmount)
}

// ValidateCreate checks a creation payload. Unknown keys are ignored.
// A missing or null category is left empty for the normalizer to default;
// a missing or null date becomes the current time.
func (v *Validator) ValidateCreate(input map[string]any) (domain.ExpenseFields, error) {
	errs := fieldErrors{}
	var in createInput

	if raw, ok := input[fieldAmount]; ok && raw != nil {
		in.Amount = errs.amount(raw)
	}
	if raw, ok := input[fieldDescription]; ok && raw != nil {
		in.Description = errs.str(fieldDescription, raw, "Description must be a string")
	}
	if raw, ok := input[fieldCategory]; ok && raw != nil {
		in.Category = errs.str(fieldCategory, raw, "Category must be a string")
	}
	date := v.now()
	if raw, ok := input[fieldDate]; ok && raw != nil {
		if t := errs.date(raw); t != nil {
			date = *t
		}
	}

	v.check(in, errs, typeFailures(errs))
	if len(errs) > 0 {
		return domain.ExpenseFields{}, apperrors.NewFieldValidationError(errs)
	}

	fields := domain.ExpenseFields{
		Amount:      *in.Amount,
		Description: *in.Description,
		Date:        date,
	}
	if in.Category != nil {
		fields.Category = *in.Category
	}
	return fields, nil
}

// ValidateUpdate checks a partial update payload. Unknown keys, including
// server-owned ones like id and created_at, are ignored; a payload made only
// of them counts as empty. A null category resets it to the default and a
// null date is ignored.
func (v *Validator) ValidateUpdate(input map[string]any) (domain.ExpensePatch, error) {
	errs := fieldErrors{}
	var in updateInput
	var patch domain.ExpensePatch
	supplied := false

	if raw, ok := input[fieldAmount]; ok {
		supplied = true
		if raw == nil {
			errs.add(fieldAmount, "Amount cannot be null")
		} else {
			in.Amount = errs.amount(raw)
		}
	}
	if raw, ok := input[fieldDescription]; ok {
		supplied = true
		if raw == nil {
			errs.add(fieldDescription, "Description cannot be null")
		} else {
			in.Description = errs.str(fieldDescription, raw, "Description must be a string")
		}
	}
	if raw, ok := input[fieldCategory]; ok {
		supplied = true
		if raw == nil {
			empty := ""
			in.Category = &empty
		} else {
			in.Category = errs.str(fieldCategory, raw, "Category must be a string")
		}
	}
	if raw, ok := input[fieldDate]; ok {
		supplied = true
		if raw != nil {
			patch.Date = errs.date(raw)
		}
	}

	if !supplied {
		return domain.ExpensePatch{}, apperrors.NewValidationError("At least one field must be provided for update")
	}

	v.check(in, errs, typeFailures(errs))
	if len(errs) > 0 {
		return domain.ExpensePatch{}, apperrors.NewFieldValidationError(errs)
	}

	patch.Amount = in.Amount
	patch.Description = in.Description
	patch.Category = in.Category
	return patch, nil
}

// check runs the struct rules, skipping fields that already failed type coercion.
func (v *Validator) check(in any, errs fieldErrors, skip map[string]bool) {
	err := v.validate.Struct(in)
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.add("_schema", err.Error())
		return
	}
	for _, fe := range verrs {
		field := fe.Field()
		if skip[field] {
			continue
		}
		msg, ok := fieldMessages[field][fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		}
		errs.add(field, msg)
	}
}

type fieldErrors map[string][]string

func (e fieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

func typeFailures(e fieldErrors) map[string]bool {
	skip := make(map[string]bool, len(e))
	for field := range e {
		skip[field] = true
	}
	return skip
}

func (e fieldErrors) amount(raw any) *decimal.Decimal {
	d, err := toDecimal(raw)
	if err != nil {
		e.add(fieldAmount, "Amount must be a valid number")
		return nil
	}
	return &d
}

func (e fieldErrors) str(field string, raw any, typeMsg string) *string {
	s, ok := raw.(string)
	if !ok {
		e.add(field, typeMsg)
		return nil
	}
	s = strings.TrimSpace(s)
	return &s
}

func (e fieldErrors) date(raw any) *time.Time {
	s, ok := raw.(string)
	if !ok {
		e.add(fieldDate, "Date must be a valid ISO 8601 date-time")
		return nil
	}
	t, err := ParseDateTime(s)
	if err != nil {
		e.add(fieldDate, "Date must be a valid ISO 8601 date-time")
		return nil
	}
	return &t
}

func toDecimal(raw any) (decimal.Decimal, error) {
	d, err := parseDecimal(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if exp := d.Exponent(); exp < minAmountExponent || exp > maxAmountExponent {
		return decimal.Decimal{}, fmt.Errorf("amount exponent %d out of range", exp)
	}
	if d.Coefficient().BitLen() > maxCoefficientBits {
		return decimal.Decimal{}, fmt.Errorf("amount has too many digits")
	}
	return d, nil
}

func parseDecimal(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, nil
	case json.Number:
		return decimal.NewFromString(v.String())
	case string:
		return decimal.NewFromString(strings.TrimSpace(v))
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unsupported amount type %T", raw)
	}
}
