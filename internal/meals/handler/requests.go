package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"mealog/internal/meals/models"
	"mealog/internal/meals/stats"
	dErrors "mealog/pkg/domain-errors"
	"mealog/pkg/platform/httputil"
)

const (
	dateLayout = "2006-01-02"
	maxDays    = 366
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// ItemRequest is the body of an item edit. Calories is a pointer so a missing
// value is distinguishable from zero.
type ItemRequest struct {
	Name     string             `json:"name" validate:"required,notblank,max=200"`
	Calories *float64           `json:"calories" validate:"required"`
	Protein  *float64           `json:"protein,omitempty"`
	Fat      *float64           `json:"fat,omitempty"`
	Carbs    *float64           `json:"carbs,omitempty"`
	Extra    map[string]float64 `json:"extra,omitempty" validate:"omitempty,dive,keys,required,ne=protein,ne=fat,ne=carbs,endkeys"`
	ImageURL string             `json:"image_url,omitempty" validate:"omitempty,max=2048"`
}

// AddItemRequest adds the optional time label to ItemRequest.
type AddItemRequest struct {
	Time string `json:"time,omitempty" validate:"omitempty,max=50"`
	ItemRequest
}

type MemoRequest struct {
	Memo string `json:"memo" validate:"max=2000"`
}

func (r ItemRequest) toItem() models.MealItem {
	item := models.MealItem{
		Name:     r.Name,
		ImageURL: r.ImageURL,
	}
	if r.Calories != nil {
		item.Calories = *r.Calories
	}
	if r.Protein != nil {
		item.Nutrients.Protein = *r.Protein
	}
	if r.Fat != nil {
		item.Nutrients.Fat = *r.Fat
	}
	if r.Carbs != nil {
		item.Nutrients.Carbs = *r.Carbs
	}
	if len(r.Extra) > 0 {
		item.Nutrients.Extra = r.Extra
	}
	return item
}

// itemPath addresses one item: /records/{date}/meals/{time}/items/{index}.
type itemPath struct {
	Date  string
	Time  string
	Index int
}

func parseItemPath(r *http.Request) (itemPath, error) {
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		return itemPath{}, err
	}
	label, err := pathParam(r, "time")
	if err != nil {
		return itemPath{}, err
	}
	if label == "" {
		return itemPath{}, dErrors.New(dErrors.CodeValidation, "time is required")
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		return itemPath{}, dErrors.New(dErrors.CodeValidation, "index must be a non-negative integer")
	}
	return itemPath{Date: date, Time: label, Index: index}, nil
}

// pathParam returns the decoded value of a route parameter. chi matches on
// RawPath when the request used non-canonical escaping (lowercase hex, an
// escaped "/"), and then hands back the still-escaped segment.
func pathParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v, nil
	}
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeValidation, name+" is not a valid path segment")
	}
	return decoded, nil
}

func parseDate(date string) (string, error) {
	if err := validateVar(date, "date", "required,datetime="+dateLayout); err != nil {
		return "", err
	}
	return date, nil
}

func parseDays(raw string) (int, error) {
	if raw == "" {
		return stats.DefaultTrendDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > maxDays {
		return 0, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("days must be between 1 and %d", maxDays))
	}
	return days, nil
}

// decodeAndValidate decodes the JSON body into dst and runs its validate tags.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := httputil.DecodeJSON(r, dst); err != nil {
		return err
	}
	if err := validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

func validateVar(value, field, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return dErrors.New(dErrors.CodeValidation, formatFieldError(field, fieldErrs[0]))
		}
		return dErrors.Wrap(err, dErrors.CodeValidation, field+" is invalid")
	}
	return nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return dErrors.Wrap(err, dErrors.CodeValidation, "invalid request")
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(jsonName(fe), fe))
	}
	return dErrors.New(dErrors.CodeValidation, strings.Join(msgs, "; "))
}

func formatFieldError(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "datetime":
		return fmt.Sprintf("%s must match %s", field, e.Param())
	case "ne":
		return fmt.Sprintf("%s must not use the reserved key %q", field, e.Param())
	default:
		return field + " is invalid"
	}
}

// jsonName maps a struct field to its JSON name for error messages.
func jsonName(e validator.FieldError) string {
	switch e.StructField() {
	case "ImageURL":
		return "image_url"
	default:
		return strings.ToLower(e.Field())
	}
}
