package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/julianstephens/recipeplanner/internal/models"
	"github.com/julianstephens/recipeplanner/internal/recipes"
)

var (
	ErrInvalid   = errors.New("invalid recipe")
	ErrDuplicate = errors.New("duplicate recipe")
)

// FieldError describes one rule a recipe field failed
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Error collects every problem found in a single recipe. It matches
// ErrInvalid, and ErrDuplicate when the duplicate rule was violated.
type Error struct {
	Fields    []FieldError
	Duplicate bool
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("%s: %s", ErrInvalid, strings.Join(parts, "; "))
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid || (e.Duplicate && target == ErrDuplicate)
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.Categories(), models.Category(fl.Field().String()))
	})
	_ = v.RegisterValidation("dietarytag", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.DietaryTags(), models.DietaryTag(fl.Field().String()))
	})
	return &Validator{validate: v}
}

// ValidateDraft checks a new recipe's fields and rejects it when it
// duplicates a recipe already in existing.
func (v *Validator) ValidateDraft(draft models.RecipeDraft, existing []models.Recipe) error {
	fields := v.fieldErrors(draft.WithID(""))
	dup := recipes.IsDuplicate(existing, draft)
	if dup {
		fields = append(fields, FieldError{
			Field:   "name",
			Message: "duplicates an existing recipe with the same name and ingredients",
		})
	}
	if len(fields) == 0 {
		return nil
	}
	return &Error{Fields: fields, Duplicate: dup}
}

// ValidateRecipe checks field rules only. Edits are not held to the
// duplicate rule.
func (v *Validator) ValidateRecipe(recipe models.Recipe) error {
	fields := v.fieldErrors(recipe.Clone())
	if len(fields) == 0 {
		return nil
	}
	return &Error{Fields: fields}
}

func (v *Validator) fieldErrors(recipe models.Recipe) []FieldError {
	err := v.validate.Struct(recipe)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "recipe", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return out
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "must not be blank"
	case "min":
		return "must have at least one entry"
	case "gt":
		return "must be greater than 0"
	case "finite":
		return "must be a finite number"
	case "category":
		return "must be one of " + joinNames(models.Categories())
	case "dietarytag":
		return "must be one of " + joinNames(models.DietaryTags())
	case "url":
		return "must be a valid URL"
	}
	return fmt.Sprintf("failed %q rule", fe.Tag())
}

func joinNames[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
