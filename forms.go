package tutorsite

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ContactForm is the landing-page contact form.
type ContactForm struct {
	Name    string `form:"name" validate:"required,max=80"`
	Company string `form:"company" validate:"max=120"`
	Email   string `form:"email" validate:"required,email,max=120"`
	Reason  string `form:"reason" validate:"required,max=120"`
	Message string `form:"message" validate:"required,max=4000"`
}

// BookingForm is the tutoring-page booking form. Level values mirror the
// tiers the site offers.
type BookingForm struct {
	Name           string `form:"name" validate:"required,max=80"`
	Level          string `form:"level" validate:"required,oneof=gcse alevel other"`
	ExamBoard      string `form:"exam_board" validate:"max=60"`
	Email          string `form:"email" validate:"required,email,max=120"`
	PreferredTimes string `form:"preferred_times" validate:"max=200"`
	Message        string `form:"message" validate:"required,max=4000"`
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// bindAndValidate binds the posted form into dst and validates it. The
// returned map is keyed by form field name; an empty map means valid input.
func (a *App) bindAndValidate(c echo.Context, dst any) (map[string]string, error) {
	if err := c.Bind(dst); err != nil {
		return nil, err
	}
	trimStrings(dst)
	if err := a.validate.Struct(dst); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, err
		}
		return fieldErrors(verrs), nil
	}
	return map[string]string{}, nil
}

// trimStrings trims surrounding whitespace on the known form types so " "
// does not pass a required check.
func trimStrings(dst any) {
	switch f := dst.(type) {
	case *ContactForm:
		f.Name = strings.TrimSpace(f.Name)
		f.Company = strings.TrimSpace(f.Company)
		f.Email = strings.TrimSpace(f.Email)
		f.Reason = strings.TrimSpace(f.Reason)
		f.Message = strings.TrimSpace(f.Message)
	case *BookingForm:
		f.Name = strings.TrimSpace(f.Name)
		f.Level = strings.TrimSpace(f.Level)
		f.ExamBoard = strings.TrimSpace(f.ExamBoard)
		f.Email = strings.TrimSpace(f.Email)
		f.PreferredTimes = strings.TrimSpace(f.PreferredTimes)
		f.Message = strings.TrimSpace(f.Message)
	}
}

// fieldErrors converts validator errors into user-facing messages keyed by
// the form field name (snake_case, matching the input names).
func fieldErrors(verrs validator.ValidationErrors) map[string]string {
	errs := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		errs[formFieldName(fe.Field())] = fieldMessage(fe)
	}
	return errs
}

func formFieldName(structField string) string {
	switch structField {
	case "ExamBoard":
		return "exam_board"
	case "PreferredTimes":
		return "preferred_times"
	default:
		return strings.ToLower(structField)
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Must be %s characters or fewer.", fe.Param())
	case "oneof":
		return "Choose one of the listed options."
	default:
		return "Invalid input."
	}
}
