package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"reversi/internal/core"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Starting discs need a center 2x2 block, so both sides must be even
	if err := v.RegisterValidation("even", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%2 == 0
	}); err != nil {
		panic(fmt.Sprintf("register even validation: %v", err))
	}
	return v
}

// Dimensions is the size of a board, at most 256 on each side
type Dimensions struct {
	Rows    int `json:"rows" validate:"min=4,max=256,even"`
	Columns int `json:"columns" validate:"min=4,max=256,even"`
}

// Validate checks the dimension constraints, wrapping core.ErrInvalidDimensions
func (d Dimensions) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %v", core.ErrInvalidDimensions, err)
	}

	var details strings.Builder
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "min":
			details.WriteString(fmt.Sprintf("%s must be at least %s, got %v", field, fe.Param(), fe.Value()))
		case "max":
			details.WriteString(fmt.Sprintf("%s must be at most %s, got %v", field, fe.Param(), fe.Value()))
		case "even":
			details.WriteString(fmt.Sprintf("%s must be even, got %v", field, fe.Value()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", core.ErrInvalidDimensions, details.String())
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Columns)
}
