package serverutils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and maps the first failure to a
// 400 with a readable message.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("invalid field %s: failed on '%s' rule", first.Field(), first.Tag()))
	}
	return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
}
