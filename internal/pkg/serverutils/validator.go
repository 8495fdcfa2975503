package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest parses the JSON body into dest and runs struct validation.
// The returned error is already phrased for the client.
func ValidateRequest(ctx *fiber.Ctx, dest interface{}) error {
	if err := ctx.BodyParser(dest); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	if err := validate.Struct(dest); err != nil {
		var failures []string
		for _, fieldErr := range err.(validator.ValidationErrors) {
			failures = append(failures, fmt.Sprintf("field '%s' failed on '%s'",
				strings.ToLower(fieldErr.Field()), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(failures, "; "))
	}
	return nil
}

// ErrorHandlerMiddleware converts panics and unhandled fiber errors into the
// uniform envelope so no stack trace ever reaches the client.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				_ = ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(500, "internal server error"))
			}
		}()

		err := ctx.Next()
		if err == nil {
			return nil
		}
		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, err.Error()))
	}
}
