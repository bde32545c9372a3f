package serverutils

import (
	"errors"

	"notekeeper-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates the error taxonomy into HTTP statuses.
// Internal error text is not echoed to the caller for storage and unknown
// failures.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		switch {
		case apperror.IsValidation(err):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse(err.Error()))
		case apperror.IsNotFound(err):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(err.Error()))
		case apperror.IsConflict(err):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(err.Error()))
		case apperror.IsStorage(err):
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("storage failure"))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
