package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-board-backend/models"
	apimodels "job-board-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is not specified")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError maps handler errors onto HTTP statuses. Unrecognized errors are
// reported as 500 with the fallback message, recognized ones keep their text.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, fallbackMsg string) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrInvalidTransition):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrAlreadyApplied):
		status = fiber.StatusConflict
	case errors.Is(err, models.ErrImportRunning):
		status = fiber.StatusConflict
	case errors.Is(err, models.ErrSourceUnavailable):
		status = fiber.StatusBadGateway
	}
	if status == fiber.StatusInternalServerError {
		logger.WithError(err).Error(fallbackMsg)
		return ctx.Status(status).JSON(apimodels.NewError(fallbackMsg))
	}
	logger.WithError(err).Warn(fallbackMsg)
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}
