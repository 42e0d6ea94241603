package apiv1

import (
	"job-board-backend/controllers"
	externalvacancyhandler "job-board-backend/lib/external-vacancy"
	"job-board-backend/middleware"
	"job-board-backend/models"
	apimodels "job-board-backend/models/api"
	externalvacancyapimodels "job-board-backend/models/api/externalvacancy"
	vacancyapimodels "job-board-backend/models/api/vacancy"

	"github.com/gofiber/fiber/v2"
)

type externalVacancyApiController struct {
	controllers.BaseAPIController
}

func InitExternalVacancyApiRouters(app *fiber.App) {
	controller := externalVacancyApiController{}
	app.Route("external-vacancy", func(router fiber.Router) {
		router.Post("import", middleware.AdminRequired(), controller.runImport)
		router.Post("list", controller.list)
		router.Get("by-title", controller.getByTitle)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Delete("", middleware.AdminRequired(), controller.delete)
			idRoute.Post("apply", controller.apply)
			idRoute.Get("candidacy/list", middleware.AdminRequired(), controller.candidacies)
		})
	})
}

// @Summary Run import
// @Tags External vacancy
// @Description Run one import cycle against the external provider
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 externalvacancyapimodels.ImportRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=externalvacancyapimodels.ImportResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/external-vacancy/import [post]
func (c *externalVacancyApiController) runImport(ctx *fiber.Ctx) error {
	var payload externalvacancyapimodels.ImportRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	result, err := externalvacancyhandler.Instance.Import(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to import external vacancies")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary List external vacancies
// @Tags External vacancy
// @Description List imported vacancies with filters
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 externalvacancyapimodels.ExternalVacancyFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]externalvacancyapimodels.ExternalVacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/external-vacancy/list [post]
func (c *externalVacancyApiController) list(ctx *fiber.Ctx) error {
	var filter externalvacancyapimodels.ExternalVacancyFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := externalvacancyhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list external vacancies")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get external vacancy by title
// @Tags External vacancy
// @Description Get the newest imported vacancy with the given title
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   title       		query   string  				    	true         "vacancy title"
// @Success 200 {object} apimodels.Response{data=externalvacancyapimodels.ExternalVacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/external-vacancy/by-title [get]
func (c *externalVacancyApiController) getByTitle(ctx *fiber.Ctx) error {
	title := ctx.Query("title")
	if title == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("title is not specified"))
	}

	resp, err := externalvacancyhandler.Instance.GetByTitle(title)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get external vacancy")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete external vacancy
// @Tags External vacancy
// @Description Delete imported vacancy with its candidacies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/external-vacancy/{id} [delete]
func (c *externalVacancyApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = externalvacancyhandler.Instance.Delete(middleware.GetCaller(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete external vacancy")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Apply to external vacancy
// @Tags External vacancy
// @Description Apply the authenticated applicant to the imported vacancy
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "vacancy ID"
// @Param	body body	 vacancyapimodels.ApplyRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.CandidacyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/external-vacancy/{id}/apply [post]
func (c *externalVacancyApiController) apply(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if middleware.GetUserRole(ctx) != models.UserRoleApplicant {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("only applicants can apply"))
	}

	var payload vacancyapimodels.ApplyRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := externalvacancyhandler.Instance.Apply(id, middleware.GetUserID(ctx), payload.CoverLetter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to apply to external vacancy")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List external vacancy candidacies
// @Tags External vacancy
// @Description List candidacies of the imported vacancy
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "vacancy ID"
// @Success 200 {object} apimodels.Response{data=[]vacancyapimodels.CandidacyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/external-vacancy/{id}/candidacy/list [get]
func (c *externalVacancyApiController) candidacies(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := externalvacancyhandler.Instance.VacancyCandidacies(middleware.GetCaller(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list candidacies")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
