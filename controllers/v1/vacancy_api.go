package apiv1

import (
	"job-board-backend/controllers"
	vacancyhandler "job-board-backend/lib/vacancy"
	"job-board-backend/middleware"
	"job-board-backend/models"
	apimodels "job-board-backend/models/api"
	vacancyapimodels "job-board-backend/models/api/vacancy"

	"github.com/gofiber/fiber/v2"
)

type vacancyApiController struct {
	controllers.BaseAPIController
}

func InitVacancyApiRouters(app *fiber.App) {
	controller := vacancyApiController{}
	app.Route("vacancy", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", middleware.CompanyOrAdminRequired(), controller.create)
		router.Get("by-title", controller.getByTitle)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", middleware.CompanyOrAdminRequired(), controller.update)
			idRoute.Delete("", middleware.CompanyOrAdminRequired(), controller.delete)
			idRoute.Post("apply", controller.apply)
			idRoute.Route("candidacy", func(candidacyRoute fiber.Router) {
				candidacyRoute.Get("list", middleware.CompanyOrAdminRequired(), controller.candidacies)
				candidacyRoute.Put(":candidacy_id/status", middleware.CompanyOrAdminRequired(), controller.changeCandidacyStatus)
			})
		})
	})
}

// @Summary Create vacancy
// @Tags Vacancy
// @Description Create vacancy
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.VacancyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy [post]
func (c *vacancyApiController) create(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := vacancyhandler.Instance.Create(middleware.GetCaller(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create vacancy")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update vacancy
// @Tags Vacancy
// @Description Update vacancy
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.VacancyData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id} [put]
func (c *vacancyApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload vacancyapimodels.VacancyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = vacancyhandler.Instance.Update(middleware.GetCaller(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update vacancy")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get vacancy by ID
// @Tags Vacancy
// @Description Get vacancy by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id} [get]
func (c *vacancyApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := vacancyhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get vacancy")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get vacancy by title
// @Tags Vacancy
// @Description Get the newest vacancy with the given title
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   title       		query   string  				    	true         "vacancy title"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/by-title [get]
func (c *vacancyApiController) getByTitle(ctx *fiber.Ctx) error {
	title := ctx.Query("title")
	if title == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("title is not specified"))
	}

	resp, err := vacancyhandler.Instance.GetByTitle(title)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get vacancy")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete vacancy
// @Tags Vacancy
// @Description Delete vacancy with its candidacies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id} [delete]
func (c *vacancyApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = vacancyhandler.Instance.Delete(middleware.GetCaller(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete vacancy")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List vacancies
// @Tags Vacancy
// @Description List vacancies with filters
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.VacancyFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/list [post]
func (c *vacancyApiController) list(ctx *fiber.Ctx) error {
	var filter vacancyapimodels.VacancyFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := vacancyhandler.Instance.List(middleware.GetCaller(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list vacancies")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Apply to vacancy
// @Tags Vacancy
// @Description Apply the authenticated applicant to the vacancy
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "vacancy ID"
// @Param	body body	 vacancyapimodels.ApplyRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.CandidacyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/apply [post]
func (c *vacancyApiController) apply(ctx *fiber.Ctx) error {
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

	resp, err := vacancyhandler.Instance.Apply(id, middleware.GetUserID(ctx), payload.CoverLetter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to apply to vacancy")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List vacancy candidacies
// @Tags Vacancy
// @Description List candidacies of the vacancy for its owning company
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "vacancy ID"
// @Success 200 {object} apimodels.Response{data=[]vacancyapimodels.CandidacyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/candidacy/list [get]
func (c *vacancyApiController) candidacies(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := vacancyhandler.Instance.VacancyCandidacies(middleware.GetCaller(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list candidacies")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Change candidacy status
// @Tags Vacancy
// @Description Change status of a candidacy on the company's vacancy
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "vacancy ID"
// @Param   candidacy_id		path    string  				    	true         "candidacy ID"
// @Param	body body	 vacancyapimodels.CandidacyStatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/candidacy/{candidacy_id}/status [put]
func (c *vacancyApiController) changeCandidacyStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidacyID := ctx.Params("candidacy_id")
	if candidacyID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("candidacy id is not specified"))
	}

	var payload vacancyapimodels.CandidacyStatusRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = vacancyhandler.Instance.ChangeCandidacyStatus(middleware.GetCaller(ctx), id, candidacyID, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to change candidacy status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
