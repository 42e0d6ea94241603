package apiv1

import (
	"fmt"
	"time"

	"job-board-backend/controllers"
	vacancyhandler "job-board-backend/lib/vacancy"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type candidacyApiController struct {
	controllers.BaseAPIController
}

func InitCandidacyApiRouters(app *fiber.App) {
	controller := candidacyApiController{}
	app.Route("candidacy", func(router fiber.Router) {
		router.Get("my", controller.myApplications)
		router.Get("review", middleware.CompanyOrAdminRequired(), controller.review)
		router.Get("review/export", middleware.CompanyOrAdminRequired(), controller.exportReview)
	})
}

// @Summary My applications
// @Tags Candidacy
// @Description List the authenticated applicant's candidacies over internal and imported vacancies
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]vacancyapimodels.MyApplicationView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidacy/my [get]
func (c *candidacyApiController) myApplications(ctx *fiber.Ctx) error {
	list, err := vacancyhandler.Instance.ListApplicantCandidacies(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Company candidacy review
// @Tags Candidacy
// @Description Review all candidacies across the company's vacancies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   company_id  		query   string  				    	false        "company ID, admin only"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.ReviewListView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidacy/review [get]
func (c *candidacyApiController) review(ctx *fiber.Ctx) error {
	resp, err := vacancyhandler.Instance.CompanyCandidacies(middleware.GetCaller(ctx), ctx.Query("company_id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build candidacy review")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Export candidacy review
// @Tags Candidacy
// @Description Export the company's candidacy review as an xlsx file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   company_id  		query   string  				    	false        "company ID, admin only"
// @Success 200 {file} application/octet-stream
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidacy/review/export [get]
func (c *candidacyApiController) exportReview(ctx *fiber.Ctx) error {
	buf, err := vacancyhandler.Instance.ExportCompanyCandidacies(middleware.GetCaller(ctx), ctx.Query("company_id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export candidacy review")
	}
	fileName := fmt.Sprintf("candidacies_%v.xlsx", time.Now().Format("02.01.2006"))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
