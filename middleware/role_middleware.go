package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "job-board-backend/lib/utils/auth-utils"
	"job-board-backend/models"
	apimodels "job-board-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if stringSub, ok := sub.(string); ok {
			return stringSub
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

// GetCaller assembles the authenticated identity handlers authorize against.
func GetCaller(ctx *fiber.Ctx) models.Caller {
	return models.Caller{
		UserID: GetUserID(ctx),
		Role:   GetUserRole(ctx),
	}
}

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
		}
		return ctx.Next()
	}
}

func CompanyOrAdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		role := GetUserRole(ctx)
		if !role.IsCompany() && !role.IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
		}
		return ctx.Next()
	}
}
