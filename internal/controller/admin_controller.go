package controller

import (
	"crypto/subtle"
	"os"

	"terra-assistant-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ExportLogs(ctx *fiber.Ctx) error
}

// adminController exposes the chat-log CSV download behind a shared token.
type adminController struct {
	exportToken string
	csvPath     string
}

func NewAdminController(exportToken, csvPath string) IAdminController {
	return &adminController{
		exportToken: exportToken,
		csvPath:     csvPath,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Get("logs/export", c.ExportLogs)
}

func (c *adminController) ExportLogs(ctx *fiber.Ctx) error {
	if c.exportToken == "" {
		return fiber.NewError(fiber.StatusForbidden, "log export is not configured")
	}

	token := ctx.Get("X-Admin-Token")
	if subtle.ConstantTimeCompare([]byte(token), []byte(c.exportToken)) != 1 {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid admin token")
	}

	if _, err := os.Stat(c.csvPath); os.IsNotExist(err) {
		return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("No logs recorded yet", nil))
	}

	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="user_logs.csv"`)
	return ctx.SendFile(c.csvPath)
}
