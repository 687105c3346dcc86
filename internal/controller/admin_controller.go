package controller

import (
	"service-marketplace-be/internal/config"
	"service-marketplace-be/internal/dto"
	"service-marketplace-be/internal/pkg/serverutils"
	"service-marketplace-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Signup(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	GetDetail(ctx *fiber.Ctx) error
	UpdateDetail(ctx *fiber.Ctx) error
	ResetPassword(ctx *fiber.Ctx) error
	ListUsers(ctx *fiber.Ctx) error
	ListAgents(ctx *fiber.Ctx) error
	SetAgentVerdict(ctx *fiber.Ctx) error
	UpsertPolicy(ctx *fiber.Ctx) error
	AddFAQ(ctx *fiber.Ctx) error
	UpdateFAQ(ctx *fiber.Ctx) error
	UpsertContactInfo(ctx *fiber.Ctx) error
	ListContactMessages(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService   service.IAdminService
	contentService service.IContentService
	cfg            *config.Config
}

func NewAdminController(
	adminService service.IAdminService,
	contentService service.IContentService,
	cfg *config.Config,
) IAdminController {
	return &adminController{
		adminService:   adminService,
		contentService: contentService,
		cfg:            cfg,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Post("/signup", c.Signup)
	h.Post("/login", c.Login)

	p := h.Group("", serverutils.JwtMiddleware, serverutils.RequireRole(serverutils.RoleAdmin))
	p.Get("/detail", c.GetDetail)
	p.Put("/detail", c.UpdateDetail)
	p.Post("/reset-password", c.ResetPassword)
	p.Get("/users", c.ListUsers)
	p.Get("/agents", c.ListAgents)
	p.Post("/agent-verdict", c.SetAgentVerdict)
	p.Post("/policy", c.UpsertPolicy)
	p.Post("/faq", c.AddFAQ)
	p.Put("/faq", c.UpdateFAQ)
	p.Put("/contact-info", c.UpsertContactInfo)
	p.Get("/contact-messages", c.ListContactMessages)
}

func (c *adminController) Signup(ctx *fiber.Ctx) error {
	var req dto.AdminSignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.Signup(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Admin created", res))
}

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *adminController) GetDetail(ctx *fiber.Ctx) error {
	adminId := localUserId(ctx)

	res, err := c.adminService.GetDetail(ctx.Context(), adminId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Admin detail fetched", res))
}

func (c *adminController) UpdateDetail(ctx *fiber.Ctx) error {
	adminId := localUserId(ctx)

	var req dto.UpdateAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.UpdateDetail(ctx.Context(), adminId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Admin detail updated", res))
}

func (c *adminController) ResetPassword(ctx *fiber.Ctx) error {
	adminId := localUserId(ctx)

	var req dto.ResetAdminPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.ResetPassword(ctx.Context(), adminId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password reset", nil))
}

func (c *adminController) ListUsers(ctx *fiber.Ctx) error {
	var req dto.ListUsersRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid query parameters")
	}

	res, err := c.adminService.ListUsers(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Users fetched", res))
}

func (c *adminController) ListAgents(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListAgents(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Agents fetched", res))
}

func (c *adminController) SetAgentVerdict(ctx *fiber.Ctx) error {
	var req dto.AgentVerdictRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.SetAgentVerdict(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Agent verdict recorded", nil))
}

func (c *adminController) UpsertPolicy(ctx *fiber.Ctx) error {
	var req dto.UpsertPolicyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	imageURL, err := saveUpload(ctx, "image", c.cfg.App.UploadDir, c.cfg.App.BaseURL)
	if err != nil {
		return err
	}

	res, err := c.contentService.UpsertPolicy(ctx.Context(), &req, imageURL)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Policy saved", res))
}

func (c *adminController) AddFAQ(ctx *fiber.Ctx) error {
	var req dto.AddFAQRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contentService.AddFAQ(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQ added", res))
}

func (c *adminController) UpdateFAQ(ctx *fiber.Ctx) error {
	var req dto.UpdateFAQRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contentService.UpdateFAQ(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQ updated", res))
}

func (c *adminController) UpsertContactInfo(ctx *fiber.Ctx) error {
	var req dto.UpsertContactInfoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contentService.UpsertContactInfo(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Contact info saved", res))
}

func (c *adminController) ListContactMessages(ctx *fiber.Ctx) error {
	res, err := c.contentService.ListContactMessages(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Contact messages fetched", res))
}
