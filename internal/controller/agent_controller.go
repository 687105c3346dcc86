package controller

import (
	"service-marketplace-be/internal/config"
	"service-marketplace-be/internal/dto"
	"service-marketplace-be/internal/pkg/serverutils"
	"service-marketplace-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	GenerateOtp(ctx *fiber.Ctx) error
	VerifyOtp(ctx *fiber.Ctx) error
	ResendOtp(ctx *fiber.Ctx) error
	CompleteRegistration(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	UploadProfileImage(ctx *fiber.Ctx) error
	CreateRoom(ctx *fiber.Ctx) error
	GetRooms(ctx *fiber.Ctx) error
}

type agentController struct {
	agentService service.IAgentService
	chatService  service.IChatService
	cfg          *config.Config
}

func NewAgentController(
	agentService service.IAgentService,
	chatService service.IChatService,
	cfg *config.Config,
) IAgentController {
	return &agentController{
		agentService: agentService,
		chatService:  chatService,
		cfg:          cfg,
	}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agent/v1")
	h.Post("/generate-otp", c.GenerateOtp)
	h.Post("/verify-otp", c.VerifyOtp)
	h.Post("/resend-otp", c.ResendOtp)
	h.Post("/complete-registration", c.CompleteRegistration)

	p := h.Group("", serverutils.JwtMiddleware, serverutils.RequireRole(serverutils.RoleAgent))
	p.Get("/profile", c.GetProfile)
	p.Post("/profile-image", c.UploadProfileImage)
	p.Post("/rooms", c.CreateRoom)
	p.Get("/rooms", c.GetRooms)
}

func (c *agentController) GenerateOtp(ctx *fiber.Ctx) error {
	var req dto.AgentGenerateOtpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.GenerateOtp(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("OTP generated", res))
}

func (c *agentController) VerifyOtp(ctx *fiber.Ctx) error {
	var req dto.AgentVerifyOtpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.VerifyOtp(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("OTP verified", res))
}

func (c *agentController) ResendOtp(ctx *fiber.Ctx) error {
	var req dto.AgentGenerateOtpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.ResendOtp(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("OTP resent", res))
}

func (c *agentController) CompleteRegistration(ctx *fiber.Ctx) error {
	var req dto.CompleteRegistrationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	frontURL, err := saveUpload(ctx, "aadharFrontImage", c.cfg.App.UploadDir, c.cfg.App.BaseURL)
	if err != nil {
		return err
	}
	backURL, err := saveUpload(ctx, "aadharBackImage", c.cfg.App.UploadDir, c.cfg.App.BaseURL)
	if err != nil {
		return err
	}

	res, err := c.agentService.CompleteRegistration(ctx.Context(), &req, frontURL, backURL)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Registration submitted", res))
}

func (c *agentController) GetProfile(ctx *fiber.Ctx) error {
	agentId := localUserId(ctx)

	res, err := c.agentService.GetProfile(ctx.Context(), agentId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile fetched", res))
}

func (c *agentController) UploadProfileImage(ctx *fiber.Ctx) error {
	agentId := localUserId(ctx)

	imageURL, err := saveUpload(ctx, "profileImage", c.cfg.App.UploadDir, c.cfg.App.BaseURL)
	if err != nil {
		return err
	}
	if imageURL == "" {
		return serverutils.ValidationFailed("profileImage file is required")
	}

	res, err := c.agentService.UpdateProfileImage(ctx.Context(), agentId, imageURL)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile image updated", res))
}

func (c *agentController) CreateRoom(ctx *fiber.Ctx) error {
	agentId := localUserId(ctx)

	var req dto.CreateRoomRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.CreateOrGetRoom(ctx.Context(), agentId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Room ready", res))
}

// GetRooms keeps the historical wire shape for this endpoint: the payload is
// keyed "rooms" instead of "data".
func (c *agentController) GetRooms(ctx *fiber.Ctx) error {
	agentId := localUserId(ctx)

	rooms, err := c.chatService.ListRoomsForAgent(ctx.Context(), agentId)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.AgentRoomsEnvelope{
		Message: "Rooms fetched",
		Status:  true,
		Rooms:   rooms,
	})
}
