package controller

import (
	"service-marketplace-be/internal/config"
	"service-marketplace-be/internal/dto"
	"service-marketplace-be/internal/pkg/serverutils"
	"service-marketplace-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GenerateOtp(ctx *fiber.Ctx) error
	VerifyOtp(ctx *fiber.Ctx) error
	ResendOtp(ctx *fiber.Ctx) error
	GetRooms(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	UploadProfileImage(ctx *fiber.Ctx) error
	CreateQuery(ctx *fiber.Ctx) error
	AddComment(ctx *fiber.Ctx) error
	GetQueries(ctx *fiber.Ctx) error
	GetTransactions(ctx *fiber.Ctx) error
	GetNotifications(ctx *fiber.Ctx) error
}

type userController struct {
	userService  service.IUserService
	chatService  service.IChatService
	queryService service.IQueryService
	cfg          *config.Config
}

func NewUserController(
	userService service.IUserService,
	chatService service.IChatService,
	queryService service.IQueryService,
	cfg *config.Config,
) IUserController {
	return &userController{
		userService:  userService,
		chatService:  chatService,
		queryService: queryService,
		cfg:          cfg,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Post("/generate-otp", c.GenerateOtp)
	h.Post("/verify-otp", c.VerifyOtp)
	h.Post("/resend-otp", c.ResendOtp)

	// No auth declared on the room listing, the caller passes userId.
	h.Get("/rooms", c.GetRooms)

	p := h.Group("", serverutils.JwtMiddleware, serverutils.RequireRole(serverutils.RoleUser))
	p.Get("/profile", c.GetProfile)
	p.Put("/profile", c.UpdateProfile)
	p.Post("/profile-image", c.UploadProfileImage)
	p.Post("/query", c.CreateQuery)
	p.Post("/query/comment", c.AddComment)
	p.Get("/queries", c.GetQueries)
	p.Get("/transactions", c.GetTransactions)
	p.Get("/notifications", c.GetNotifications)
}

func (c *userController) GenerateOtp(ctx *fiber.Ctx) error {
	var req dto.GenerateOtpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.GenerateOtp(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("OTP generated", res))
}

func (c *userController) VerifyOtp(ctx *fiber.Ctx) error {
	var req dto.VerifyOtpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.VerifyOtp(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("OTP verified", res))
}

func (c *userController) ResendOtp(ctx *fiber.Ctx) error {
	var req dto.GenerateOtpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.ResendOtp(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("OTP resent", res))
}

func (c *userController) GetRooms(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Query("userId"))
	if err != nil {
		return serverutils.ValidationFailed("userId is required")
	}

	res, err := c.chatService.ListRoomsForUser(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Rooms fetched", res))
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	userId := localUserId(ctx)

	res, err := c.userService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile fetched", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	userId := localUserId(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}

func (c *userController) UploadProfileImage(ctx *fiber.Ctx) error {
	userId := localUserId(ctx)

	imageURL, err := saveUpload(ctx, "profileImage", c.cfg.App.UploadDir, c.cfg.App.BaseURL)
	if err != nil {
		return err
	}
	if imageURL == "" {
		return serverutils.ValidationFailed("profileImage file is required")
	}

	res, err := c.userService.UpdateProfileImage(ctx.Context(), userId, imageURL)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile image updated", res))
}

func (c *userController) CreateQuery(ctx *fiber.Ctx) error {
	userId := localUserId(ctx)

	var req dto.CreateQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.queryService.CreateQuery(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Query created", res))
}

func (c *userController) AddComment(ctx *fiber.Ctx) error {
	var req dto.AddCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.queryService.AddComment(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Comment added", res))
}

func (c *userController) GetQueries(ctx *fiber.Ctx) error {
	userId := localUserId(ctx)

	res, err := c.queryService.GetQueries(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Queries fetched", res))
}

func (c *userController) GetTransactions(ctx *fiber.Ctx) error {
	userId := localUserId(ctx)

	res, err := c.userService.ListTransactions(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Transactions fetched", res))
}

func (c *userController) GetNotifications(ctx *fiber.Ctx) error {
	userId := localUserId(ctx)

	res, err := c.userService.ListNotifications(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Notifications fetched", res))
}

func localUserId(ctx *fiber.Ctx) uuid.UUID {
	idStr, _ := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(idStr)
	return id
}
