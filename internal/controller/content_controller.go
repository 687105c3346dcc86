package controller

import (
	"service-marketplace-be/internal/dto"
	"service-marketplace-be/internal/pkg/serverutils"
	"service-marketplace-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IContentController serves the public content surface: policies, FAQs and
// the contact page.
type IContentController interface {
	RegisterRoutes(r fiber.Router)
	GetPolicy(ctx *fiber.Ctx) error
	ListFAQs(ctx *fiber.Ctx) error
	GetFAQ(ctx *fiber.Ctx) error
	GetContactInfo(ctx *fiber.Ctx) error
	SubmitContactMessage(ctx *fiber.Ctx) error
}

type contentController struct {
	contentService service.IContentService
}

func NewContentController(contentService service.IContentService) IContentController {
	return &contentController{contentService: contentService}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content/v1")
	h.Get("/policy/:type", c.GetPolicy)
	h.Get("/faqs", c.ListFAQs)
	h.Get("/faq/:id", c.GetFAQ)
	h.Get("/contact-info", c.GetContactInfo)
	h.Post("/contact-us", c.SubmitContactMessage)
}

func (c *contentController) GetPolicy(ctx *fiber.Ctx) error {
	res, err := c.contentService.GetPolicy(ctx.Context(), ctx.Params("type"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Policy fetched", res))
}

func (c *contentController) ListFAQs(ctx *fiber.Ctx) error {
	res, err := c.contentService.ListFAQs(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQs fetched", res))
}

func (c *contentController) GetFAQ(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ValidationFailed("Invalid FAQ id")
	}

	res, err := c.contentService.GetFAQById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQ fetched", res))
}

func (c *contentController) GetContactInfo(ctx *fiber.Ctx) error {
	res, err := c.contentService.GetContactInfo(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Contact info fetched", res))
}

func (c *contentController) SubmitContactMessage(ctx *fiber.Ctx) error {
	var req dto.CreateContactMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationFailed("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.contentService.SubmitContactMessage(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Message received", nil))
}
