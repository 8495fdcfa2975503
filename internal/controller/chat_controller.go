// FILE: internal/controller/chat_controller.go
package controller

import (
	"errors"

	"ai-shopassist-be/internal/dto"
	"ai-shopassist-be/internal/pkg/serverutils"
	"ai-shopassist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	ResetSession(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
}

type chatController struct {
	service  service.IChatService
	consumer service.IConsumerService
}

func NewChatController(chatService service.IChatService, consumer service.IConsumerService) IChatController {
	return &chatController{service: chatService, consumer: consumer}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("/chat", c.SendChat)
	h.Post("/reset-session", c.ResetSession)
	h.Get("/stats", c.GetStats)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	clientID := ctx.Get("X-Client-Id", "anonymous")
	res, err := c.service.SendChat(ctx.Context(), clientID, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		// Recoverable turn failures still carry a natural-language reply;
		// the client shows it and the user retries the same message.
		if res != nil {
			status := fiber.StatusInternalServerError
			if errors.Is(err, service.ErrCompletionUnavailable) {
				status = fiber.StatusServiceUnavailable
			}
			return ctx.Status(status).JSON(serverutils.Response[*dto.SendChatResponse]{
				Code:    status,
				Message: err.Error(),
				Data:    res,
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) ResetSession(ctx *fiber.Ctx) error {
	var req dto.ResetSessionRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	clientID := ctx.Get("X-Client-Id", "anonymous")
	res, err := c.service.ResetSession(ctx.Context(), clientID, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success reset session", res))
}

func (c *chatController) GetStats(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get chat stats", c.consumer.Stats()))
}
