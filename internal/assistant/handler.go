package assistant

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cyralabs/cyra-shop-backend/internal/camera"
)

// Handler exposes the conversation controller over HTTP.
type Handler struct {
	controller *Controller
}

func NewHandler(controller *Controller) *Handler {
	return &Handler{controller: controller}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/assistant/messages", h.getMessages)
	app.Post("/api/v1/assistant/message", h.sendMessage)
	app.Post("/api/v1/assistant/mode", h.switchMode)
	app.Post("/api/v1/assistant/attachment", h.attachImage)
	app.Delete("/api/v1/assistant/attachment", h.clearAttachment)
	app.Post("/api/v1/assistant/camera/open", h.openCamera)
	app.Post("/api/v1/assistant/camera/capture", h.capturePhoto)
	app.Post("/api/v1/assistant/camera/close", h.closeCamera)
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

type switchModeRequest struct {
	Mode string `json:"mode"`
}

type attachmentRequest struct {
	Image string `json:"image"`
}

func (h *Handler) getMessages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"mode":     h.controller.Mode(),
		"inFlight": h.controller.InFlight(),
		"messages": h.controller.Messages(),
	})
}

func (h *Handler) sendMessage(c *fiber.Ctx) error {
	payload := new(sendMessageRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	reply, err := h.controller.Submit(c.Context(), payload.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrBusy):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "assistant is busy, try again"})
		case errors.Is(err, ErrEmptyMessage):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "text is required"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(reply)
}

func (h *Handler) switchMode(c *fiber.Ctx) error {
	payload := new(switchModeRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.controller.SwitchMode(Mode(payload.Mode)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"mode": h.controller.Mode()})
}

func (h *Handler) attachImage(c *fiber.Ctx) error {
	payload := new(attachmentRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Image == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "image is required"})
	}
	if err := h.controller.AttachImage(payload.Image); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) clearAttachment(c *fiber.Ctx) error {
	h.controller.ClearAttachment()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) openCamera(c *fiber.Ctx) error {
	if err := h.controller.OpenCamera(c.Context()); err != nil {
		if errors.Is(err, camera.ErrDevice) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "Unable to access camera. Please check permissions."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) capturePhoto(c *fiber.Ctx) error {
	uri, err := h.controller.CaptureToAttachment()
	if err != nil {
		switch {
		case errors.Is(err, ErrNotSkinMode):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, camera.ErrDevice):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "Unable to access camera. Please check permissions."})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"image": uri})
}

func (h *Handler) closeCamera(c *fiber.Ctx) error {
	h.controller.CloseCamera()
	return c.SendStatus(fiber.StatusNoContent)
}
