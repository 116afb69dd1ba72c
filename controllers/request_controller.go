package controllers

import (
	"errors"

	"gridset-app/models"
	"gridset-app/repositories"
	"gridset-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RequestController struct {
	DB *gorm.DB
}

func NewRequestController(DB *gorm.DB) *RequestController {
	return &RequestController{DB: DB}
}

// SubmitRequest files a request for the asset on behalf of the caller.
func (c *RequestController) SubmitRequest(ctx *fiber.Ctx) error {
	assetID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Purpose string `json:"purpose" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewRequestRepository(c.DB)
	request, err := repo.Submit(uint(assetID), currentUserID(ctx), input.Purpose)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateRequest):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Asset not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Asset request submitted successfully",
		"data":    request,
	})
}

// MyRequests lists the caller's own requests.
func (c *RequestController) MyRequests(ctx *fiber.Ctx) error {
	repo := repositories.NewRequestRepository(c.DB)
	requests, err := repo.ListByUser(currentUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    requests,
	})
}

// ManageRequests lists all requests grouped by state for the admin screen.
func (c *RequestController) ManageRequests(ctx *fiber.Ctx) error {
	repo := repositories.NewRequestRepository(c.DB)

	pending, err := repo.ListByStatus(models.RequestPending)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	approved, err := repo.ListByStatus(models.RequestApproved)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	rejected, err := repo.ListByStatus(models.RequestRejected)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"pending":  pending,
			"approved": approved,
			"rejected": rejected,
		},
	})
}

func (c *RequestController) ApproveRequest(ctx *fiber.Ctx) error {
	return c.decide(ctx, true)
}

func (c *RequestController) RejectRequest(ctx *fiber.Ctx) error {
	return c.decide(ctx, false)
}

func (c *RequestController) decide(ctx *fiber.Ctx, approve bool) error {
	requestID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewRequestRepository(c.DB)
	request, err := repo.Decide(uint(requestID), approve)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrRequestResolved):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	go utils.SendDecisionEmail(request)

	message := "Request approved successfully"
	if !approve {
		message = "Request rejected successfully"
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    request,
	})
}

// ClearHistory deletes every resolved request. Irreversible.
func (c *RequestController) ClearHistory(ctx *fiber.Ctx) error {
	repo := repositories.NewRequestRepository(c.DB)
	count, err := repo.ClearResolved()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Request history cleared successfully",
		"data":    fiber.Map{"deleted": count},
	})
}
