package controllers

import (
	"gridset-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(DB *gorm.DB) *DashboardController {
	return &DashboardController{DB: DB}
}

func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	var totalAssets, availableAssets, assignedAssets, pendingRequests int64

	c.DB.Model(&models.Asset{}).Count(&totalAssets)
	c.DB.Model(&models.Asset{}).Where("status = ?", models.AssetStatusAvailable).Count(&availableAssets)
	c.DB.Model(&models.Asset{}).Where("status = ?", models.AssetStatusInUse).Count(&assignedAssets)
	c.DB.Model(&models.AssetRequest{}).Where("status = ?", models.RequestPending).Count(&pendingRequests)

	var recentAssets []models.Asset
	c.DB.Preload("Department").Order("created_at DESC").Limit(5).Find(&recentAssets)

	var recentRequests []models.AssetRequest
	c.DB.Preload("Asset").Preload("User").Order("request_date DESC").Limit(5).Find(&recentRequests)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_assets":     totalAssets,
			"available_assets": availableAssets,
			"assigned_assets":  assignedAssets,
			"pending_requests": pendingRequests,
			"recent_assets":    recentAssets,
			"recent_requests":  recentRequests,
		},
	})
}
