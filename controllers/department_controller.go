package controllers

import (
	"errors"

	"gridset-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DepartmentController struct {
	DB *gorm.DB
}

func NewDepartmentController(DB *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: DB}
}

type departmentInput struct {
	Name string `json:"name" validate:"required,min=2"`
}

func (c *DepartmentController) GetAllDepartments(ctx *fiber.Ctx) error {
	var departments []models.Department
	if err := c.DB.Order("name ASC").Find(&departments).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    departments,
	})
}

func (c *DepartmentController) CreateDepartment(ctx *fiber.Ctx) error {
	var input departmentInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	department := models.Department{Name: input.Name}
	if err := c.DB.Create(&department).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Department created successfully",
		"data":    department,
	})
}

func (c *DepartmentController) UpdateDepartment(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var department models.Department
	if err := c.DB.First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input departmentInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	department.Name = input.Name
	if err := c.DB.Save(&department).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Department updated successfully",
		"data":    department,
	})
}

func (c *DepartmentController) DeleteDepartment(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var department models.Department
	if err := c.DB.First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Deleting a department takes its assets down with it.
	err = c.DB.Transaction(func(tx *gorm.DB) error {
		var assetIDs []uint
		if err := tx.Model(&models.Asset{}).
			Where("department_id = ?", department.ID).
			Pluck("id", &assetIDs).Error; err != nil {
			return err
		}
		if len(assetIDs) > 0 {
			if err := tx.Where("asset_id IN ?", assetIDs).Delete(&models.AssetRequest{}).Error; err != nil {
				return err
			}
			if err := tx.Where("asset_id IN ?", assetIDs).Delete(&models.StockTakeItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("department_id = ?", department.ID).Delete(&models.Asset{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&department).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Department deleted successfully",
	})
}
