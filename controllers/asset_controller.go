package controllers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gridset-app/config"
	"gridset-app/controllers/idgen"
	"gridset-app/models"
	"gridset-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type AssetController struct {
	DB *gorm.DB
}

func NewAssetController(DB *gorm.DB) *AssetController {
	return &AssetController{DB: DB}
}

type assetInput struct {
	SerialNo     string          `json:"serial_no"`
	PurchaseDate string          `json:"purchase_date"`
	PurchaseCost decimal.Decimal `json:"purchase_cost"`
	Condition    string          `json:"condition"`
	Depreciation decimal.Decimal `json:"depreciation"`
	Supplier     string          `json:"supplier"`
	Warranty     string          `json:"warranty"`
	Description  string          `json:"description"`
	Category     string          `json:"category" validate:"required"`
	DepartmentID uint            `json:"department_id" validate:"required"`
	Status       string          `json:"status"`
	AssignedToID *uint           `json:"assigned_to_id"`
}

func (in *assetInput) apply(asset *models.Asset) error {
	if !models.ValidCategory(in.Category) {
		return fmt.Errorf("unknown category: %s", in.Category)
	}
	if in.Status != "" && !models.ValidAssetStatus(in.Status) {
		return fmt.Errorf("unknown status: %s", in.Status)
	}
	if in.PurchaseDate != "" {
		parsed, err := time.Parse("2006-01-02", in.PurchaseDate)
		if err != nil {
			return fmt.Errorf("invalid purchase_date, expected YYYY-MM-DD")
		}
		asset.PurchaseDate = &parsed
	}

	asset.SerialNo = in.SerialNo
	asset.PurchaseCost = in.PurchaseCost
	asset.Condition = in.Condition
	asset.Depreciation = in.Depreciation
	asset.Supplier = in.Supplier
	asset.Warranty = in.Warranty
	asset.Description = in.Description
	asset.Category = in.Category
	asset.DepartmentID = in.DepartmentID
	asset.AssignedToID = in.AssignedToID
	if in.Status != "" {
		asset.Status = in.Status
	}
	return nil
}

func (c *AssetController) GetAllAssets(ctx *fiber.Ctx) error {
	repo := repositories.NewAssetRepository(c.DB)
	assets, err := repo.List(repositories.AssetFilter{
		Query:      ctx.Query("q"),
		Category:   ctx.Query("category"),
		Status:     ctx.Query("status"),
		Department: ctx.Query("department"),
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    assets,
	})
}

func (c *AssetController) GetAssetByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var asset models.Asset
	if err := c.DB.Preload("Department").Preload("AssignedTo").First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Asset not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Whether the caller may submit a new request for this asset.
	var pending int64
	c.DB.Model(&models.AssetRequest{}).
		Where("asset_id = ? AND user_id = ? AND status = ?", asset.ID, currentUserID(ctx), models.RequestPending).
		Count(&pending)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":     true,
		"data":        asset,
		"can_request": pending == 0,
	})
}

func (c *AssetController) CreateAsset(ctx *fiber.Ctx) error {
	var input assetInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var asset models.Asset
	if err := input.apply(&asset); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if asset.Status == "" {
		asset.Status = models.AssetStatusAvailable
	}

	repo := repositories.NewAssetRepository(c.DB)
	if err := repo.CreateWithNumber(&asset); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMissingAttribute):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, repositories.ErrNumberExhausted):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Department not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Asset created successfully",
		"data":    asset,
	})
}

func (c *AssetController) UpdateAsset(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var asset models.Asset
	if err := c.DB.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Asset not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input assetInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// The asset number is assigned once at creation and never rewritten.
	if err := input.apply(&asset); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Save(&asset).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Asset updated successfully",
		"data":    asset,
	})
}

func (c *AssetController) DeleteAsset(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var asset models.Asset
	if err := c.DB.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Asset not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		// Requests and stock take items referencing the asset go with it.
		if err := tx.Where("asset_id = ?", asset.ID).Delete(&models.AssetRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("asset_id = ?", asset.ID).Delete(&models.StockTakeItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&asset).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Asset deleted successfully",
	})
}

// NextAssetNumber previews the number the next asset in a department/category
// would receive, without creating anything.
func (c *AssetController) NextAssetNumber(ctx *fiber.Ctx) error {
	departmentID := ctx.QueryInt("department_id")
	category := ctx.Query("category")

	var department models.Department
	if departmentID > 0 {
		if err := c.DB.First(&department, departmentID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
		}
	}

	repo := repositories.NewAssetRepository(c.DB)
	number, err := repo.NextAssetNumber(&department, category)
	if err != nil {
		if errors.Is(err, repositories.ErrMissingAttribute) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"asset_no": number},
	})
}

// BackfillAssetNumbers assigns numbers to assets that were created without one.
func (c *AssetController) BackfillAssetNumbers(ctx *fiber.Ctx) error {
	repo := repositories.NewAssetRepository(c.DB)
	count, err := repo.BackfillNumbers()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Successfully updated %d asset numbers", count),
	})
}

func (c *AssetController) UploadAssetImage(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var asset models.Asset
	if err := c.DB.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Asset not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Image file is required"})
	}

	filename := idgen.NextID() + strings.ToLower(filepath.Ext(file.Filename))
	path := filepath.Join(config.UploadDir, filename)
	if err := ctx.SaveFile(file, path); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save file"})
	}

	if err := c.DB.Model(&asset).Update("image", path).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Image uploaded successfully",
		"data":    fiber.Map{"image": path},
	})
}

// ImportAssetsFromExcel bulk-creates assets from an .xlsx upload with columns:
// serial_no, category, department, description. Every row goes through the
// number generator like a single create.
func (c *AssetController) ImportAssetsFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	repo := repositories.NewAssetRepository(c.DB)
	created := 0
	var rowErrors []string

	for i, row := range rows[1:] {
		if len(row) < 3 {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: expected at least 3 columns", i+2))
			continue
		}

		serialNo := strings.TrimSpace(row[0])
		category := strings.TrimSpace(row[1])
		departmentName := strings.TrimSpace(row[2])
		description := ""
		if len(row) > 3 {
			description = strings.TrimSpace(row[3])
		}

		if !models.ValidCategory(category) {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: unknown category %q", i+2, category))
			continue
		}

		var department models.Department
		if err := c.DB.Where("name = ?", departmentName).First(&department).Error; err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: department %q not found", i+2, departmentName))
			continue
		}

		asset := models.Asset{
			SerialNo:     serialNo,
			Category:     category,
			DepartmentID: department.ID,
			Description:  description,
			Status:       models.AssetStatusAvailable,
		}
		if err := repo.CreateWithNumber(&asset); err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", i+2, err))
			continue
		}
		created++
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Imported %d assets", created),
		"errors":  rowErrors,
	})
}
