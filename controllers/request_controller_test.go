package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"gridset-app/config"
	"gridset-app/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type requestTestEnv struct {
	app   *fiber.App
	db    *gorm.DB
	user  models.User
	asset models.Asset
}

// newRequestTestEnv wires the request endpoints against an in-memory database
// with the auth middleware replaced by a stub that injects the test user.
func newRequestTestEnv(t *testing.T) *requestTestEnv {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Asset{},
		&models.AssetRequest{},
	))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	user := models.User{Username: "alice", Name: "Alice", Email: "alice@gridset.local", Role: models.RoleStaff}
	require.NoError(t, db.Create(&user).Error)

	department := models.Department{Name: "IT"}
	require.NoError(t, db.Create(&department).Error)

	asset := models.Asset{
		AssetNo:      "IT-technology-KOTDA-0001",
		Category:     models.CategoryTechnology,
		DepartmentID: department.ID,
		Status:       models.AssetStatusAvailable,
	}
	require.NoError(t, db.Create(&asset).Error)

	requestController := NewRequestController(db)

	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("userID", float64(user.ID))
		ctx.Locals("role", models.RoleAdmin)
		return ctx.Next()
	})
	app.Post("/assets/:id/request", requestController.SubmitRequest)
	app.Get("/requests/mine", requestController.MyRequests)
	app.Post("/requests/:id/approve", requestController.ApproveRequest)
	app.Post("/requests/:id/reject", requestController.RejectRequest)

	return &requestTestEnv{app: app, db: db, user: user, asset: asset}
}

func (env *requestTestEnv) do(t *testing.T, method, path string, body interface{}) (*http.Response, fiber.Map) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)

	var decoded fiber.Map
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	resp.Body.Close()
	return resp, decoded
}

func TestSubmitRequestEndpoint(t *testing.T) {
	env := newRequestTestEnv(t)
	path := fmt.Sprintf("/assets/%d/request", env.asset.ID)

	resp, body := env.do(t, http.MethodPost, path, fiber.Map{"purpose": "Remote work laptop"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	var stored models.AssetRequest
	require.NoError(t, env.db.First(&stored).Error)
	assert.Equal(t, env.user.ID, stored.UserID)
	assert.Equal(t, models.RequestPending, stored.Status)
}

func TestSubmitRequestValidation(t *testing.T) {
	env := newRequestTestEnv(t)
	path := fmt.Sprintf("/assets/%d/request", env.asset.ID)

	resp, _ := env.do(t, http.MethodPost, path, fiber.Map{"purpose": ""})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = env.do(t, http.MethodPost, "/assets/99999/request", fiber.Map{"purpose": "x"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSubmitRequestDuplicateConflict(t *testing.T) {
	env := newRequestTestEnv(t)
	path := fmt.Sprintf("/assets/%d/request", env.asset.ID)

	resp, _ := env.do(t, http.MethodPost, path, fiber.Map{"purpose": "first"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = env.do(t, http.MethodPost, path, fiber.Map{"purpose": "second"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestApproveRequestEndpoint(t *testing.T) {
	env := newRequestTestEnv(t)

	_, body := env.do(t, http.MethodPost,
		fmt.Sprintf("/assets/%d/request", env.asset.ID), fiber.Map{"purpose": "laptop"})
	data := body["data"].(map[string]interface{})
	requestID := int(data["ID"].(float64))

	resp, _ := env.do(t, http.MethodPost, fmt.Sprintf("/requests/%d/approve", requestID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var asset models.Asset
	require.NoError(t, env.db.First(&asset, env.asset.ID).Error)
	assert.Equal(t, models.AssetStatusInUse, asset.Status)
	require.NotNil(t, asset.AssignedToID)
	assert.Equal(t, env.user.ID, *asset.AssignedToID)

	// A decided request cannot be decided again.
	resp, _ = env.do(t, http.MethodPost, fmt.Sprintf("/requests/%d/reject", requestID), nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestMyRequestsEndpoint(t *testing.T) {
	env := newRequestTestEnv(t)

	_, _ = env.do(t, http.MethodPost,
		fmt.Sprintf("/assets/%d/request", env.asset.ID), fiber.Map{"purpose": "laptop"})

	resp, body := env.do(t, http.MethodGet, "/requests/mine", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	requests := body["data"].([]interface{})
	assert.Len(t, requests, 1)
}
