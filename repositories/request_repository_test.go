package repositories

import (
	"testing"

	"gridset-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRequest(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	it := seedDepartment(t, db, "IT")
	asset := seedAsset(t, db, it.ID, models.CategoryTechnology, "IT-technology-KOTDA-0001")
	user := seedUser(t, db, "alice")

	request, err := repo.Submit(asset.ID, user.ID, "Remote work laptop")
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, request.Status)
	assert.Nil(t, request.ApprovalDate)
	assert.False(t, request.RequestDate.IsZero())
}

func TestSubmitDuplicatePendingRequest(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	it := seedDepartment(t, db, "IT")
	asset := seedAsset(t, db, it.ID, models.CategoryTechnology, "IT-technology-KOTDA-0001")
	user := seedUser(t, db, "alice")

	_, err := repo.Submit(asset.ID, user.ID, "first")
	require.NoError(t, err)

	_, err = repo.Submit(asset.ID, user.ID, "second")
	assert.ErrorIs(t, err, ErrDuplicateRequest)

	var count int64
	db.Model(&models.AssetRequest{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSubmitAfterResolutionAllowed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	it := seedDepartment(t, db, "IT")
	asset := seedAsset(t, db, it.ID, models.CategoryTechnology, "IT-technology-KOTDA-0001")
	user := seedUser(t, db, "alice")

	first, err := repo.Submit(asset.ID, user.ID, "first")
	require.NoError(t, err)
	_, err = repo.Decide(first.ID, false)
	require.NoError(t, err)

	// Only a pending request blocks resubmission.
	_, err = repo.Submit(asset.ID, user.ID, "try again")
	assert.NoError(t, err)
}

func TestDecideApprove(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	it := seedDepartment(t, db, "IT")
	asset := seedAsset(t, db, it.ID, models.CategoryTechnology, "IT-technology-KOTDA-0001")
	user := seedUser(t, db, "alice")

	submitted, err := repo.Submit(asset.ID, user.ID, "laptop")
	require.NoError(t, err)

	decided, err := repo.Decide(submitted.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, decided.Status)
	require.NotNil(t, decided.ApprovalDate)

	var reloaded models.Asset
	require.NoError(t, db.First(&reloaded, asset.ID).Error)
	assert.Equal(t, models.AssetStatusInUse, reloaded.Status)
	require.NotNil(t, reloaded.AssignedToID)
	assert.Equal(t, user.ID, *reloaded.AssignedToID)
}

func TestDecideReject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	it := seedDepartment(t, db, "IT")
	asset := seedAsset(t, db, it.ID, models.CategoryTechnology, "IT-technology-KOTDA-0001")
	user := seedUser(t, db, "alice")

	submitted, err := repo.Submit(asset.ID, user.ID, "laptop")
	require.NoError(t, err)

	decided, err := repo.Decide(submitted.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, decided.Status)
	require.NotNil(t, decided.ApprovalDate)

	// Rejection never touches the asset.
	var reloaded models.Asset
	require.NoError(t, db.First(&reloaded, asset.ID).Error)
	assert.Equal(t, models.AssetStatusAvailable, reloaded.Status)
	assert.Nil(t, reloaded.AssignedToID)
}

func TestDecideIsTerminal(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	it := seedDepartment(t, db, "IT")
	asset := seedAsset(t, db, it.ID, models.CategoryTechnology, "IT-technology-KOTDA-0001")
	user := seedUser(t, db, "alice")

	submitted, err := repo.Submit(asset.ID, user.ID, "laptop")
	require.NoError(t, err)

	_, err = repo.Decide(submitted.ID, false)
	require.NoError(t, err)

	_, err = repo.Decide(submitted.ID, true)
	assert.ErrorIs(t, err, ErrRequestResolved)

	// The rejected decision stands.
	var reloaded models.AssetRequest
	require.NoError(t, db.First(&reloaded, submitted.ID).Error)
	assert.Equal(t, models.RequestRejected, reloaded.Status)
}

func TestClearResolved(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	it := seedDepartment(t, db, "IT")
	a := seedAsset(t, db, it.ID, models.CategoryTechnology, "IT-technology-KOTDA-0001")
	b := seedAsset(t, db, it.ID, models.CategoryTechnology, "IT-technology-KOTDA-0002")
	c := seedAsset(t, db, it.ID, models.CategoryTechnology, "IT-technology-KOTDA-0003")
	user := seedUser(t, db, "alice")

	pending, err := repo.Submit(a.ID, user.ID, "keep me")
	require.NoError(t, err)

	approved, err := repo.Submit(b.ID, user.ID, "approved")
	require.NoError(t, err)
	_, err = repo.Decide(approved.ID, true)
	require.NoError(t, err)

	rejected, err := repo.Submit(c.ID, user.ID, "rejected")
	require.NoError(t, err)
	_, err = repo.Decide(rejected.ID, false)
	require.NoError(t, err)

	deleted, err := repo.ClearResolved()
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	var remaining []models.AssetRequest
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, pending.ID, remaining[0].ID)
}
