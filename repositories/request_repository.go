package repositories

import (
	"time"

	"gridset-app/models"

	"gorm.io/gorm"
)

type RequestRepository struct {
	DB *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{DB: db}
}

// Submit creates a pending request for the asset. A user may hold at most one
// pending request per asset; the guard is a query, not a unique constraint, so
// two truly concurrent submissions can both pass it.
func (r *RequestRepository) Submit(assetID, userID uint, purpose string) (*models.AssetRequest, error) {
	var asset models.Asset
	if err := r.DB.First(&asset, assetID).Error; err != nil {
		return nil, err
	}

	var pending int64
	if err := r.DB.Model(&models.AssetRequest{}).
		Where("asset_id = ? AND user_id = ? AND status = ?", assetID, userID, models.RequestPending).
		Count(&pending).Error; err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, ErrDuplicateRequest
	}

	request := models.AssetRequest{
		AssetID: assetID,
		UserID:  userID,
		Purpose: purpose,
		Status:  models.RequestPending,
	}
	if err := r.DB.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// Decide moves a pending request to approved or rejected. Approval also assigns
// the asset to the requester and marks it in use, in the same transaction.
// Requests already decided are left untouched. No guard exists against the
// asset having been reassigned by another approval in the meantime; the last
// decision wins.
func (r *RequestRepository) Decide(requestID uint, approve bool) (*models.AssetRequest, error) {
	var request models.AssetRequest

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Asset").Preload("User").First(&request, requestID).Error; err != nil {
			return err
		}
		if request.Resolved() {
			return ErrRequestResolved
		}

		now := time.Now()
		request.ApprovalDate = &now

		if approve {
			request.Status = models.RequestApproved
			if err := tx.Model(&models.Asset{}).
				Where("id = ?", request.AssetID).
				Updates(map[string]interface{}{
					"assigned_to_id": request.UserID,
					"status":         models.AssetStatusInUse,
				}).Error; err != nil {
				return err
			}
		} else {
			request.Status = models.RequestRejected
		}

		return tx.Save(&request).Error
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ListByStatus returns requests in the given state, newest first.
func (r *RequestRepository) ListByStatus(status string) ([]models.AssetRequest, error) {
	var requests []models.AssetRequest
	err := r.DB.Preload("Asset").Preload("Asset.Department").Preload("User").
		Where("status = ?", status).
		Order("request_date DESC").
		Find(&requests).Error
	return requests, err
}

// ListByUser returns all requests a user has made, newest first.
func (r *RequestRepository) ListByUser(userID uint) ([]models.AssetRequest, error) {
	var requests []models.AssetRequest
	err := r.DB.Preload("Asset").Preload("Asset.Department").
		Where("user_id = ?", userID).
		Order("request_date DESC").
		Find(&requests).Error
	return requests, err
}

// ClearResolved permanently deletes every approved or rejected request and
// returns how many were removed. Pending requests survive.
func (r *RequestRepository) ClearResolved() (int64, error) {
	result := r.DB.Unscoped().
		Where("status <> ?", models.RequestPending).
		Delete(&models.AssetRequest{})
	return result.RowsAffected, result.Error
}
