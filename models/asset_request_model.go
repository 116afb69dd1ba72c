package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// AssetRequest is a staff request to be assigned an asset. A request starts
// pending and is decided exactly once; ApprovalDate is nil while pending.
type AssetRequest struct {
	gorm.Model
	AssetID      uint       `json:"asset_id" gorm:"not null;index"`
	Asset        Asset      `json:"asset,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	UserID       uint       `json:"user_id" gorm:"not null;index"`
	User         User       `json:"user,omitempty"`
	Purpose      string     `json:"purpose"`
	RequestDate  time.Time  `json:"request_date" gorm:"autoCreateTime"`
	Status       string     `json:"status" gorm:"size:20;default:'pending';index"`
	ApprovalDate *time.Time `json:"approval_date"`
}

func (r *AssetRequest) Resolved() bool {
	return r.Status != RequestPending
}
