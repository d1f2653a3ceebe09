package domain

import (
	"time"

	"gorm.io/datatypes"
)

// RawAction is one untrusted activity record as produced by storefront
// clients. The action label may arrive under either "action" or "type";
// "action" wins when both are present. ProductID may be empty.
type RawAction struct {
	ProductID string `json:"productId"`
	Action    string `json:"action"`
	Type      string `json:"type"`
}

type ActivityEvent struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	UserID    uint              `gorm:"column:user_id;not null;index" json:"user_id"`
	ProductID string            `gorm:"column:product_id;type:text" json:"product_id"`
	Action    string            `gorm:"column:action;type:text" json:"action"`
	Context   datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ActivityEvent) TableName() string {
	return "activity_events"
}
