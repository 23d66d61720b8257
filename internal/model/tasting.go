package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// TastingNote はユーザーのテイスティング記録です。
// appearance / nose / palate / conclusion は構造を解釈せず、JSON のまま保存して返します。
type TastingNote struct {
	TastingID  string                      `gorm:"primaryKey;size:64" json:"tasting_id"`
	UserID     string                      `gorm:"size:64;not null;index:idx_tasting_user_created,priority:1" json:"user_id"`
	WineName   string                      `gorm:"not null" json:"wine_name"`
	Producer   *string                     `json:"producer"`
	Vintage    *int                        `json:"vintage"`
	Region     *string                     `json:"region"`
	GrapeIDs   datatypes.JSONSlice[string] `gorm:"column:grape_ids" json:"grape_ids"`
	RegionID   *string                     `gorm:"size:64" json:"region_id"`
	Appearance datatypes.JSON              `json:"appearance"`
	Nose       datatypes.JSON              `json:"nose"`
	Palate     datatypes.JSON              `json:"palate"`
	Conclusion datatypes.JSON              `json:"conclusion"`
	Notes      *string                     `json:"notes"`
	CreatedAt  time.Time                   `gorm:"index:idx_tasting_user_created,priority:2" json:"created_at"`
}

func (TastingNote) TableName() string {
	return "tasting_notes"
}

type CreateTastingRequest struct {
	WineName   string          `json:"wine_name" validate:"required,max=255"`
	Producer   *string         `json:"producer"`
	Vintage    *int            `json:"vintage" validate:"omitempty,min=1000,max=9999"`
	Region     *string         `json:"region"`
	GrapeIDs   []string        `json:"grape_ids"`
	RegionID   *string         `json:"region_id"`
	Appearance json.RawMessage `json:"appearance"`
	Nose       json.RawMessage `json:"nose"`
	Palate     json.RawMessage `json:"palate"`
	Conclusion json.RawMessage `json:"conclusion"`
	Notes      *string         `json:"notes"`
}
