package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DeliveryZone is a destination-city boundary used to sanity-check the
// drop coordinates reported with a dispatch. Boundary is a GeoJSON
// Polygon/MultiPolygon geometry.
type DeliveryZone struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	City      string         `gorm:"size:255;uniqueIndex;not null" json:"city"`
	Boundary  datatypes.JSON `gorm:"type:jsonb;not null" json:"boundary"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (DeliveryZone) TableName() string {
	return "delivery_zones"
}
