package models

import (
	"github.com/google/uuid"
)

// Organization holds the master record for a tenant organization. Each
// organization owns an isolated data partition named by PartitionKey and is
// administered by exactly one Admin.
type Organization struct {
	BaseModel
	Name         string    `json:"organization_name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	PartitionKey string    `json:"partition_key" gorm:"uniqueIndex;not null;size:110"`
	AdminID      uuid.UUID `json:"admin_id" gorm:"type:uuid;not null;index"`
	AdminEmail   string    `json:"admin_email" gorm:"not null;size:255"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
