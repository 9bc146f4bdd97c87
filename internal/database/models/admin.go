package models

// Admin is the administrator account of an organization. HashedPassword never
// leaves the process: it is excluded from JSON and only compared through the
// credential utilities.
type Admin struct {
	BaseModel
	Email            string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	HashedPassword   string `json:"-" gorm:"not null;size:255"`
	OrganizationName string `json:"organization_name" gorm:"not null;size:100"`
	PartitionKey     string `json:"partition_key" gorm:"not null;size:110"`
}

// TableName returns the table name for Admin
func (Admin) TableName() string {
	return "admins"
}
