package model

// Role maps to roles.
type Role struct {
	ID          int64  `gorm:"primaryKey"                json:"id"`
	Name        string `gorm:"type:varchar(50);not null" json:"name"`
	Description string `gorm:"type:text"                 json:"description"`
	BaseModel
}

func (Role) TableName() string { return "roles" }

// Seeded role names.
const (
	RoleDepartmentalLecturer = "departmental_lecturer"
	RoleLevelCoordinator     = "level_coordinator"
	RoleSuperAdmin           = "super_admin"
)
