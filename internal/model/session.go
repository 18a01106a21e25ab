package model

// Session is one academic term. At most one row has Current set.
type Session struct {
	ID      int64  `gorm:"primaryKey"                json:"id"`
	Date    string `gorm:"type:varchar(50);not null" json:"date"`
	Current bool   `gorm:"not null;default:false"    json:"current"`
	BaseModel
}

func (Session) TableName() string { return "sessions" }
