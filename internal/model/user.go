package model

// User maps to users. Password holds the bcrypt hash and is never serialized.
type User struct {
	ID          int64  `gorm:"primaryKey"                 json:"id"`
	Title       string `gorm:"type:varchar(10);not null"  json:"title"`
	FirstName   string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string `gorm:"type:varchar(100);not null" json:"last_name"`
	Email       string `gorm:"type:varchar(100);not null" json:"email"`
	PhoneNumber string `gorm:"type:varchar(20);not null"  json:"phone_number"`
	Password    string `gorm:"type:varchar(100);not null" json:"-"`
	BaseModel

	Roles   []Role   `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID"         json:"roles,omitempty"`
	Courses []Course `gorm:"many2many:course_lecturers;joinForeignKey:UserID;joinReferences:CourseID" json:"courses,omitempty"`
}

func (User) TableName() string { return "users" }

// RoleNames flattens the preloaded roles.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// UserColumns excludes the password hash.
var UserColumns = []string{"users.id", "users.title", "users.first_name", "users.last_name", "users.email", "users.phone_number", "users.created_at", "users.updated_at"}
