package model

// Course maps to courses. Semester is first or second, CourseType R, C or E.
type Course struct {
	ID                int64  `gorm:"primaryKey"                 json:"id"`
	CourseCode        string `gorm:"type:varchar(20);not null"  json:"course_code"`
	CourseTitle       string `gorm:"type:varchar(255);not null" json:"course_title"`
	CourseDescription string `gorm:"type:text;not null"         json:"course_description"`
	CourseUnit        int    `gorm:"not null"                   json:"course_unit"`
	Level             int    `gorm:"not null"                   json:"level"`
	Semester          string `gorm:"type:varchar(20);not null"  json:"semester"`
	CourseType        string `gorm:"type:varchar(1);not null"   json:"course_type"`
	CourseDepartment  string `gorm:"type:varchar(20);not null"  json:"course_department"`
	BaseModel

	Lecturers []User `gorm:"many2many:course_lecturers;joinForeignKey:CourseID;joinReferences:UserID" json:"lecturers,omitempty"`
}

func (Course) TableName() string { return "courses" }
