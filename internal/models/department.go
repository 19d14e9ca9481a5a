package models

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name  string    `gorm:"type:varchar(200);not null" json:"name"`
	Email string    `gorm:"type:varchar(120);unique;not null" json:"email"`

	Ministry       string `gorm:"type:varchar(200)" json:"ministry"`
	DepartmentType string `gorm:"type:varchar(100)" json:"department_type"`
	Location       string `gorm:"type:varchar(100)" json:"location"`
	Description    string `gorm:"type:text" json:"description"`

	ContactPerson string `gorm:"type:varchar(100)" json:"contact_person"`
	ContactPhone  string `gorm:"type:varchar(15)" json:"contact_phone"`

	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Department) TableName() string {
	return "departments"
}
