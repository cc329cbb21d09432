package dbmodels

import (
	"employability-backend/models"
)

type User struct {
	BaseModel
	Name         string          `gorm:"type:varchar(255)"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex"`
	Password     string          `gorm:"type:varchar(255)"` // bcrypt-хэш
	Role         models.UserRole `gorm:"type:varchar(100);default:'CODER_ROLE'"`
	Applications []Application   `gorm:"foreignKey:UserID"`
}
