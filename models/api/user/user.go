package userapimodels

import (
	"time"

	"employability-backend/models"
	dbmodels "employability-backend/models/db"
)

type UserView struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Role         models.UserRole `json:"role"`
	RoleName     string          `json:"role_name"`
	CreationDate time.Time       `json:"creation_date"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:           rec.ID,
		Name:         rec.Name,
		Email:        rec.Email,
		Role:         rec.Role,
		RoleName:     rec.Role.ToHuman(),
		CreationDate: rec.CreatedAt,
	}
}
