package db

import (
	log "github.com/sirupsen/logrus"

	"employability-backend/config"
	authhelpers "employability-backend/lib/utils/auth-helpers"
	"employability-backend/models"
	dbmodels "employability-backend/models/db"
)

// InitPreload добавляет служебные учетки администратора и менеджера,
// если заданы пароли в настройках
func InitPreload() {
	addServiceUser("администратор", config.Conf.Seed.AdminEmail, config.Conf.Seed.AdminPassword, models.UserRoleAdmin)
	addServiceUser("менеджер", config.Conf.Seed.ManagerEmail, config.Conf.Seed.ManagerPassword, models.UserRoleManager)
}

func addServiceUser(human, email, password string, role models.UserRole) {
	logger := log.WithField("email", email)
	if email == "" || password == "" {
		logger.Warnf("служебный %s не добавлен, отсутствует настройка почты или пароля", human)
		return
	}
	var count int64
	err := DB.Model(&dbmodels.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		logger.WithError(err).Errorf("ошибка проверки служебного пользователя (%s)", human)
		return
	}
	if count > 0 {
		return
	}
	hash, err := authhelpers.HashPassword(password)
	if err != nil {
		logger.WithError(err).Errorf("ошибка добавления служебного пользователя (%s)", human)
		return
	}
	rec := dbmodels.User{
		Name:     role.ToHuman(),
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err = DB.Create(&rec).Error; err != nil {
		logger.WithError(err).Errorf("ошибка добавления служебного пользователя (%s)", human)
		return
	}
	logger.Infof("добавлен служебный пользователь (%s)", human)
}
