package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "employability-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.Technology{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Technology")
	}
	if err := DB.AutoMigrate(&dbmodels.Vacancy{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Vacancy")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := DB.AutoMigrate(&dbmodels.ResumeFile{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ResumeFile")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
