package applicationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "employability-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (rec *dbmodels.Application, err error)
	GetByIDFull(id string) (rec *dbmodels.Application, err error)
	FindByUserAndVacancy(userID, vacancyID string) (rec *dbmodels.Application, err error)
	CountActiveByUser(userID string) (count int64, err error)
	Delete(id string) (deleted bool, err error)
	ListAll() (list []dbmodels.Application, err error)
	ListByUser(userID string) (list []dbmodels.Application, err error)
	ListByVacancy(vacancyID string) (list []dbmodels.Application, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// GetByIDFull возвращает отклик вместе с пользователем и вакансией -
// вызывающему нужна денормализованная карточка, а не только внешние ключи
func (i impl) GetByIDFull(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Preload("User").
		Preload("Vacancy").
		Preload("Vacancy.Technologies").
		Preload("Vacancy.Applications").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) FindByUserAndVacancy(userID, vacancyID string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("user_id = ?", userID).
		Where("vacancy_id = ?", vacancyID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// CountActiveByUser считает отклики пользователя только по активным вакансиям:
// закрытая вакансия освобождает квоту
func (i impl) CountActiveByUser(userID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Application{}).
		Joins("join vacancies as v on applications.vacancy_id = v.id").
		Where("applications.user_id = ?", userID).
		Where("v.is_active = ?", true).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) Delete(id string) (deleted bool, err error) {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Application{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) ListAll() (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Preload("User").
		Preload("Vacancy").
		Preload("Vacancy.Technologies").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByUser(userID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("user_id = ?", userID).
		Preload("Vacancy").
		Preload("Vacancy.Technologies").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByVacancy(vacancyID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("vacancy_id = ?", vacancyID).
		Preload("User").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
