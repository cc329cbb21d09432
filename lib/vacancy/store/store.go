package vacancystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "employability-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Vacancy) (id string, err error)
	GetByID(id string) (rec *dbmodels.Vacancy, err error)
	GetByIDWithApplicants(id string) (rec *dbmodels.Vacancy, err error)
	Update(id string, updMap map[string]interface{}) error
	ReplaceTechnologies(id string, technologies []dbmodels.Technology) error
	List(includeInactive bool) (list []dbmodels.Vacancy, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vacancy) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Vacancy, error) {
	rec := dbmodels.Vacancy{}
	err := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) GetByIDWithApplicants(id string) (*dbmodels.Vacancy, error) {
	rec := dbmodels.Vacancy{}
	err := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Preload(clause.Associations).
		Preload("Applications.User").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) ReplaceTechnologies(id string, technologies []dbmodels.Technology) error {
	rec := dbmodels.Vacancy{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Model(&rec).
		Association("Technologies").
		Replace(technologies)
}

func (i impl) List(includeInactive bool) (list []dbmodels.Vacancy, err error) {
	list = []dbmodels.Vacancy{}
	tx := i.db.
		Model(&dbmodels.Vacancy{})
	if !includeInactive {
		tx = tx.Where("is_active = ?", true)
	}
	err = tx.
		Order("created_at desc").
		Preload(clause.Associations).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
