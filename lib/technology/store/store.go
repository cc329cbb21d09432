package technologystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "employability-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Technology) (id string, err error)
	FindByName(name string) (rec *dbmodels.Technology, err error)
	List() (list []dbmodels.Technology, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Technology) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) FindByName(name string) (*dbmodels.Technology, error) {
	rec := dbmodels.Technology{}
	err := i.db.
		Model(&dbmodels.Technology{}).
		Where("name = ?", name).
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

func (i impl) List() (list []dbmodels.Technology, err error) {
	list = []dbmodels.Technology{}
	err = i.db.
		Model(&dbmodels.Technology{}).
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
