package userstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "employability-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	ExistByEmail(email string) (found bool, err error)
	List() (list []dbmodels.User, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Model(&dbmodels.User{}).
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

func (i impl) FindByEmail(email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Model(&dbmodels.User{}).
		Where("email = ?", email).
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

func (i impl) ExistByEmail(email string) (found bool, err error) {
	var exists bool
	err = i.db.Model(&dbmodels.User{}).
		Select("count(*) > 0").
		Where("email = ?", email).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) List() (list []dbmodels.User, err error) {
	list = []dbmodels.User{}
	err = i.db.
		Model(&dbmodels.User{}).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
