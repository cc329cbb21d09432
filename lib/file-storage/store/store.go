package resumestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "employability-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.ResumeFile) (id string, err error)
	FindByApplicationID(applicationID string) (rec *dbmodels.ResumeFile, err error)
	DeleteByApplicationID(applicationID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Save создает запись или обновляет метаданные при повторной загрузке резюме
func (i impl) Save(rec dbmodels.ResumeFile) (id string, err error) {
	existing, err := i.FindByApplicationID(rec.ApplicationID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		err = i.db.
			Model(&dbmodels.ResumeFile{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"file_name":    rec.FileName,
				"content_type": rec.ContentType,
				"size":         rec.Size,
			}).
			Error
		if err != nil {
			return "", err
		}
		return existing.ID, nil
	}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) FindByApplicationID(applicationID string) (*dbmodels.ResumeFile, error) {
	rec := dbmodels.ResumeFile{}
	err := i.db.
		Model(&dbmodels.ResumeFile{}).
		Where("application_id = ?", applicationID).
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

func (i impl) DeleteByApplicationID(applicationID string) error {
	return i.db.
		Where("application_id = ?", applicationID).
		Delete(&dbmodels.ResumeFile{}).
		Error
}
