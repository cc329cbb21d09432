package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"employability-backend/config"
	"employability-backend/db"
	applicationstore "employability-backend/lib/application/store"
	"employability-backend/lib/events"
	resumestore "employability-backend/lib/file-storage/store"
	"employability-backend/lib/utils/apperr"
	"employability-backend/models"
	dbmodels "employability-backend/models/db"
)

// Максимальный размер файла резюме
const maxResumeSize = 5 << 20

type Provider interface {
	UploadResume(ctx context.Context, userID string, applicationID, fileName, contentType string, file []byte) error
	GetResume(ctx context.Context, userID string, role models.UserRole, applicationID string) (rec *dbmodels.ResumeFile, body []byte, err error)
}

var Instance Provider

func NewHandler(s3client *minio.Client) error {
	h := &impl{
		s3client:         s3client,
		resumeStore:      resumestore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
	}
	Instance = h
	// резюме удаляется вместе с откликом
	err := events.Bus.Subscribe(models.ApplicationRemovedTopic, h.onApplicationRemoved)
	if err != nil {
		return errors.Wrap(err, "ошибка подписки на событие удаления отклика")
	}
	return nil
}

type impl struct {
	s3client         *minio.Client
	resumeStore      resumestore.Provider
	applicationStore applicationstore.Provider
}

func (i impl) UploadResume(ctx context.Context, userID string, applicationID, fileName, contentType string, file []byte) error {
	if len(file) == 0 {
		return apperr.InvalidState("файл резюме пуст")
	}
	if len(file) > maxResumeSize {
		return apperr.InvalidState("файл резюме превышает допустимый размер")
	}
	rec, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil {
		return apperr.NotFound("отклик не найден")
	}
	if rec.UserID != userID {
		return apperr.Forbidden("нельзя приложить резюме к чужому отклику")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectName(applicationID),
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки резюме в хранилище")
	}
	_, err = i.resumeStore.Save(dbmodels.ResumeFile{
		ApplicationID: applicationID,
		FileName:      fileName,
		ContentType:   contentType,
		Size:          int64(len(file)),
	})
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения метаданных резюме")
	}
	return nil
}

func (i impl) GetResume(ctx context.Context, userID string, role models.UserRole, applicationID string) (*dbmodels.ResumeFile, []byte, error) {
	application, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения отклика")
	}
	if application == nil {
		return nil, nil, apperr.NotFound("отклик не найден")
	}
	if application.UserID != userID && !role.CanManageVacancies() {
		return nil, nil, apperr.Forbidden("нет доступа к резюме чужого отклика")
	}
	rec, err := i.resumeStore.FindByApplicationID(applicationID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения метаданных резюме")
	}
	if rec == nil {
		return nil, nil, apperr.NotFound("резюме не приложено к отклику")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectName(applicationID), minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения резюме из хранилища")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка чтения резюме из хранилища")
	}
	return rec, body, nil
}

func (i impl) onApplicationRemoved(event models.ApplicationEvent) {
	logger := log.WithField("application_id", event.ApplicationID)
	err := i.s3client.RemoveObject(context.Background(), config.Conf.S3.BucketName,
		objectName(event.ApplicationID), minio.RemoveObjectOptions{})
	if err != nil {
		logger.WithError(err).Error("не удалось удалить резюме из хранилища")
	}
	err = i.resumeStore.DeleteByApplicationID(event.ApplicationID)
	if err != nil {
		logger.WithError(err).Error("не удалось удалить метаданные резюме")
	}
}

func objectName(applicationID string) string {
	return fmt.Sprintf("resumes/%s", applicationID)
}
