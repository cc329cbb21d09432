package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	s3client "employability-backend/s3"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("ошибка инициализации клиента S3")
		return
	}
	s3client.Client = minioClient

	if err = s3client.EnsureBucket(context.Background()); err != nil {
		log.WithError(err).Error("ошибка создания бакета для резюме")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
