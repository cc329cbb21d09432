package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"employability-backend/config"
)

var Client *minio.Client

func NewClient() (*minio.Client, error) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return minioClient, nil
}

// EnsureBucket создает бакет для резюме, если его еще нет
func EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := Client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return Client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}
