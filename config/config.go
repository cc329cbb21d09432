package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gotify/configor"
	"github.com/pkg/errors"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"employability" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		SeedOnStart    *bool  `default:"true" env:"DB_SEED_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"dev-secret" env:"AUTH_JWT_SECRET" validate:"required"`
		JWTExpireInSec        int    `default:"86400" env:"AUTH_JWT_EXPIRE_IN_SEC" validate:"gt=0"`
		JWTRefreshExpireInSec int    `default:"604800" env:"AUTH_JWT_REFRESH_EXPIRE_IN_SEC" validate:"gt=0"`
		APIKey                string `default:"" env:"AUTH_API_KEY"`
		LoginRatePerMin       int    `default:"10" env:"AUTH_LOGIN_RATE_PER_MIN" validate:"gt=0"`
	}
	Seed struct {
		AdminEmail      string `default:"admin@employability.local" env:"SEED_ADMIN_EMAIL"`
		AdminPassword   string `default:"" env:"SEED_ADMIN_PASSWORD"`
		ManagerEmail    string `default:"manager@employability.local" env:"SEED_MANAGER_EMAIL"`
		ManagerPassword string `default:"" env:"SEED_MANAGER_PASSWORD"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		EmailFrom  string `default:"" env:"SMTP_EMAIL_FROM"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"employability-resume" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	YandexGPT struct {
		IAMToken  string `default:"" env:"YAGPT_IAM_TOKEN"`
		CatalogID string `default:"" env:"YAGPT_CATALOG_ID"`
		Promt     string `default:"Ты - рекрутер IT-компании. Пиши дружелюбно и по делу." env:"YAGPT_PROMT"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	if err = validator.New().Struct(conf); err != nil {
		panic(errors.Wrap(err, "некорректная конфигурация").Error())
	}
	Conf = conf
}
