package gpthandler

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"employability-backend/config"
	yagptclient "employability-backend/lib/gpt/yagpt-client"
	vacancyapimodels "employability-backend/models/api/vacancy"
)

type Provider interface {
	GenerateVacancyDescription(ctx context.Context, brief string) (resp vacancyapimodels.GenDescriptionResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		client: yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID),
	}
}

type impl struct {
	client yagptclient.Provider
}

func (i impl) GenerateVacancyDescription(ctx context.Context, brief string) (resp vacancyapimodels.GenDescriptionResponse, err error) {
	promt := config.Conf.YandexGPT.Promt
	if promt == "" {
		return resp, errors.New("инструкция для YandexGPT не задана в конфигурации")
	}
	resp.Description, err = i.client.GenerateByPromtAndText(ctx, promt,
		fmt.Sprintf("Сгенерируй описание для вакансии имея эти вводные данные: %s", brief))
	if err != nil {
		log.WithError(err).Error("ошибка генерации описания через YandexGPT")
		return resp, err
	}
	return resp, nil
}
