package initializers

import (
	"context"

	"employability-backend/config"
	"employability-backend/fiberlog"
	"employability-backend/lib/analytics"
	analyticsworker "employability-backend/lib/analytics/worker"
	applicationhandler "employability-backend/lib/application"
	authhandler "employability-backend/lib/auth"
	"employability-backend/lib/events"
	xlsexport "employability-backend/lib/export/xls"
	filestorage "employability-backend/lib/file-storage"
	gpthandler "employability-backend/lib/gpt"
	"employability-backend/lib/notify"
	technologyhandler "employability-backend/lib/technology"
	vacancyhandler "employability-backend/lib/vacancy"
	connectionhub "employability-backend/lib/ws/hub/connection-hub"
	wspush "employability-backend/lib/ws/push"
	s3client "employability-backend/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	events.Init()
	connectionhub.Init()

	technologyhandler.NewHandler()
	vacancyhandler.NewHandler()
	applicationhandler.NewHandler()
	authhandler.NewHandler()
	xlsexport.NewHandler()
	gpthandler.NewHandler()
	analytics.NewHandler()

	if err := notify.NewHandler(); err != nil {
		panic(err.Error())
	}
	if err := filestorage.NewHandler(s3client.Client); err != nil {
		panic(err.Error())
	}
	if err := wspush.Subscribe(); err != nil {
		panic(err.Error())
	}

	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача пересчета сводки заполненности вакансий
	analyticsworker.StartWorker(ctx)
}
