package initializers

import (
	"context"
	"time"

	"job-board-backend/config"
	"job-board-backend/fiberlog"
	externalvacancyhandler "job-board-backend/lib/external-vacancy"
	importworker "job-board-backend/lib/external-vacancy/import-worker"
	xlsexport "job-board-backend/lib/export/xls"
	"job-board-backend/lib/jsearch/client"
	vacancyhandler "job-board-backend/lib/vacancy"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	client.NewProvider(
		config.Conf.JSearch.Host,
		config.Conf.JSearch.ApiKey,
		config.Conf.JSearch.Query,
		config.Conf.JSearch.Pages,
		config.Conf.JSearch.Country,
		time.Duration(config.Conf.JSearch.RequestTimeout)*time.Second,
	)
	xlsexport.NewHandler()
	vacancyhandler.NewHandler()
	externalvacancyhandler.NewHandler(time.Duration(config.Conf.JSearch.ImportCycleTimeout) * time.Second)
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	importworker.StartWorker(ctx,
		time.Duration(config.Conf.JSearch.ImportStartDelay)*time.Second,
		time.Duration(config.Conf.JSearch.ImportPeriod)*time.Hour,
	)
}
