package importworker

import (
	"context"
	"time"

	"github.com/pkg/errors"
	externalvacancyhandler "job-board-backend/lib/external-vacancy"
	baseworker "job-board-backend/lib/utils/base-worker"
	"job-board-backend/models"
	externalvacancyapimodels "job-board-backend/models/api/externalvacancy"
)

// StartWorker schedules the periodic external vacancy import. A tick that
// fires while a cycle is still running is skipped, the next one retries.
// Cycle failures are logged and swallowed, the schedule itself never dies.
func StartWorker(ctx context.Context, firstRunDelay, runInterval time.Duration) {
	i := &impl{
		handler: externalvacancyhandler.Instance,
		BaseImpl: baseworker.NewInstance(
			"ExternalVacancyImport",
			firstRunDelay,
			runInterval,
		),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	*baseworker.BaseImpl
	handler externalvacancyhandler.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	result, err := i.handler.Import(ctx, externalvacancyapimodels.ImportRequest{})
	if err != nil {
		if errors.Is(err, models.ErrImportRunning) {
			logger.Info("previous import cycle still running, tick skipped")
			return
		}
		logger.WithError(err).Error("import cycle failed")
		return
	}
	logger.
		WithField("inserted", result.InsertedCount).
		Info("import cycle completed")
}
