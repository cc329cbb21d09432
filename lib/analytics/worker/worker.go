package analyticsworker

import (
	"context"
	"time"

	"employability-backend/lib/analytics"
	baseworker "employability-backend/lib/utils/base-worker"
)

// StartWorker периодически пересчитывает сводку заполненности вакансий,
// чтобы запросы менеджеров отдавались из кэша
func StartWorker(ctx context.Context) {
	worker := baseworker.NewInstance("analytics_overview", 30*time.Second, time.Minute)
	go worker.Run(ctx, func(ctx context.Context) {
		_, err := analytics.Instance.Rebuild()
		if err != nil {
			worker.GetLogger().WithError(err).Error("ошибка пересчета сводки по вакансиям")
		}
	})
}
