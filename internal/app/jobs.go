package app

import (
	"context"
	"time"

	"github.com/itlabra/xmlcatalog/internal/catalog"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// initJob registers background jobs. The catalog is read-only at
// runtime, so the only job is a periodic size report.
func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	if loc == nil {
		loc = time.Local
	}
	a.sched = cron.New(cron.WithParser(cronParser), cron.WithLocation(loc))

	reader := catalog.NewService(a.gormDB)
	_, err := a.sched.AddFunc("@every 1h", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		total, err := reader.Count(ctx)
		if err != nil {
			zap.L().Error("catalog stats job failed", zap.Error(err))
			return
		}
		zap.L().Info("catalog stats", zap.Int64("products", total))
	})
	if err != nil {
		zap.L().Error("failed to register catalog stats job", zap.Error(err))
	}

	a.sched.Start()
}
