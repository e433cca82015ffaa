package cron

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// RunForever runs all three jobs on their configured intervals until ctx is
// cancelled. A panicking job is recovered and the loop continues.
func (j *Jobs) RunForever(ctx context.Context) {
	heartbeat := time.NewTicker(j.cfg.HeartbeatEvery)
	defer heartbeat.Stop()
	reminders := time.NewTicker(j.cfg.RemindersEvery)
	defer reminders.Stop()
	restock := time.NewTicker(j.cfg.RestockEvery)
	defer restock.Stop()

	j.runJob(ctx, "heartbeat", j.Heartbeat)

	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			j.runJob(ctx, "heartbeat", j.Heartbeat)
		case <-reminders.C:
			j.runJob(ctx, "order_reminders", j.OrderReminders)
		case <-restock.C:
			j.runJob(ctx, "restock_low_stock", j.RestockLowStock)
		}
	}
}

func (j *Jobs) runJob(ctx context.Context, name string, fn func(context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			j.log.Error("job panicked", zap.String("job", name), zap.Any("panic", r))
		}
	}()

	start := time.Now()
	err := fn(ctx)
	if err != nil {
		j.log.Error("job failed", zap.String("job", name), zap.Duration("took", time.Since(start)), zap.Error(err))
		return
	}
	j.log.Info("job finished", zap.String("job", name), zap.Duration("took", time.Since(start)))
}

func startLoop(lc fx.Lifecycle, jobs *Jobs) {
	loopCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go jobs.RunForever(loopCtx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

// Module wires the job runner. LoopModule additionally starts the ticker loop.
var Module = fx.Module("cron",
	fx.Provide(NewClient),
	fx.Provide(New),
)

var LoopModule = fx.Module("cron.loop",
	Module,
	fx.Invoke(startLoop),
)
