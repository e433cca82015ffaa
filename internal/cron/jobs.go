package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// reminderWindow is how far back the stale-order reminder job looks.
const reminderWindow = 7 * 24 * time.Hour

// helloMessage is the greeting the heartbeat expects from the facade.
const helloMessage = "Hello, CRM!"

type Params struct {
	fx.In

	Cfg    config.Config
	Log    *zap.Logger
	Client *Client
}

// Jobs holds the three periodic jobs. Each is safe to invoke one-shot from a
// command or repeatedly from the loop.
type Jobs struct {
	cfg    config.CronConfig
	log    *zap.Logger
	client *Client
	now    func() time.Time
}

func New(p Params) *Jobs {
	return &Jobs{
		cfg:    p.Cfg.Cron,
		log:    p.Log.Named("cron"),
		client: p.Client,
		now:    time.Now,
	}
}

// Heartbeat probes the facade's hello query and appends an UP/DOWN line.
// Failures degrade to a logged DOWN status; the job never returns an error.
func (j *Jobs) Heartbeat(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	status := "API OK"
	greeting, err := j.client.Hello(ctx)
	if err != nil || greeting != helloMessage {
		status = "API DOWN"
		j.log.Warn("heartbeat probe failed", zap.Error(err), zap.String("greeting", greeting))
	}

	line := fmt.Sprintf("%s CRM is alive (%s)", j.now().Format(heartbeatTimeLayout), status)
	if err := appendLine(j.cfg.HeartbeatLog, line); err != nil {
		j.log.Error("append heartbeat log", zap.Error(err))
	}
	return nil
}

// OrderReminders logs one reminder line per order placed within the last
// seven days. Failures are logged and returned so an external scheduler
// observes a non-zero exit.
func (j *Jobs) OrderReminders(ctx context.Context) error {
	since := j.now().Add(-reminderWindow)

	orders, err := j.client.OrdersSince(ctx, since)
	if err != nil {
		j.log.Error("fetch orders for reminders", zap.Error(err))
		line := fmt.Sprintf("%s - ERROR: Failed to process order reminders - %v", j.now().Format(jobTimeLayout), err)
		if logErr := appendLine(j.cfg.ReminderLog, line); logErr != nil {
			j.log.Error("append reminder log", zap.Error(logErr))
		}
		return err
	}

	for _, order := range orders {
		line := fmt.Sprintf("%s - Reminder: Order %s for %s", j.now().Format(jobTimeLayout), order.ID, order.Customer.Email)
		if err := appendLine(j.cfg.ReminderLog, line); err != nil {
			j.log.Error("append reminder log", zap.Error(err))
			return err
		}
	}

	j.log.Info("order reminders processed", zap.Int("count", len(orders)))
	return nil
}

// RestockLowStock invokes the restock mutation and logs one line per updated
// product. Failures are logged and returned.
func (j *Jobs) RestockLowStock(ctx context.Context) error {
	updated, err := j.client.RestockLowStock(ctx)
	if err != nil {
		j.log.Error("restock low-stock products", zap.Error(err))
		line := fmt.Sprintf("%s - ERROR: Failed to restock low-stock products - %v", j.now().Format(jobTimeLayout), err)
		if logErr := appendLine(j.cfg.RestockLog, line); logErr != nil {
			j.log.Error("append restock log", zap.Error(logErr))
		}
		return err
	}

	for _, product := range updated {
		line := fmt.Sprintf("%s - Restocked %s (stock: %d)", j.now().Format(jobTimeLayout), product.Name, product.Stock)
		if err := appendLine(j.cfg.RestockLog, line); err != nil {
			j.log.Error("append restock log", zap.Error(err))
			return err
		}
	}

	j.log.Info("low-stock products restocked", zap.Int("count", len(updated)))
	return nil
}
