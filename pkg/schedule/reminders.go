// Package schedule wires up the cron job that reminds candidates about
// interviews coming up within the next 24 hours.
package schedule

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dreamtoapp/modonty/pkg/hiring"
	"github.com/dreamtoapp/modonty/pkg/notify"
)

// Reminder wraps robfig/cron and manages the reminder loop.
// Задача советующая: любая ошибка хранилища или доставки
// логируется и цикл продолжается.
type Reminder struct {
	cron *cron.Cron
	apps hiring.Repository
	pub  notify.Publisher
	spec string // cron spec, e.g. "@every 1h"
	now  func() time.Time
}

// New creates a Reminder firing on the given cron spec.
func New(apps hiring.Repository, pub notify.Publisher, spec string) *Reminder {
	return &Reminder{
		cron: cron.New(cron.WithLogger(cron.DefaultLogger)),
		apps: apps,
		pub:  pub,
		spec: spec,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Start registers the job and starts the scheduler.
func (r *Reminder) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.spec, func() {
		r.runCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	r.cron.Start()
	log.Printf("[reminder] cron started, spec: %s", r.spec)
	return nil
}

// Stop gracefully shuts down the scheduler.
func (r *Reminder) Stop() {
	r.cron.Stop()
	log.Println("[reminder] cron stopped")
}

func (r *Reminder) runCycle(ctx context.Context) {
	now := r.now()
	apps, err := r.apps.ListDueReminders(ctx, now, now.Add(24*time.Hour))
	if err != nil {
		log.Printf("[reminder] ListDueReminders error: %v", err)
		return
	}
	for _, a := range apps {
		payload := map[string]string{
			"applicationId": a.ID.String(),
			"phone":         a.Phone,
			"scheduledAt":   a.ScheduledInterviewAt.Format(time.RFC3339),
			"locale":        a.Locale,
		}
		if err := r.pub.Publish(ctx, notify.EventInterviewReminder, payload); err != nil {
			log.Printf("[reminder] publish for %s failed: %v", a.ID, err)
			continue
		}
		// Отметка ставится только после успешной публикации: лучше
		// продублировать напоминание, чем потерять его.
		if err := r.apps.MarkReminded(ctx, a.ID, now); err != nil {
			log.Printf("[reminder] mark reminded %s failed: %v", a.ID, err)
		}
	}
}
