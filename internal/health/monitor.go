// Background conflict surveillance. Conflicts are advisory: the resolver
// always picks a deterministic winner, so the monitor only raises
// notifications for operators to clean up.
package health

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/db"
	"github.com/Luxview-Media/luxview/internal/model"
	"github.com/Luxview-Media/luxview/internal/mqtt"
	"github.com/Luxview-Media/luxview/internal/schedule"
)

type Monitor struct {
	store  db.Store
	engine *schedule.Engine
	cron   *cron.Cron
}

func NewMonitor(store db.Store, engine *schedule.Engine) *Monitor {
	return &Monitor{store: store, engine: engine, cron: cron.New()}
}

// Start schedules the conflict sweep every 15 minutes and runs one
// immediately.
func (m *Monitor) Start() error {
	if _, err := m.cron.AddFunc("*/15 * * * *", m.sweep); err != nil {
		return err
	}
	m.cron.Start()
	go m.sweep()
	return nil
}

func (m *Monitor) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
}

// pairKey identifies an unordered schedule pair.
func pairKey(a, b int) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("schedule conflict: %d/%d", a, b)
}

func (m *Monitor) sweep() {
	today := time.Now()

	schedules, err := m.store.SchedulesActiveOn(today)
	if err != nil {
		log.Error().Err(err).Msg("conflict sweep could not load schedules")
		return
	}

	seen := make(map[string]bool)
	alerts := 0
	for _, s := range schedules {
		conflicts, err := m.engine.FindConflicts(s, today)
		if err != nil {
			log.Error().Err(err).Int("schedule_id", s.ID).Msg("conflict check failed in sweep")
			continue
		}
		for _, c := range conflicts {
			key := pairKey(c.Schedule.ID, c.Other.ID)
			if seen[key] {
				continue
			}
			seen[key] = true

			// one alert per pair per day
			exists, err := m.store.RecentConflictNotificationExists(key)
			if err != nil || exists {
				continue
			}

			message := fmt.Sprintf("%q and %q: %s", c.Schedule.Name, c.Other.Name, c.Details)
			if _, err := m.store.CreateNotification(model.Notification{
				Category: model.NotificationScheduleConflict,
				Title:    key,
				Message:  message,
			}); err != nil {
				continue
			}
			alerts++

			if err := mqtt.Broadcast(mqtt.Command{Action: mqtt.ActionConflictAlert, Payload: message}); err != nil {
				log.Warn().Err(err).Msg("could not broadcast conflict alert")
			}
		}
	}

	if alerts > 0 {
		log.Info().Int("alerts", alerts).Int("schedules", len(schedules)).Msg("conflict sweep raised alerts")
	} else {
		log.Debug().Int("schedules", len(schedules)).Msg("conflict sweep clean")
	}
}
