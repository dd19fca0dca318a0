package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/i474232898/weather-forecast/internal/weather"
)

// Refresher triggers a background forecast refresh.
type Refresher interface {
	Refresh(params weather.ForecastParams) (weather.Ticket, error)
}

// Scheduler periodically refreshes forecasts for the configured city keys.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	cityKeys  []string
	days      weather.Horizon
	interval  time.Duration
}

// New creates a new Scheduler.
func New(cityKeys []string, days weather.Horizon, interval time.Duration, refresher Refresher) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		refresher: refresher,
		cityKeys:  cityKeys,
		days:      days,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// The first run happens immediately.
func (s *Scheduler) Start() error {
	if len(s.cityKeys) == 0 {
		log.Println("scheduler: no city keys configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(s.RunOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce triggers one refresh per city key. Refreshes settle in the background.
func (s *Scheduler) RunOnce() {
	log.Println("scheduler: running forecast refresh job")
	for _, key := range s.cityKeys {
		t, err := s.refresher.Refresh(weather.ForecastParams{CityKey: key, Days: s.days})
		if err != nil {
			log.Printf("scheduler: refresh rejected for %s: %v", key, err)
			continue
		}
		log.Printf("scheduler: refresh %s triggered for %s (generation %d)", t.ID, key, t.Generation)
	}
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
