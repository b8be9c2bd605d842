package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"waterpolo-backend/internal/config"
	"waterpolo-backend/pkg/logger"
)

// Scheduler registers periodic storage housekeeping jobs.
type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(cfg config.RedisConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

// RegisterJobs wires the nightly orphan sweep. Best-effort asset deletions
// can leave orphans in the bucket; the sweep reclaims them.
func (s *Scheduler) RegisterJobs() error {
	payload, err := json.Marshal(HeadshotSweepPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeHeadshotSweep, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *", // daily at 3 AM
		task,
		asynq.Queue(QueueStorage),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register HeadshotSweep job", err)
		return err
	}

	logger.Info("Registered HeadshotSweep: daily at 3 AM", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
