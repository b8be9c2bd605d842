package main

import (
	"github.com/hibiken/asynq"

	rosterJob "waterpolo-backend/internal/domains/roster/job"
	"waterpolo-backend/internal/infrastructure/queue"
	"waterpolo-backend/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	deleteHeadshot *rosterJob.DeleteHeadshotHandler
	sweepOrphans   *rosterJob.SweepOrphansHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		deleteHeadshot: rosterJob.NewDeleteHeadshotHandler(c.Storage),
		sweepOrphans:   rosterJob.NewSweepOrphansHandler(c.RosterRepo, c.Storage),
	}
}

func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(queue.TypeHeadshotDelete, h.deleteHeadshot.ProcessTask)
	mux.HandleFunc(queue.TypeHeadshotSweep, h.sweepOrphans.ProcessTask)
}
