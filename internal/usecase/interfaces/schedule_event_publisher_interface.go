package interfaces

//go:generate mockgen -source=schedule_event_publisher_interface.go -destination=mocks/schedule_event_publisher_interface_mock.go

import (
	"context"

	"smt_scheduler/internal/domain/entities"
)

// IScheduleEventPublisher is the optional Notification Bus. Publishing is
// fire-and-forget: an error is logged by the caller and never changes a run.
type IScheduleEventPublisher interface {
	PublishScheduled(ctx context.Context, event entities.ScheduleEvent) error
}
