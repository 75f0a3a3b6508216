package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/domain/scheduling"
	"smt_scheduler/internal/infrastructure/logging"
	"smt_scheduler/internal/infrastructure/metrics"
	"smt_scheduler/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRunInProgress      = errors.New("an auto-schedule run is already in progress")
	ErrStoreUnavailable   = errors.New("work-order store or line registry unavailable")
	ErrRunLockUnavailable = errors.New("run lock unavailable")
	ErrInvalidAsOf        = errors.New("invalid as_of date")
	ErrInvalidRunOptions  = errors.New("invalid auto-schedule options")
	errRunLockNotAcquired = errors.New("run lock held elsewhere")
)

// RunLockKey is the shared key serialising runs across processes.
const RunLockKey = "smt:autoschedule:lock"

// Run results reported to metrics.
const (
	runResultCompleted = "completed"
	runResultPartial   = "partial"
	runResultRejected  = "rejected"
	runResultError     = "error"
)

// IAutoScheduleUseCase runs the Lock, Clear, Rank and Assign phases over every
// active work order.
type IAutoScheduleUseCase interface {
	RunAutoSchedule(ctx context.Context, asOf time.Time) (entities.RunResult, error)
}

// AutoScheduleOptions tunes a run.
type AutoScheduleOptions struct {
	LockedPerLine    int
	Budget           time.Duration
	ClearConcurrency int
	PublishTimeout   time.Duration
	LockTTLSlack     time.Duration
	Planner          scheduling.PlannerOptions
}

func DefaultAutoScheduleOptions() AutoScheduleOptions {
	return AutoScheduleOptions{
		LockedPerLine:    2,
		Budget:           30 * time.Second,
		ClearConcurrency: 4,
		PublishTimeout:   2 * time.Second,
		LockTTLSlack:     30 * time.Second,
		Planner: scheduling.PlannerOptions{
			Slot:         scheduling.DefaultSlotOptions(),
			DueDateAware: true,
			Location:     time.UTC,
		},
	}
}

// Validate rejects options a run cannot work with.
func (o AutoScheduleOptions) Validate() error {
	switch {
	case o.LockedPerLine < 0:
		return fmt.Errorf("%w: locked per line must not be negative", ErrInvalidRunOptions)
	case o.Budget <= 0:
		return fmt.Errorf("%w: budget must be positive", ErrInvalidRunOptions)
	case o.ClearConcurrency <= 0:
		return fmt.Errorf("%w: clear concurrency must be positive", ErrInvalidRunOptions)
	case o.Planner.Slot.LookaheadDays <= 0:
		return fmt.Errorf("%w: lookahead days must be positive", ErrInvalidRunOptions)
	}
	return nil
}

// AutoScheduleOption wires an optional collaborator.
type AutoScheduleOption func(*AutoScheduleUseCase)

func WithPublisher(p interfaces.IScheduleEventPublisher) AutoScheduleOption {
	return func(u *AutoScheduleUseCase) { u.publisher = p }
}

func WithRunLock(l interfaces.IRunLock) AutoScheduleOption {
	return func(u *AutoScheduleUseCase) { u.runLock = l }
}

func WithClock(c scheduling.Clock) AutoScheduleOption {
	return func(u *AutoScheduleUseCase) { u.clock = c }
}

func WithLogger(l *logging.Logger) AutoScheduleOption {
	return func(u *AutoScheduleUseCase) { u.log = l.WithComponent("schedule.usecase") }
}

func WithMetrics(m *metrics.Metrics) AutoScheduleOption {
	return func(u *AutoScheduleUseCase) { u.metrics = m }
}

type AutoScheduleUseCase struct {
	workOrders interfaces.IWorkOrderRepository
	lines      interfaces.IProductionLineRepository
	publisher  interfaces.IScheduleEventPublisher
	runLock    interfaces.IRunLock
	clock      scheduling.Clock
	planner    *scheduling.Planner
	opts       AutoScheduleOptions
	log        *logging.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer

	mu sync.Mutex
}

var _ IAutoScheduleUseCase = (*AutoScheduleUseCase)(nil)

func NewAutoScheduleUseCase(
	workOrders interfaces.IWorkOrderRepository,
	lines interfaces.IProductionLineRepository,
	opts AutoScheduleOptions,
	options ...AutoScheduleOption,
) *AutoScheduleUseCase {
	u := &AutoScheduleUseCase{
		workOrders: workOrders,
		lines:      lines,
		clock:      scheduling.SystemClock{},
		planner:    scheduling.NewPlanner(opts.Planner),
		log:        logging.Nop(),
		tracer:     otel.Tracer("smt_scheduler/usecase"),
	}
	for _, o := range options {
		o(u)
	}
	opts.Planner = u.planner.Options()
	u.opts = opts
	return u
}

// RunAutoSchedule re-plans every unlocked, non-terminal work order.
//
// Only a failure to read the store or the registry before any mutation is
// returned as an error; everything else is reported in the result.
func (u *AutoScheduleUseCase) RunAutoSchedule(ctx context.Context, asOf time.Time) (entities.RunResult, error) {
	if !u.mu.TryLock() {
		u.recordRun(runResultRejected, 0)
		return entities.RunResult{}, ErrRunInProgress
	}
	defer u.mu.Unlock()

	if u.runLock != nil {
		release, err := u.acquireRunLock(ctx)
		if err != nil {
			if errors.Is(err, errRunLockNotAcquired) {
				u.recordRun(runResultRejected, 0)
				return entities.RunResult{}, ErrRunInProgress
			}
			u.recordRun(runResultError, 0)
			return entities.RunResult{}, fmt.Errorf("%w: %v", ErrRunLockUnavailable, err)
		}
		defer release()
	}

	startedAt := u.clock.Now()
	if asOf.IsZero() {
		asOf = startedAt
	}
	runID := uuid.NewString()
	log := u.log.WithRunID(runID)

	ctx, span := u.tracer.Start(ctx, "autoschedule.run", trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.String("run.as_of", asOf.Format(time.RFC3339)),
	))
	defer span.End()

	res, err := u.run(ctx, runID, asOf, startedAt, log)
	duration := u.clock.Now().Sub(startedAt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.WithError(err).Error("auto-schedule run aborted")
		u.recordRun(runResultError, duration)
		return entities.RunResult{}, err
	}

	span.SetAttributes(
		attribute.Int("run.scheduled", res.ScheduledCount),
		attribute.Int("run.failed", res.FailedCount),
		attribute.Int("run.unprocessed", res.UnprocessedCount),
		attribute.Bool("run.partial", res.Partial),
	)
	span.SetStatus(codes.Ok, "")

	result := runResultCompleted
	if res.Partial {
		result = runResultPartial
	}
	u.recordRun(result, duration)
	if u.metrics != nil {
		u.metrics.RecordJobs(string(entities.JobOutcomeScheduled), res.ScheduledCount)
		u.metrics.RecordJobs(string(entities.JobOutcomeFailed), res.FailedCount)
		u.metrics.RecordJobs(string(entities.JobOutcomeUnprocessed), res.UnprocessedCount)
		u.metrics.RecordJobs(string(entities.JobOutcomeLocked), res.LockedCount)
		u.metrics.RecordLaneConfigErrors(len(res.LaneErrors))
	}

	log.Info("auto-schedule run finished",
		"scheduled", res.ScheduledCount,
		"failed", res.FailedCount,
		"unprocessed", res.UnprocessedCount,
		"locked", res.LockedCount,
		"cleared", res.ClearedCount,
		"clearFailures", res.ClearFailures,
		"laneErrors", len(res.LaneErrors),
		"partial", res.Partial,
		"duration", duration.String(),
	)
	return res, nil
}

func (u *AutoScheduleUseCase) acquireRunLock(ctx context.Context) (func(), error) {
	release, ok, err := u.runLock.Acquire(ctx, RunLockKey, u.opts.Budget+u.opts.LockTTLSlack)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errRunLockNotAcquired
	}
	return func() {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := release(rctx); err != nil {
			u.log.WithError(err).Warn("failed to release run lock")
		}
	}, nil
}

// laneSet splits the registry into lanes the engine places on, lines whose
// work is pinned and lines whose work is moved elsewhere.
type laneSet struct {
	lanes  []scheduling.Lane
	pinned map[string]bool
	errors []entities.LaneError
}

func (u *AutoScheduleUseCase) buildLanes(lines []entities.ProductionLine, log *logging.Logger) laneSet {
	ls := laneSet{pinned: make(map[string]bool)}
	for _, line := range lines {
		if !scheduling.Engaged(line) {
			// Work on a stopped line is moved; a line left out of auto-scheduling keeps its work.
			if line.Status.IsOperational() {
				ls.pinned[line.ID] = true
			}
			continue
		}
		lane, err := scheduling.NewLane(line, u.opts.Planner.Location)
		if err != nil {
			log.WithError(err).Warn("line excluded from run", "lineId", line.ID, "line", line.Name)
			ls.pinned[line.ID] = true
			ls.errors = append(ls.errors, entities.LaneError{LineID: line.ID, Name: line.Name, Message: err.Error()})
			continue
		}
		ls.lanes = append(ls.lanes, lane)
	}
	return ls
}

func (u *AutoScheduleUseCase) run(ctx context.Context, runID string, asOf, startedAt time.Time, log *logging.Logger) (entities.RunResult, error) {
	lines, err := u.lines.ListLines(ctx)
	if err != nil {
		return entities.RunResult{}, fmt.Errorf("%w: list lines: %v", ErrStoreUnavailable, err)
	}
	all, err := u.workOrders.ListActive(ctx)
	if err != nil {
		return entities.RunResult{}, fmt.Errorf("%w: list work orders: %v", ErrStoreUnavailable, err)
	}

	res := entities.RunResult{RunID: runID, AsOf: asOf, StartedAt: startedAt, Outcomes: []entities.JobOutcome{}}
	ls := u.buildLanes(lines, log)
	res.LaneErrors = ls.errors

	jobs := make([]entities.WorkOrder, 0, len(all))
	for _, j := range all {
		if !j.Status.IsTerminal() {
			jobs = append(jobs, j)
		}
	}

	rc := scheduling.NewRunContext(runID, asOf)

	// Lock
	_, lockSpan := u.tracer.Start(ctx, "autoschedule.lock")
	locked := scheduling.LockFirstPerLine(jobs, u.opts.LockedPerLine)
	held := make([]entities.WorkOrder, 0, len(locked))
	var open []entities.WorkOrder
	for _, j := range jobs {
		switch {
		case locked[j.ID]:
			j.Locked = true
			held = append(held, j)
		case j.IsScheduled() && ls.pinned[*j.LineID]:
			held = append(held, j)
		default:
			open = append(open, j)
		}
	}
	slices.SortStableFunc(held, func(a, b entities.WorkOrder) int {
		return a.ScheduledStart.Compare(*b.ScheduledStart)
	})
	for _, j := range held {
		rc.Seed(*j.LineID, entities.Interval{WorkOrderID: j.ID, Start: *j.ScheduledStart, End: *j.ScheduledEnd})
		reason := ""
		if !j.Locked {
			reason = entities.ReasonPinned
		}
		res.Outcomes = append(res.Outcomes, entities.JobOutcome{
			WorkOrderID: j.ID,
			Number:      j.Number,
			Outcome:     entities.JobOutcomeLocked,
			LineID:      *j.LineID,
			Start:       j.ScheduledStart,
			End:         j.ScheduledEnd,
			Reason:      reason,
		})
	}
	res.LockedCount = len(held)
	lockSpan.SetAttributes(attribute.Int("jobs.locked", len(held)))
	lockSpan.End()

	// Clear
	cleared, failures := u.clearPhase(ctx, open, log)
	res.ClearedCount, res.ClearFailures = cleared, failures

	// Rank
	_, rankSpan := u.tracer.Start(ctx, "autoschedule.rank")
	ranked := scheduling.Rank(open, asOf, u.opts.Planner.Location)
	rankSpan.SetAttributes(attribute.Int("jobs.ranked", len(ranked)))
	rankSpan.End()

	// Assign
	u.assignPhase(ctx, ranked, ls.lanes, rc, asOf, startedAt, &res, log)

	res.FinishedAt = u.clock.Now()
	return res, nil
}

// clearPhase removes the assignment of every open job that holds one. Clears
// are best-effort and all finish before ranking starts.
func (u *AutoScheduleUseCase) clearPhase(ctx context.Context, open []entities.WorkOrder, log *logging.Logger) (cleared, failures int) {
	ctx, span := u.tracer.Start(ctx, "autoschedule.clear")
	defer span.End()

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(u.opts.ClearConcurrency)
	for _, j := range open {
		if j.LineID == nil && j.ScheduledStart == nil && j.ScheduledEnd == nil {
			continue
		}
		g.Go(func() error {
			_, err := u.workOrders.UpdateSchedule(ctx, j.ID, entities.ClearSchedule())
			if u.metrics != nil {
				u.metrics.RecordStoreWrite("clear", err == nil)
			}
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures++
				log.WithError(err).Warn("failed to clear work order schedule", "workOrderId", j.ID, "workOrder", j.Number)
				return nil
			}
			cleared++
			return nil
		})
	}
	_ = g.Wait()

	span.SetAttributes(attribute.Int("jobs.cleared", cleared), attribute.Int("jobs.clear_failures", failures))
	return cleared, failures
}

func (u *AutoScheduleUseCase) assignPhase(
	ctx context.Context,
	ranked []scheduling.RankedJob,
	lanes []scheduling.Lane,
	rc *scheduling.RunContext,
	asOf, startedAt time.Time,
	res *entities.RunResult,
	log *logging.Logger,
) {
	ctx, span := u.tracer.Start(ctx, "autoschedule.assign", trace.WithAttributes(attribute.Int("lanes", len(lanes))))
	defer span.End()

	from := startedAt
	if asOf.After(from) {
		from = asOf
	}
	// The budget bounds this phase only; clearing has already finished.
	deadline := u.clock.Now().Add(u.opts.Budget)

	for i, rj := range ranked {
		stopReason := ""
		if err := ctx.Err(); err != nil {
			stopReason = entities.ReasonCancelled
		} else if u.clock.Now().After(deadline) {
			stopReason = entities.ReasonBudget
		}
		if stopReason != "" {
			for _, rest := range ranked[i:] {
				res.Outcomes = append(res.Outcomes, entities.JobOutcome{
					WorkOrderID: rest.WorkOrder.ID,
					Number:      rest.WorkOrder.Number,
					Outcome:     entities.JobOutcomeUnprocessed,
					Score:       rest.Score,
					Reason:      stopReason,
				})
				res.UnprocessedCount++
			}
			res.Partial = true
			log.Warn("auto-schedule run stopped early", "reason", stopReason, "unprocessed", len(ranked)-i)
			break
		}

		outcome := u.assignJob(ctx, rj, lanes, rc, from, log)
		switch outcome.Outcome {
		case entities.JobOutcomeScheduled:
			res.ScheduledCount++
		case entities.JobOutcomeFailed:
			res.FailedCount++
		}
		res.Outcomes = append(res.Outcomes, outcome)
	}

	span.SetAttributes(attribute.Int("jobs.scheduled", res.ScheduledCount), attribute.Int("jobs.failed", res.FailedCount))
}

func (u *AutoScheduleUseCase) assignJob(
	ctx context.Context,
	rj scheduling.RankedJob,
	lanes []scheduling.Lane,
	rc *scheduling.RunContext,
	from time.Time,
	log *logging.Logger,
) entities.JobOutcome {
	job := rj.WorkOrder
	out := entities.JobOutcome{WorkOrderID: job.ID, Number: job.Number, Score: rj.Score}

	placement, err := u.planner.Place(job, lanes, rc, from)
	if err != nil {
		out.Outcome = entities.JobOutcomeFailed
		out.Reason = placementReason(err)
		log.Debug("work order not placed", "workOrderId", job.ID, "workOrder", job.Number, "reason", out.Reason)
		return out
	}

	position := rc.NextPosition(placement.LineID)
	update := entities.AssignSchedule(placement.LineID, placement.Slot.Start, placement.Slot.End, position)
	updated, err := u.workOrders.UpdateSchedule(ctx, job.ID, update)
	if err == nil && updated.ID == "" {
		err = ErrWorkOrderNotFound
	}
	if u.metrics != nil {
		u.metrics.RecordStoreWrite("commit", err == nil)
	}
	if err != nil {
		log.WithError(err).Warn("failed to commit work order schedule", "workOrderId", job.ID, "workOrder", job.Number, "lineId", placement.LineID)
		out.Outcome = entities.JobOutcomeFailed
		out.Reason = entities.ReasonPersistence
		return out
	}

	rc.Commit(placement.LineID, entities.Interval{WorkOrderID: job.ID, Start: placement.Slot.Start, End: placement.Slot.End})

	start, end := placement.Slot.Start, placement.Slot.End
	out.Outcome = entities.JobOutcomeScheduled
	out.LineID = placement.LineID
	out.Start, out.End = &start, &end
	if placement.Late {
		out.Reason = entities.ReasonLate
	}

	u.publish(ctx, entities.ScheduleEvent{
		EventID:         uuid.NewString(),
		RunID:           rc.RunID,
		WorkOrderID:     job.ID,
		WorkOrderNumber: job.Number,
		LineID:          placement.LineID,
		Start:           start,
		End:             end,
		LinePosition:    position,
		OccurredAt:      u.clock.Now(),
	}, log)
	return out
}

// publish never affects the run: failures are logged and counted.
func (u *AutoScheduleUseCase) publish(ctx context.Context, event entities.ScheduleEvent, log *logging.Logger) {
	if u.publisher == nil {
		return
	}
	timeout := u.opts.PublishTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	err := u.publisher.PublishScheduled(pctx, event)
	if u.metrics != nil {
		u.metrics.RecordEventPublish(err == nil)
	}
	if err != nil {
		log.WithError(err).Warn("failed to publish schedule event", "workOrderId", event.WorkOrderID, "lineId", event.LineID)
	}
}

func placementReason(err error) string {
	switch {
	case errors.Is(err, scheduling.ErrNoEligibleLane):
		return entities.ReasonNoEligibleLine
	case errors.Is(err, scheduling.ErrDueDateUnreachable):
		return entities.ReasonDueDate
	case errors.Is(err, scheduling.ErrInvalidDuration):
		return entities.ReasonNoDuration
	default:
		return entities.ReasonNoSlot
	}
}

func (u *AutoScheduleUseCase) recordRun(result string, d time.Duration) {
	if u.metrics != nil {
		u.metrics.RecordRun(result, d)
	}
}
