// Package planner keeps the current weekly plan. Unlike package resource,
// toggling a plan task is optimistic: the flip is visible at once and is
// rolled back if the server rejects it.
package planner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"clementus360/ai-helper-client/config"
	"clementus360/ai-helper-client/resource"
	"clementus360/ai-helper-client/types"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoPlan       = errors.New("no plan loaded")
	ErrTaskNotFound = errors.New("plan task not found")
)

type Plans interface {
	Create(ctx context.Context, weekStart string) (types.WeeklyPlan, error)
	Current(ctx context.Context) (types.WeeklyPlan, error)
	Tasks(ctx context.Context, planID int64) ([]types.PlanTask, error)
	SetCompleted(ctx context.Context, planID, taskID int64, completed bool) (types.PlanTask, error)
}

// SessionState is where the plan id and week survive restarts.
type SessionState interface {
	Plan() (int64, string)
	SetPlan(ctx context.Context, id int64, weekStart string) error
}

type Planner struct {
	api   Plans
	sess  SessionState
	guard *resource.Guard
	now   func() time.Time
	log   *logrus.Entry

	mu   sync.RWMutex
	plan *Plan
}

type Option func(*Planner)

func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

func New(api Plans, sess SessionState, opts ...Option) *Planner {
	p := &Planner{
		api:   api,
		sess:  sess,
		guard: resource.NewGuard(),
		now:   time.Now,
		log:   config.Component("planner"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LoadCurrent resumes the persisted plan, falling back to the server's
// current plan. On failure the previously loaded plan stays.
func (p *Planner) LoadCurrent(ctx context.Context) error {
	if id, week := p.sess.Plan(); id != 0 {
		tasks, err := p.api.Tasks(ctx, id)
		if err == nil {
			if week == "" {
				week = WeekStart(p.now())
			}
			p.set(types.WeeklyPlan{ID: id, WeekStart: week, Tasks: tasks})
			return nil
		}
		p.log.WithField("plan_id", id).Warn("Failed to resume plan: ", err)
	}

	plan, err := p.api.Current(ctx)
	if err != nil {
		return types.Wrap(types.ErrFetch, "plan load", err)
	}
	p.set(plan)
	p.persist(ctx, plan)
	return nil
}

// Generate creates a new plan for the week containing weekStart (this week
// when empty) and replaces the current one. Any date is moved back to its
// Monday.
func (p *Planner) Generate(ctx context.Context, weekStart string) (Plan, error) {
	if weekStart == "" {
		weekStart = WeekStart(p.now())
	} else {
		day, err := time.Parse(types.DateLayout, weekStart)
		if err != nil {
			return Plan{}, types.Wrap(types.ErrMutation, "plan generate", fmt.Errorf("invalid week start %q: %w", weekStart, err))
		}
		weekStart = WeekStart(day)
	}
	release, err := p.guard.AcquireCollection()
	if err != nil {
		return Plan{}, types.Wrap(types.ErrMutation, "plan generate", err)
	}
	defer release()

	plan, err := p.api.Create(ctx, weekStart)
	if err != nil {
		return Plan{}, types.Wrap(types.ErrMutation, "plan generate", err)
	}
	if plan.WeekStart == "" {
		plan.WeekStart = weekStart
	}
	p.set(plan)
	p.persist(ctx, plan)
	return Plan{WeeklyPlan: plan}.clone(), nil
}

// ToggleTask flips a task's completion immediately, then sends the patch.
// A failed patch restores the previous value.
func (p *Planner) ToggleTask(ctx context.Context, taskID int64) (types.PlanTask, error) {
	p.mu.Lock()
	if p.plan == nil {
		p.mu.Unlock()
		return types.PlanTask{}, types.Wrap(types.ErrMutation, "plan toggle", ErrNoPlan)
	}
	i := p.indexLocked(taskID)
	if i < 0 {
		p.mu.Unlock()
		return types.PlanTask{}, types.Wrap(types.ErrMutation, "plan toggle", ErrTaskNotFound)
	}
	release, err := p.guard.Acquire(taskID)
	if err != nil {
		p.mu.Unlock()
		return types.PlanTask{}, types.Wrap(types.ErrMutation, "plan toggle", err)
	}
	defer release()

	planID := p.plan.ID
	previous := p.plan.Tasks[i].Completed
	p.plan.Tasks[i].Completed = !previous
	p.mu.Unlock()

	updated, err := p.api.SetCompleted(ctx, planID, taskID, !previous)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.plan == nil || p.plan.ID != planID {
		// a newer plan replaced this one while the patch was in flight
		if err != nil {
			return types.PlanTask{}, types.Wrap(types.ErrMutation, "plan toggle", err)
		}
		return updated, nil
	}
	i = p.indexLocked(taskID)
	if err != nil {
		if i >= 0 {
			p.plan.Tasks[i].Completed = previous
		}
		p.log.WithField("task_id", taskID).Warn("Plan task toggle failed, reverted: ", err)
		return types.PlanTask{}, types.Wrap(types.ErrMutation, "plan toggle", err)
	}
	if i < 0 {
		return updated, nil
	}
	if updated.ID == taskID {
		if updated.DayOfWeek == "" {
			updated.DayOfWeek = p.plan.Tasks[i].DayOfWeek
		}
		p.plan.Tasks[i] = updated
	}
	return p.plan.Tasks[i], nil
}

// Current returns a copy of the loaded plan.
func (p *Planner) Current() (Plan, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.plan == nil {
		return Plan{}, false
	}
	return p.plan.clone(), true
}

// Reset forgets the loaded plan. A toggle still in flight finds no plan and
// leaves nothing behind.
func (p *Planner) Reset() {
	p.mu.Lock()
	p.plan = nil
	p.mu.Unlock()
}

func (p *Planner) set(plan types.WeeklyPlan) {
	if plan.Tasks == nil {
		plan.Tasks = []types.PlanTask{}
	}
	p.mu.Lock()
	p.plan = &Plan{WeeklyPlan: plan}
	p.mu.Unlock()
}

func (p *Planner) persist(ctx context.Context, plan types.WeeklyPlan) {
	if err := p.sess.SetPlan(ctx, plan.ID, plan.WeekStart); err != nil {
		p.log.Warn("Failed to persist plan id: ", err)
	}
}

func (p *Planner) indexLocked(taskID int64) int {
	for i, t := range p.plan.Tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}
