package forecast

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"app/models"
)

// PlanStore persists production plans. ReplacePlan must swap the full entry
// set for a date atomically: either the new plan lands in full or the prior
// plan survives untouched.
type PlanStore interface {
	ReplacePlan(ctx context.Context, date time.Time, entries []models.ProductionPlanEntry) error
	PlanForDate(ctx context.Context, date time.Time) ([]models.ProductionPlanEntry, error)
}

// OverrideState classifies a manual override value.
type OverrideState int

const (
	// NoOverride means the user left the field empty.
	NoOverride OverrideState = iota
	// ValidOverride means the value parsed as a non-negative integer.
	ValidOverride
	// InvalidOverride means the value was present but unusable. The
	// commit still proceeds with the computed forecast quantity;
	// override validation is advisory, never blocking.
	InvalidOverride
)

// Override is the resolved form of a manual correction to one forecast line.
type Override struct {
	State    OverrideState
	Quantity int
}

// ParseOverride classifies a raw override field. nil or blank means no
// override; anything that is not a non-negative integer is InvalidOverride.
func ParseOverride(raw *string) Override {
	if raw == nil {
		return Override{State: NoOverride}
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return Override{State: NoOverride}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Override{State: InvalidOverride}
	}
	return Override{State: ValidOverride, Quantity: n}
}

// Adjusted returns the override quantity as a nullable column value, nil
// unless the override is valid.
func (o Override) Adjusted() *int {
	if o.State != ValidOverride {
		return nil
	}
	n := o.Quantity
	return &n
}

// PlanItem is one line of a plan commit: a forecast quantity plus an
// optional manual override.
type PlanItem struct {
	ProductID        string
	TimeSlot         models.TimeSlot
	ForecastQuantity int
	Override         Override
}

// Planner turns finalized forecast items into the authoritative production
// plan for a date, replacing whatever plan existed before.
type Planner struct {
	plans PlanStore
}

// NewPlanner wires a reconciler to its plan store.
func NewPlanner(plans PlanStore) *Planner {
	return &Planner{plans: plans}
}

// Commit validates the items, resolves overrides and replaces the plan for
// date. An empty item set is a valid commit that clears the date's plan.
// Committing the same items twice yields the same rows with no residue.
func (p *Planner) Commit(ctx context.Context, date time.Time, items []PlanItem) ([]models.ProductionPlanEntry, error) {
	date = Midnight(date)

	seen := make(map[string]bool, len(items))
	entries := make([]models.ProductionPlanEntry, 0, len(items))
	for _, it := range items {
		if it.ProductID == "" {
			return nil, fmt.Errorf("%w: plan item missing product id", ErrValidation)
		}
		if !it.TimeSlot.Valid() {
			return nil, fmt.Errorf("%w: plan item for product %s: invalid time slot %q", ErrValidation, it.ProductID, it.TimeSlot)
		}
		if it.ForecastQuantity < 0 {
			return nil, fmt.Errorf("%w: plan item for product %s: negative forecast quantity %d", ErrValidation, it.ProductID, it.ForecastQuantity)
		}
		k := it.ProductID + "|" + string(it.TimeSlot)
		if seen[k] {
			return nil, fmt.Errorf("%w: duplicate plan item for product %s slot %s", ErrValidation, it.ProductID, it.TimeSlot)
		}
		seen[k] = true

		entries = append(entries, models.ProductionPlanEntry{
			PlanDate:         date,
			ProductID:        it.ProductID,
			TimeSlot:         it.TimeSlot,
			ForecastQuantity: it.ForecastQuantity,
			AdjustedQuantity: it.Override.Adjusted(),
		})
	}

	if err := p.plans.ReplacePlan(ctx, date, entries); err != nil {
		return nil, fmt.Errorf("replace plan for %s: %w", date.Format("2006-01-02"), err)
	}
	return entries, nil
}

// PlanForDate reads back the committed plan for a date.
func (p *Planner) PlanForDate(ctx context.Context, date time.Time) ([]models.ProductionPlanEntry, error) {
	return p.plans.PlanForDate(ctx, Midnight(date))
}
