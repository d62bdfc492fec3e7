package forecast

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"app/models"
)

// CatalogReader supplies the current set of active products. The set is
// fetched fresh on every calculation so deactivated products drop out.
type CatalogReader interface {
	ActiveProducts(ctx context.Context) ([]models.Product, error)
}

// HistoryReader supplies sales observations for the lookback window.
type HistoryReader interface {
	ObservationsInRange(ctx context.Context, from, to time.Time) ([]models.SalesObservation, error)
}

// Item is one computed forecast line for a (product, time slot) pair. Items
// are ephemeral: they live only until the user commits or recalculates.
type Item struct {
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	TimeSlot         models.TimeSlot `json:"time_slot"`
	Quantity         int             `json:"quantity"`
	LastWeekQuantity int             `json:"last_week_quantity"`
	WeeksOfData      int             `json:"weeks_of_data"`
	LowConfidence    bool            `json:"low_confidence"`
}

// Result is the outcome of one calculation pass. Empty distinguishes
// "nothing to forecast" from a failed fetch, which surfaces as an error
// instead.
type Result struct {
	TargetDate time.Time `json:"target_date"`
	Items      []Item    `json:"items"`
	Empty      bool      `json:"empty"`
	Message    string    `json:"message,omitempty"`
}

// Service runs forecast calculations against the product catalog and the
// sales ledger. It holds no state across calls; two calculations for
// different dates may run concurrently.
type Service struct {
	catalog      CatalogReader
	history      HistoryReader
	lookbackDays int
	matchWeeks   int
}

// NewService wires a calculator to its data sources. lookbackDays bounds the
// history fetch; matchWeeks bounds how many same-weekday observations feed
// each average.
func NewService(catalog CatalogReader, history HistoryReader, lookbackDays, matchWeeks int) *Service {
	return &Service{
		catalog:      catalog,
		history:      history,
		lookbackDays: lookbackDays,
		matchWeeks:   matchWeeks,
	}
}

// Forecast produces one Item per (active product, time slot) pair that has at
// least one sales observation on the same weekday as target within the
// lookback window. Pairs with no qualifying history are omitted.
func (s *Service) Forecast(ctx context.Context, target time.Time) (*Result, error) {
	target = Midnight(target)

	products, err := s.catalog.ActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch active products: %w", err)
	}
	if len(products) == 0 {
		return &Result{
			TargetDate: target,
			Items:      []Item{},
			Empty:      true,
			Message:    "no active products to forecast",
		}, nil
	}

	// One range fetch for the whole window; filtering happens in memory
	// rather than re-querying per product.
	from := target.AddDate(0, 0, -s.lookbackDays)
	to := target.AddDate(0, 0, -1)
	history, err := s.history.ObservationsInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetch sales history: %w", err)
	}

	items := Calculate(target, products, history, s.matchWeeks)
	res := &Result{TargetDate: target, Items: items}
	if len(items) == 0 {
		res.Empty = true
		res.Message = "no sales history in the lookback window"
	}
	return res, nil
}

// Calculate is the pure windowed-averaging step: same-weekday observations
// per (product, slot), most recent matchWeeks of them, ceiling of the mean.
// Rounding up is deliberate. Overshooting inventory is treated as cheaper
// than stocking out, so the forecast never loses quantity to rounding.
func Calculate(target time.Time, products []models.Product, history []models.SalesObservation, matchWeeks int) []Item {
	weekday := target.Weekday()

	type key struct {
		productID string
		slot      models.TimeSlot
	}
	buckets := make(map[key][]models.SalesObservation)
	for _, obs := range history {
		if obs.SaleDate.Weekday() != weekday {
			continue
		}
		k := key{obs.ProductID, obs.TimeSlot}
		buckets[k] = append(buckets[k], obs)
	}

	items := make([]Item, 0, len(products)*len(models.AllTimeSlots))
	for _, p := range products {
		for _, slot := range models.AllTimeSlots {
			obs := buckets[key{p.ID, slot}]
			if len(obs) == 0 {
				continue
			}
			sort.Slice(obs, func(i, j int) bool {
				return obs[i].SaleDate.After(obs[j].SaleDate)
			})
			if len(obs) > matchWeeks {
				obs = obs[:matchWeeks]
			}

			sum := 0
			for _, o := range obs {
				sum += o.QuantitySold
			}
			qty := int(math.Ceil(float64(sum) / float64(len(obs))))

			items = append(items, Item{
				ProductID:        p.ID,
				ProductName:      p.Name,
				TimeSlot:         slot,
				Quantity:         qty,
				LastWeekQuantity: obs[0].QuantitySold,
				WeeksOfData:      len(obs),
				LowConfidence:    len(obs) < matchWeeks,
			})
		}
	}
	return items
}

// Midnight truncates a timestamp to its calendar date. Observations and plan
// entries carry dates only, never a time of day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
