package forecast

import (
	"context"
	"errors"
	"testing"
	"time"

	"app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tuesday 2024-01-16; the three preceding Tuesdays are Jan 9, Jan 2, Dec 26.
var tuesday = time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

func product(id, name string) models.Product {
	return models.Product{ID: id, Name: name, IsActive: true}
}

func obs(productID string, date time.Time, slot models.TimeSlot, qty int) models.SalesObservation {
	return models.SalesObservation{ProductID: productID, SaleDate: date, TimeSlot: slot, QuantitySold: qty}
}

func TestCalculateCeilingOfMean(t *testing.T) {
	soda := product("p1", "Soda")
	history := []models.SalesObservation{
		obs("p1", tuesday.AddDate(0, 0, -7), models.SlotLunch, 10),
		obs("p1", tuesday.AddDate(0, 0, -14), models.SlotLunch, 14),
		obs("p1", tuesday.AddDate(0, 0, -21), models.SlotLunch, 12),
	}

	items := Calculate(tuesday, []models.Product{soda}, history, 3)

	require.Len(t, items, 1)
	assert.Equal(t, 12, items[0].Quantity)
	assert.Equal(t, 3, items[0].WeeksOfData)
	assert.False(t, items[0].LowConfidence)
	assert.Equal(t, 10, items[0].LastWeekQuantity)
	assert.Equal(t, models.SlotLunch, items[0].TimeSlot)
	assert.Equal(t, "Soda", items[0].ProductName)
}

func TestCalculateRoundsUp(t *testing.T) {
	history := []models.SalesObservation{
		obs("p1", tuesday.AddDate(0, 0, -7), models.SlotLunch, 10),
		obs("p1", tuesday.AddDate(0, 0, -14), models.SlotLunch, 11),
	}

	items := Calculate(tuesday, []models.Product{product("p1", "Soda")}, history, 3)

	require.Len(t, items, 1)
	// mean 10.5 rounds up, never down
	assert.Equal(t, 11, items[0].Quantity)
}

func TestCalculateLowConfidenceUnderThreeWeeks(t *testing.T) {
	history := []models.SalesObservation{
		obs("p1", tuesday.AddDate(0, 0, -7), models.SlotBreakfast, 4),
	}

	items := Calculate(tuesday, []models.Product{product("p1", "Croissant")}, history, 3)

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].WeeksOfData)
	assert.True(t, items[0].LowConfidence)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestCalculateIgnoresOtherWeekdays(t *testing.T) {
	wednesday := tuesday.AddDate(0, 0, -6)
	history := []models.SalesObservation{
		obs("p1", wednesday, models.SlotLunch, 99),
		obs("p1", tuesday.AddDate(0, 0, -7), models.SlotLunch, 10),
	}

	items := Calculate(tuesday, []models.Product{product("p1", "Soda")}, history, 3)

	require.Len(t, items, 1)
	assert.Equal(t, 10, items[0].Quantity)
	assert.Equal(t, 1, items[0].WeeksOfData)
}

func TestCalculateTakesThreeMostRecent(t *testing.T) {
	history := []models.SalesObservation{
		obs("p1", tuesday.AddDate(0, 0, -28), models.SlotLunch, 100),
		obs("p1", tuesday.AddDate(0, 0, -21), models.SlotLunch, 6),
		obs("p1", tuesday.AddDate(0, 0, -14), models.SlotLunch, 6),
		obs("p1", tuesday.AddDate(0, 0, -7), models.SlotLunch, 6),
	}

	items := Calculate(tuesday, []models.Product{product("p1", "Soda")}, history, 3)

	require.Len(t, items, 1)
	// the 100 four weeks back is outside the three most recent matches
	assert.Equal(t, 6, items[0].Quantity)
	assert.Equal(t, 3, items[0].WeeksOfData)
}

func TestCalculateOmitsPairsWithoutHistory(t *testing.T) {
	soda := product("p1", "Soda")
	bagel := product("p2", "Bagel")
	history := []models.SalesObservation{
		obs("p1", tuesday.AddDate(0, 0, -7), models.SlotLunch, 8),
	}

	items := Calculate(tuesday, []models.Product{soda, bagel}, history, 3)

	// brand-new Bagel and Soda's other slots produce nothing; the
	// calculation still succeeds for the pair that has history
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, models.SlotLunch, items[0].TimeSlot)
}

func TestCalculateSeparatesSlots(t *testing.T) {
	history := []models.SalesObservation{
		obs("p1", tuesday.AddDate(0, 0, -7), models.SlotBreakfast, 3),
		obs("p1", tuesday.AddDate(0, 0, -7), models.SlotLunch, 20),
	}

	items := Calculate(tuesday, []models.Product{product("p1", "Soda")}, history, 3)

	require.Len(t, items, 2)
	assert.Equal(t, models.SlotBreakfast, items[0].TimeSlot)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, models.SlotLunch, items[1].TimeSlot)
	assert.Equal(t, 20, items[1].Quantity)
}

// --- Service tests against in-memory fakes ---

type fakeCatalog struct {
	products []models.Product
	err      error
}

func (f *fakeCatalog) ActiveProducts(ctx context.Context) ([]models.Product, error) {
	return f.products, f.err
}

type fakeHistory struct {
	observations []models.SalesObservation
	err          error
	gotFrom      time.Time
	gotTo        time.Time
	calls        int
}

func (f *fakeHistory) ObservationsInRange(ctx context.Context, from, to time.Time) ([]models.SalesObservation, error) {
	f.calls++
	f.gotFrom, f.gotTo = from, to
	return f.observations, f.err
}

func TestServiceFetchesWindowOnce(t *testing.T) {
	history := &fakeHistory{observations: []models.SalesObservation{
		obs("p1", tuesday.AddDate(0, 0, -7), models.SlotLunch, 5),
	}}
	svc := NewService(&fakeCatalog{products: []models.Product{product("p1", "Soda")}}, history, 28, 3)

	result, err := svc.Forecast(context.Background(), tuesday)

	require.NoError(t, err)
	assert.Equal(t, 1, history.calls)
	assert.Equal(t, tuesday.AddDate(0, 0, -28), history.gotFrom)
	assert.Equal(t, tuesday.AddDate(0, 0, -1), history.gotTo)
	assert.False(t, result.Empty)
	require.Len(t, result.Items, 1)
}

func TestServiceEmptyCatalogIsInformational(t *testing.T) {
	history := &fakeHistory{}
	svc := NewService(&fakeCatalog{}, history, 28, 3)

	result, err := svc.Forecast(context.Background(), tuesday)

	require.NoError(t, err)
	assert.True(t, result.Empty)
	assert.NotEmpty(t, result.Message)
	assert.Empty(t, result.Items)
	// no point fetching history without products
	assert.Equal(t, 0, history.calls)
}

func TestServiceNoHistoryIsInformational(t *testing.T) {
	svc := NewService(&fakeCatalog{products: []models.Product{product("p1", "Soda")}}, &fakeHistory{}, 28, 3)

	result, err := svc.Forecast(context.Background(), tuesday)

	require.NoError(t, err)
	assert.True(t, result.Empty)
	assert.Empty(t, result.Items)
}

func TestServiceStorageFailureAbortsWholeCalculation(t *testing.T) {
	svc := NewService(
		&fakeCatalog{products: []models.Product{product("p1", "Soda")}},
		&fakeHistory{err: ErrStorageUnavailable},
		28, 3,
	)

	result, err := svc.Forecast(context.Background(), tuesday)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorageUnavailable))
	assert.Nil(t, result)
}

func TestServiceCatalogFailureAbortsWholeCalculation(t *testing.T) {
	svc := NewService(&fakeCatalog{err: ErrStorageUnavailable}, &fakeHistory{}, 28, 3)

	_, err := svc.Forecast(context.Background(), tuesday)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorageUnavailable))
}

func TestMidnightDropsTimeOfDay(t *testing.T) {
	late := time.Date(2024, 1, 16, 23, 45, 12, 999, time.UTC)
	if got := Midnight(late); !got.Equal(tuesday) {
		t.Fatalf("expected %v, got %v", tuesday, got)
	}
}
