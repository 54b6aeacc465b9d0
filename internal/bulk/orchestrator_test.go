package bulk

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelara/storefront-pricing/internal/model"
)

// fakeUpdater records calls and fails or skips configured (item, territory)
// pairs.
type fakeUpdater struct {
	mu     sync.Mutex
	calls  []string
	failOn map[string]error
}

func (u *fakeUpdater) Update(ctx context.Context, itemID, basePlanID, territory string, price model.Money) (*model.PriceChange, error) {
	key := itemID + "/" + territory
	u.mu.Lock()
	u.calls = append(u.calls, key)
	u.mu.Unlock()

	if err, ok := u.failOn[key]; ok {
		return nil, err
	}
	return &model.PriceChange{RegionCode: territory, NewPrice: price}, nil
}

// collectSink records every event the orchestrator emits.
type collectSink struct {
	mu       sync.Mutex
	progress [][2]int
	done     any
	failed   error
}

func (s *collectSink) Progress(completed, total int, phase string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = append(s.progress, [2]int{completed, total})
	return nil
}

func (s *collectSink) Done(data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done = data
	return nil
}

func (s *collectSink) Fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = err
	return nil
}

func money(amount, currency string) model.Money {
	return model.Money{CurrencyCode: currency, Units: amount}
}

func testItems(items, territories int) []Item {
	out := make([]Item, items)
	for i := range out {
		prices := make(map[string]model.Money, territories)
		for _, code := range []string{"US", "GB", "DE", "JP", "BR"}[:territories] {
			prices[code] = money("9", "USD")
		}
		out[i] = Item{ItemID: fmt.Sprintf("item-%02d", i), TerritoryPrices: prices}
	}
	return out
}

func TestApply_OneFailureOutOfFifty(t *testing.T) {
	updater := &fakeUpdater{failOn: map[string]error{
		"item-03/DE": errors.New("quota exceeded"),
	}}
	sink := &collectSink{}

	agg, err := NewOrchestrator(updater).Apply(context.Background(), Request{
		Items:       testItems(10, 5),
		Granularity: GranularityTerritory,
	}, sink)
	require.NoError(t, err)

	assert.Equal(t, 49, agg.Successful)
	assert.Equal(t, 1, agg.Failed)
	assert.Empty(t, agg.Skipped)
	assert.Len(t, updater.calls, 50, "every update is still attempted")

	require.Len(t, agg.Results, 10)
	for _, result := range agg.Results {
		if result.ItemID == "item-03" {
			assert.False(t, result.Success)
			assert.Contains(t, result.Error, "DE: quota exceeded")
			assert.Len(t, result.Changes, 4)
		} else {
			assert.True(t, result.Success)
			assert.Empty(t, result.Error)
			assert.Len(t, result.Changes, 5)
		}
	}

	t.Run("progress covers every territory", func(t *testing.T) {
		require.Len(t, sink.progress, 50)
		assert.Equal(t, [2]int{1, 50}, sink.progress[0])
		assert.Equal(t, [2]int{50, 50}, sink.progress[49])
	})

	t.Run("terminal event carries the aggregate", func(t *testing.T) {
		require.NotNil(t, sink.done)
		assert.Same(t, agg, sink.done)
	})
}

func TestApply_SkippedTerritoriesAreNotFailures(t *testing.T) {
	updater := &fakeUpdater{failOn: map[string]error{
		"item-00/JP": fmt.Errorf("%w: JP", ErrTerritoryUnsupported),
		"item-01/JP": fmt.Errorf("%w: JP", ErrTerritoryUnsupported),
	}}
	sink := &collectSink{}

	agg, err := NewOrchestrator(updater).Apply(context.Background(), Request{
		Items: testItems(2, 4),
	}, sink)
	require.NoError(t, err)

	assert.Equal(t, 6, agg.Successful)
	assert.Zero(t, agg.Failed)
	assert.Equal(t, []string{"JP"}, agg.Skipped)
	for _, result := range agg.Results {
		assert.True(t, result.Success, "a skipped territory does not fail the item")
	}
}

func TestApply_ItemGranularity(t *testing.T) {
	sink := &collectSink{}
	_, err := NewOrchestrator(&fakeUpdater{}).Apply(context.Background(), Request{
		Items:       testItems(3, 5),
		Granularity: GranularityItem,
	}, sink)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, sink.progress)
}

func TestApply_DeterministicAggregationUnderConcurrency(t *testing.T) {
	sink := &collectSink{}
	agg, err := NewOrchestrator(&fakeUpdater{}).Apply(context.Background(), Request{
		Items:       testItems(4, 5),
		Concurrency: 4,
	}, sink)
	require.NoError(t, err)

	assert.Equal(t, 20, agg.Successful)
	for _, result := range agg.Results {
		codes := make([]string, len(result.Changes))
		for i, ch := range result.Changes {
			codes[i] = ch.RegionCode
		}
		assert.Equal(t, []string{"BR", "DE", "GB", "JP", "US"}, codes,
			"changes are ordered by territory code, not arrival order")
	}
}

func TestApply_CancellationStopsWork(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	updater := &fakeUpdater{}
	sink := &collectSink{}

	_, err := NewOrchestrator(updater).Apply(ctx, Request{Items: testItems(5, 5)}, sink)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, updater.calls, "no updates after abort")
	assert.Empty(t, sink.progress, "no events after abort")
	assert.Nil(t, sink.done)
}

func TestApply_CountsAreConsistent(t *testing.T) {
	updater := &fakeUpdater{failOn: map[string]error{
		"item-00/US": errors.New("boom"),
		"item-02/GB": errors.New("boom"),
		"item-02/DE": fmt.Errorf("%w: DE", ErrTerritoryUnsupported),
	}}
	sink := &collectSink{}

	agg, err := NewOrchestrator(updater).Apply(context.Background(), Request{
		Items: testItems(3, 5),
	}, sink)
	require.NoError(t, err)

	attempted := len(updater.calls) - 1 // one skip
	assert.Equal(t, attempted, agg.Successful+agg.Failed)
	assert.Equal(t, []string{"DE"}, agg.Skipped)
}
