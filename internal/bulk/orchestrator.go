// Package bulk pushes a computed price set to a storefront region by
// region, tolerating partial failure and reporting incremental progress.
package bulk

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/avelara/storefront-pricing/internal/model"
)

// ErrTerritoryUnsupported is returned by an updater to signal a territory
// the target platform deliberately excludes. These are reported as skipped,
// never as failures.
var ErrTerritoryUnsupported = errors.New("territory not supported by platform")

// PriceUpdater is the injected per-platform collaborator. One call updates
// one territory's price for one item; the orchestrator treats it as an
// opaque fallible operation.
type PriceUpdater interface {
	Update(ctx context.Context, itemID, basePlanID, territory string, price model.Money) (*model.PriceChange, error)
}

type Granularity string

const (
	GranularityItem      Granularity = "item"
	GranularityTerritory Granularity = "territory"
)

// Item is one product (optionally one base plan of it) with the regional
// prices to apply.
type Item struct {
	ItemID          string
	BasePlanID      string
	TerritoryPrices map[string]model.Money
}

type Request struct {
	Items       []Item
	Granularity Granularity
	// Concurrency bounds simultaneous territory updates within one item.
	// Zero or one means strictly sequential.
	Concurrency int
}

// Sink receives progress and the terminal event. stream.Writer satisfies it.
type Sink interface {
	Progress(completed, total int, phase string) error
	Done(data any) error
	Fail(err error) error
}

type Orchestrator struct {
	updater PriceUpdater
}

func NewOrchestrator(updater PriceUpdater) *Orchestrator {
	return &Orchestrator{updater: updater}
}

type territoryOutcome struct {
	territory string
	change    *model.PriceChange
	err       error
}

// Apply processes every item and territory, emitting progress after each
// completed unit of work and a terminal done event with the aggregate. A
// failure on one territory never aborts the remaining territories or items.
// On context cancellation no further updates are issued and no further
// events are emitted; already-applied updates stand, since nothing can
// roll them back across an external system.
func (o *Orchestrator) Apply(ctx context.Context, req Request, sink Sink) (*model.BulkApplyAggregate, error) {
	granularity := req.Granularity
	if granularity == "" {
		granularity = GranularityTerritory
	}

	total := len(req.Items)
	if granularity == GranularityTerritory {
		total = 0
		for _, item := range req.Items {
			total += len(item.TerritoryPrices)
		}
	}

	agg := &model.BulkApplyAggregate{
		OperationID: uuid.NewString(),
		Results:     make([]model.BulkApplyResult, 0, len(req.Items)),
	}
	skipped := map[string]bool{}
	var completed atomic.Int64

	for _, item := range req.Items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		outcomes, err := o.applyItem(ctx, item, req.Concurrency, func() {
			if granularity == GranularityTerritory {
				done := int(completed.Add(1))
				if err := sink.Progress(done, total, "applying"); err != nil {
					log.Warn().Err(err).Msg("progress event dropped")
				}
			}
		})
		if err != nil {
			return nil, err
		}

		result := model.BulkApplyResult{
			ItemID:     item.ItemID,
			BasePlanID: item.BasePlanID,
			Success:    true,
		}
		var failures []string
		for _, out := range outcomes {
			switch {
			case out.err == nil:
				agg.Successful++
				if out.change != nil {
					result.Changes = append(result.Changes, *out.change)
				}
			case errors.Is(out.err, ErrTerritoryUnsupported):
				skipped[out.territory] = true
			default:
				agg.Failed++
				result.Success = false
				failures = append(failures, out.territory+": "+out.err.Error())
			}
		}
		result.Error = strings.Join(failures, "; ")
		agg.Results = append(agg.Results, result)

		if granularity == GranularityItem {
			done := int(completed.Add(1))
			if err := sink.Progress(done, total, "applying"); err != nil {
				log.Warn().Err(err).Msg("progress event dropped")
			}
		}
	}

	for code := range skipped {
		agg.Skipped = append(agg.Skipped, code)
	}
	sort.Strings(agg.Skipped)

	if err := sink.Done(agg); err != nil {
		return agg, err
	}
	return agg, nil
}

// applyItem updates every territory of one item, sequentially by default or
// through a bounded pool. Outcomes come back ordered by territory code so
// aggregation is deterministic regardless of arrival order.
func (o *Orchestrator) applyItem(ctx context.Context, item Item, concurrency int, onUnit func()) ([]territoryOutcome, error) {
	territories := make([]string, 0, len(item.TerritoryPrices))
	for code := range item.TerritoryPrices {
		territories = append(territories, code)
	}
	sort.Strings(territories)

	outcomes := make([]territoryOutcome, len(territories))

	if concurrency <= 1 {
		for i, territory := range territories {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			outcomes[i] = o.updateOne(ctx, item, territory)
			onUnit()
		}
		return outcomes, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	var mu sync.Mutex
	for i, territory := range territories {
		i, territory := i, territory
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out := o.updateOne(gctx, item, territory)
			mu.Lock()
			outcomes[i] = out
			onUnit()
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (o *Orchestrator) updateOne(ctx context.Context, item Item, territory string) territoryOutcome {
	price := item.TerritoryPrices[territory]
	change, err := o.updater.Update(ctx, item.ItemID, item.BasePlanID, territory, price)
	if err != nil && !errors.Is(err, ErrTerritoryUnsupported) {
		log.Warn().
			Str("item", item.ItemID).
			Str("territory", territory).
			Err(err).
			Msg("territory update failed")
	}
	if err == nil && change == nil {
		change = &model.PriceChange{RegionCode: territory, NewPrice: price}
	}
	return territoryOutcome{territory: territory, change: change, err: err}
}
