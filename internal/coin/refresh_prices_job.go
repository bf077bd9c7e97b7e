package coin

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"
	"valens/internal/adapters"
	"valens/internal/domain"

	"github.com/sirupsen/logrus"
)

const numWorkers = 5
const perRequestTimeout = 5 * time.Second

type priceUpdate struct {
	Address string
	Value   float64
}

// RefreshPendingPrices fetches fresh USD prices for all coins with a pending
// refresh and applies them in one batch.
func RefreshPendingPrices(ctx context.Context, execID string, refreshRepo adapters.PriceRefreshRepository, pricingClient adapters.PricingClient, cache adapters.PriceCache) error {
	// STEP 1: getting pending price refreshes from DB
	pending, err := refreshRepo.GetPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending refreshes: %w", err)
	}

	if len(pending) == 0 {
		logrus.Infof("Nothing to refresh this time; execID: %s", execID)
		return nil
	}

	logrus.Infof("%d pending refreshes were found, start fetching; execID: %s", len(pending), execID)

	// STEP 2: several refreshes may point at the same coin, so collapse to a
	// set of unique addresses before hitting the pricing API
	addressSet := getUniqueAddresses(pending)

	// STEP 3: processing set in parallel using workers pool. The result is a map of addresses with prices
	valueByAddress := fetchInParallel(ctx, pricingClient, addressSet)

	// STEP 4: actually updating prices in DB, then cleaning cache
	countApplied, err := doApplyRefreshes(ctx, pending, valueByAddress, refreshRepo, cache)
	if err != nil {
		return err
	}

	logrus.Infof("%d pending refreshes were successfully applied; execID %s", countApplied, execID)
	return nil
}

func getUniqueAddresses(pending []domain.PendingPriceRefresh) map[string]struct{} {
	addressSet := make(map[string]struct{}, len(pending))
	for _, pr := range pending {
		addressSet[pr.Address] = struct{}{}
	}
	return addressSet
}

// fetchInParallel runs workers, which fetch prices from the external pricing API
func fetchInParallel(ctx context.Context, pricingClient adapters.PricingClient, addresses map[string]struct{}) map[string]float64 {
	// STEP 1: creating workQueue for parallel execution
	workQueue := make(chan string, len(addresses))
	for address := range maps.Keys(addresses) {
		workQueue <- address
	}
	close(workQueue)

	// STEP 2: running workers in parallel. Each worker puts its results into channel
	updatesCh := make(chan priceUpdate, len(addresses))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			runWorker(ctx, workerID, workQueue, pricingClient, updatesCh)
		}(i)
	}

	wg.Wait()
	close(updatesCh)

	// STEP 3: after all workers finished their jobs, creating a map with fetched prices
	valueByAddress := make(map[string]float64, len(addresses))
	for upd := range updatesCh {
		valueByAddress[upd.Address] = upd.Value
	}
	return valueByAddress
}

func runWorker(ctx context.Context, workerID int, workQueue <-chan string, pricingClient adapters.PricingClient, updatesCh chan<- priceUpdate) {
	for {
		select {
		case <-ctx.Done():
			return
		case address, ok := <-workQueue:
			if !ok {
				return
			}
			fetchPrice(ctx, workerID, address, pricingClient, updatesCh)
		}
	}
}

// fetchPrice asks the pricing API for one address and pushes the result to the updates channel
func fetchPrice(ctx context.Context, workerID int, address string, pricingClient adapters.PricingClient, updatesCh chan<- priceUpdate) {
	reqCtx, cancel := context.WithTimeout(ctx, perRequestTimeout)
	defer cancel()
	// Bounded per-request context: better to leave the address for the next
	// scheduler run than to hold a worker on a slow upstream.
	priceUSD, err := pricingClient.GetPriceUSD(reqCtx, address)
	if err != nil {
		logrus.Warnf("Address '%s' wasn't processed by Worker %d as pricing api call returned error: %s", address, workerID, err)
		return
	}

	updatesCh <- priceUpdate{Address: address, Value: priceUSD}
}

// doApplyRefreshes actually updates prices in DB and cleans cache
func doApplyRefreshes(ctx context.Context, pending []domain.PendingPriceRefresh, valueByAddress map[string]float64, refreshRepo adapters.PriceRefreshRepository, cache adapters.PriceCache) (int, error) {
	// STEP 1: for all pending refreshes we:
	// - build a list of AppliedPriceRefresh, which will be updated in DB
	// - build a list of addresses, which will be cleaned from cache
	refreshesToApply := make([]domain.AppliedPriceRefresh, 0, len(pending))
	appliedAddresses := make([]string, 0, len(pending))

	for _, pr := range pending {
		value, ok := valueByAddress[pr.Address]
		if !ok {
			// this can happen when some workers failed to fetch prices from the pricing api
			logrus.Warnf("Skipping refresh for '%s', it'll be processed next time", pr.Address)
			continue
		}

		refreshesToApply = append(refreshesToApply, domain.AppliedPriceRefresh{RefreshID: pr.RefreshID, CoinID: pr.CoinID, PriceUSD: value})
		appliedAddresses = append(appliedAddresses, pr.Address)
	}

	if len(refreshesToApply) == 0 {
		return 0, nil
	}

	// STEP 2: applying refreshes in DB and clean cache
	err := refreshRepo.ApplyRefreshes(ctx, refreshesToApply)
	if err != nil {
		return 0, fmt.Errorf("failed to apply refreshes: %w", err)
	}
	// Potentially before CleanBatch is called, some other thread can read the old
	// cached price. This isn't a problem as readers get fresh data on the next request
	cache.CleanBatch(appliedAddresses)
	return len(appliedAddresses), nil
}
