package admin

import (
	"context"
	"skydesk/internal/floor"
	"skydesk/pkg/logger"
	"skydesk/pkg/model"
	"sync"
	"sync/atomic"
	"time"
)

// UpdateFunc receives each completed occupancy fetch. A failed fetch is
// delivered with the error set so the view can keep its last good data.
type UpdateFunc func(bookings []model.BookingRecord, err error)

// Poller refreshes the dashboard occupancy on a fixed interval. A tick is
// skipped while the previous fetch is still outstanding, and the loop stops
// deterministically when its context is cancelled.
type Poller struct {
	fetcher  floor.BookingFetcher
	interval time.Duration
	onUpdate UpdateFunc
	log      *logger.Logger
}

func NewPoller(fetcher floor.BookingFetcher, interval time.Duration, onUpdate UpdateFunc, log *logger.Logger) *Poller {
	return &Poller{
		fetcher:  fetcher,
		interval: interval,
		onUpdate: onUpdate,
		log:      log,
	}
}

// Run fetches once immediately, then on every tick. It blocks until ctx is
// cancelled; after it returns no further updates are delivered.
func (p *Poller) Run(ctx context.Context) {
	var wg sync.WaitGroup
	var busy atomic.Bool

	dispatch := func() {
		if !busy.CompareAndSwap(false, true) {
			p.log.Warn("Skipping occupancy refresh, previous fetch still running")
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer busy.Store(false)
			bookings, err := p.fetcher.AllBookings(ctx)
			p.onUpdate(bookings, err)
		}()
	}

	dispatch()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			p.log.Info("Occupancy poller stopped")
			return
		case <-ticker.C:
			dispatch()
		}
	}
}
