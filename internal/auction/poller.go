package auction

import (
	"context"
	"sync"
	"time"

	"github.com/cricbid/auctionctl/internal/log"
)

// TeamSnapshot is one poll result delivered to watchers
type TeamSnapshot struct {
	Teams []Team
	Err   error
	At    time.Time
}

// Poller refetches the team roster on a fixed period for read-only viewers.
//
// Each tick issues a fresh fetch without waiting for the previous one, so a
// slow response never delays the schedule. Failed fetches are delivered (and
// logged) but do not pause or back off the poll. Stop (or cancelling the Run
// context) ends the loop; the updates channel is closed when the loop and all
// in-flight fetches finish.
type Poller struct {
	client   *Client
	interval time.Duration
	logger   *log.Logger

	updates chan TeamSnapshot

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
}

// NewPoller creates a poller with the given refresh period.
// A non-positive interval falls back to the 3-second default.
func NewPoller(client *Client, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &Poller{
		client:   client,
		interval: interval,
		logger:   client.logger,
		updates:  make(chan TeamSnapshot, 8),
	}
}

// Updates returns the channel poll results are delivered on
func (p *Poller) Updates() <-chan TeamSnapshot {
	return p.updates
}

// Run starts the poll loop. It fetches once immediately, then on every tick.
// Run returns after the first call; the loop runs until ctx is cancelled or
// Stop is called.
func (p *Poller) Run(ctx context.Context) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.running = true
	p.mu.Unlock()

	go p.loop(ctx)
}

// Stop cancels the poll loop. Safe to call more than once.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
	}
}

func (p *Poller) loop(ctx context.Context) {
	var inflight sync.WaitGroup

	fetch := func() {
		inflight.Add(1)
		go func() {
			defer inflight.Done()
			teams, err := p.client.Teams(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				p.logger.WithError(err).Warn("team poll failed")
			}
			snap := TeamSnapshot{Teams: teams, Err: err, At: time.Now()}
			select {
			case p.updates <- snap:
			case <-ctx.Done():
			}
		}()
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	fetch()
	for {
		select {
		case <-ctx.Done():
			inflight.Wait()
			close(p.updates)
			return
		case <-ticker.C:
			fetch()
		}
	}
}
