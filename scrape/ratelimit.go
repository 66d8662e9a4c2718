package scrape

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/newsscraper"
	"golang.org/x/time/rate"
)

var _ newsscraper.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to each host. Scrape triggers arriving
// closer together than the interval wait for their turn.
type DomainLimiter struct {
	interval time.Duration

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewDomainLimiter returns a limiter allowing one request per interval to
// each host. A non-positive interval disables limiting.
func NewDomainLimiter(interval time.Duration) *DomainLimiter {
	return &DomainLimiter{
		interval: interval,
		hosts:    make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to domain is allowed or ctx is done.
// Domains are compared case-insensitively.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.interval <= 0 {
		return ctx.Err()
	}
	return d.limiter(strings.ToLower(domain)).Wait(ctx)
}

func (d *DomainLimiter) limiter(host string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.hosts[host]
	if !ok {
		l = rate.NewLimiter(rate.Every(d.interval), 1)
		d.hosts[host] = l
	}
	return l
}
