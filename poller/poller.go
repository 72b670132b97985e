package poller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/theoremus-urban-solutions/transit-arrivals/arrivals"
	"github.com/theoremus-urban-solutions/transit-arrivals/config"
	"github.com/theoremus-urban-solutions/transit-arrivals/feed"
	"github.com/theoremus-urban-solutions/transit-arrivals/metrics"
)

// Error reasons reported to the metrics collector.
const (
	reasonHTTPStatus = "http_status"
	reasonTransport  = "transport"
	reasonDecode     = "decode"
)

// httpStatusError marks a non-2xx response so it can be published verbatim
// as "HTTP <status>".
type httpStatusError struct {
	status int
}

func (e httpStatusError) Error() string { return fmt.Sprintf("HTTP %d", e.status) }

// Poller runs the poll cycle against one configured feed and holds the most
// recent published snapshot. Snapshots are replaced whole; readers never see
// a partial update.
type Poller struct {
	cfg     *config.AppConfig
	client  *http.Client
	log     *slog.Logger
	metrics *metrics.Collector

	mu          sync.RWMutex
	latest      arrivals.Snapshot
	hasSnapshot bool
	lastSuccess bool

	lmu       sync.Mutex
	listeners []func(arrivals.Snapshot)
}

// New builds a poller. The metrics collector may be nil.
func New(cfg *config.AppConfig, log *slog.Logger, col *metrics.Collector) *Poller {
	return &Poller{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Feed.Timeout()},
		log:     log,
		metrics: col,
	}
}

// Subscribe registers a callback invoked after every published snapshot.
// Callbacks run on the polling goroutine and must not block.
func (p *Poller) Subscribe(fn func(arrivals.Snapshot)) {
	p.lmu.Lock()
	defer p.lmu.Unlock()
	p.listeners = append(p.listeners, fn)
}

// Latest returns the most recent published snapshot. ok is false until the
// first cycle completes.
func (p *Poller) Latest() (snap arrivals.Snapshot, ok bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest, p.hasSnapshot
}

// LastUpdateSuccess reports whether the most recent cycle published a data
// snapshot rather than an error.
func (p *Poller) LastUpdateSuccess() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastSuccess
}

// Run drives the poll loop until ctx is cancelled. The first cycle runs
// immediately. Cycles execute on this goroutine, so ticks never overlap; a
// slow fetch delays the next cycle instead of stacking it.
func (p *Poller) Run(ctx context.Context) {
	p.Poll(ctx)

	ticker := time.NewTicker(p.cfg.Poll.Interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.log.Info("poll loop stopped")
			return
		case <-ticker.C:
			p.Poll(ctx)
		}
	}
}

// Poll runs one full fetch-decode-match-rank cycle and publishes the result.
// The returned snapshot is the one published.
func (p *Poller) Poll(ctx context.Context) arrivals.Snapshot {
	started := time.Now()
	snap, reason := p.cycle(ctx)

	if p.metrics != nil {
		p.metrics.Polls.Inc()
		p.metrics.PollDuration.Observe(time.Since(started).Seconds())
		if snap.Failed() {
			p.metrics.PollErrors.WithLabelValues(reason).Inc()
		} else {
			p.metrics.UpcomingTrains.Set(float64(len(snap.Trains)))
			p.metrics.LastSuccess.Set(float64(time.Now().Unix()))
		}
	}

	if snap.Failed() {
		p.log.Error("poll failed", "error", snap.Err, "reason", reason)
	} else {
		p.log.Debug("poll complete", "trains", len(snap.Trains), "count", snap.Count)
	}

	p.publish(snap)
	return snap
}

func (p *Poller) cycle(ctx context.Context) (arrivals.Snapshot, string) {
	payload, err := p.fetch(ctx)
	if err != nil {
		reason := reasonTransport
		if _, ok := err.(httpStatusError); ok {
			reason = reasonHTTPStatus
		}
		return arrivals.ErrorSnapshot(err.Error()), reason
	}

	now := time.Now().In(p.cfg.Location)
	records, err := payload.Decode(p.cfg.Location)
	if err != nil {
		return arrivals.ErrorSnapshot(err.Error()), reasonDecode
	}

	matched := arrivals.MatchAll(records, p.cfg.Line.ID, p.cfg.Start.ID, p.cfg.End.ID, now)
	trains, count := arrivals.Rank(matched)

	return arrivals.Snapshot{
		Trains:           trains,
		Count:            count,
		LastUpdate:       now,
		LineName:         p.cfg.Line.LineName(),
		StartStationName: p.cfg.Start.StopName(),
		EndStationName:   p.cfg.End.StopName(),
	}, ""
}

func (p *Poller) fetch(ctx context.Context) (feed.Payload, error) {
	req, err := buildRequest(ctx, p.cfg.Feed)
	if err != nil {
		return feed.Payload{}, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return feed.Payload{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return feed.Payload{}, httpStatusError{status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return feed.Payload{}, err
	}

	return feed.Payload{
		Kind: resolveKind(p.cfg.Feed, resp.Header.Get("Content-Type")),
		Body: body,
	}, nil
}

// buildRequest applies the feed's auth variant: basic credentials on the
// request, or an api_key query parameter for token feeds.
func buildRequest(ctx context.Context, fc config.FeedConfig) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fc.URL, nil)
	if err != nil {
		return nil, err
	}
	if fc.APIToken != "" {
		q := req.URL.Query()
		q.Set("api_key", fc.APIToken)
		req.URL.RawQuery = q.Encode()
	} else if fc.Username != "" {
		req.SetBasicAuth(fc.Username, fc.Password)
	}
	req.Header.Set("Accept", "application/json, application/x-protobuf")
	return req, nil
}

func resolveKind(fc config.FeedConfig, contentType string) feed.Kind {
	if k, ok := feed.KindFromString(fc.Format); ok {
		return k
	}
	return feed.KindFromContentType(contentType)
}

func (p *Poller) publish(snap arrivals.Snapshot) {
	p.mu.Lock()
	p.latest = snap
	p.hasSnapshot = true
	p.lastSuccess = !snap.Failed()
	p.mu.Unlock()

	p.lmu.Lock()
	listeners := make([]func(arrivals.Snapshot), len(p.listeners))
	copy(listeners, p.listeners)
	p.lmu.Unlock()
	for _, fn := range listeners {
		fn(snap)
	}
}
