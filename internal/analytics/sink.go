// Package analytics records scenario snapshots keyed by session id. The
// sink is strictly best-effort: the calculation engine never learns whether
// a snapshot was recorded, and repeated submissions for a session upsert a
// single logical row.
package analytics

import (
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/leftover-labs/freedom-rate/internal/scenario"
	"github.com/leftover-labs/freedom-rate/pkg/costs"
)

// Snapshot is the flat record accepted by the sink: one session's inputs
// and derived outputs.
type Snapshot struct {
	SessionID  string          `json:"sessionId"`
	Inputs     costs.Input     `json:"inputs"`
	Derived    scenario.Result `json:"derived"`
	RecordedAt time.Time       `json:"recordedAt"`
}

// Store holds at most one logical row per session id.
type Store struct {
	mu   sync.RWMutex
	rows map[string]Snapshot
}

// NewStore creates an empty snapshot store.
func NewStore() *Store {
	return &Store{rows: make(map[string]Snapshot)}
}

// Upsert records a snapshot, replacing any prior row for the session.
// Snapshots with an empty session id are dropped.
func (s *Store) Upsert(snapshot Snapshot) {
	if snapshot.SessionID == "" {
		return
	}
	if snapshot.RecordedAt.IsZero() {
		snapshot.RecordedAt = time.Now().UTC()
	}
	s.mu.Lock()
	s.rows[snapshot.SessionID] = snapshot
	s.mu.Unlock()
}

// Get returns the snapshot for a session id.
func (s *Store) Get(sessionID string) (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.rows[sessionID]
	return snapshot, ok
}

// Len returns the number of recorded sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// Forwarder posts snapshots to an external collector. Failures are logged
// and dropped; nothing propagates back to the caller.
type Forwarder struct {
	url     string
	timeout time.Duration
	client  *fasthttp.Client
	logger  *zap.Logger
}

// NewForwarder creates a forwarder for the given collector URL. An empty
// URL yields a disabled forwarder whose Forward is a no-op.
func NewForwarder(url string, timeout time.Duration, logger *zap.Logger) *Forwarder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Forwarder{
		url:     url,
		timeout: timeout,
		client:  &fasthttp.Client{},
		logger:  logger,
	}
}

// Forward posts the snapshot in a background goroutine and returns
// immediately. At-most-once delivery is not guaranteed; the collector is
// expected to upsert by session id.
func (f *Forwarder) Forward(snapshot Snapshot) {
	if f.url == "" {
		return
	}
	go f.post(snapshot)
}

// ForwardSync posts the snapshot and waits for delivery. One-shot invocations
// that exit right after output use this instead of Forward.
func (f *Forwarder) ForwardSync(snapshot Snapshot) {
	if f.url == "" {
		return
	}
	f.post(snapshot)
}

func (f *Forwarder) post(snapshot Snapshot) {
	body, err := json.Marshal(snapshot)
	if err != nil {
		f.logger.Warn("failed to encode analytics snapshot",
			zap.String("op", "analytics.Forward"),
			zap.Error(err),
		)
		return
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(f.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	if err := f.client.DoTimeout(req, resp, f.timeout); err != nil {
		f.logger.Warn("analytics snapshot dropped",
			zap.String("op", "analytics.Forward"),
			zap.String("sessionId", snapshot.SessionID),
			zap.Error(err),
		)
		return
	}

	if status := resp.StatusCode(); status >= 300 {
		f.logger.Warn("analytics collector rejected snapshot",
			zap.String("op", "analytics.Forward"),
			zap.String("sessionId", snapshot.SessionID),
			zap.Int("status", status),
		)
	}
}
