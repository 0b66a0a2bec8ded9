// Package events carries audit outcomes to external consumers. The core
// processor never imports this package; commands feed it processing results.
package events

import (
	"context"
	"sync"

	"github.com/mlev/payrec"
)

// AuditEvent is the wire form of one processed transaction's outcome.
type AuditEvent struct {
	Seq     int    `json:"seq"`     // position in the input sequence, starting at 1
	Command string `json:"command"` // transaction type
	Client  uint16 `json:"client"`  // client id
	Tx      uint32 `json:"tx"`      // own id for deposit/withdrawal, referenced id for the dispute chain
	Outcome string `json:"outcome"` // audit outcome
}

// NewAuditEvent builds the event for the seq-th transaction of a run.
func NewAuditEvent(seq int, tx payrec.Transaction, record payrec.AuditRecord) AuditEvent {
	id := tx.ID()
	switch v := tx.(type) {
	case payrec.Dispute:
		id = v.Ref
	case payrec.Resolve:
		id = v.Ref
	case payrec.ChargeBack:
		id = v.Ref
	}
	return AuditEvent{
		Seq:     seq,
		Command: string(tx.What()),
		Client:  uint16(tx.Client()),
		Tx:      uint32(id),
		Outcome: record.String(),
	}
}

// Publisher delivers events to a topic. Implementations must be safe to
// call sequentially for the duration of a run; delivery failures are
// reported as errors and never panic.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
}

// Collector is an in-memory Publisher that records every published event,
// for tests and dry runs.
type Collector struct {
	mu     sync.Mutex
	events []any
}

// Publish implements Publisher.
func (c *Collector) Publish(_ context.Context, _ string, event any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

// Events returns the events published so far.
func (c *Collector) Events() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]any(nil), c.events...)
}
