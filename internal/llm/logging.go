package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecrj/atelier/internal/store"
)

// auditor journals every coach call as an event so the stats screen
// can report usage and spend per model.
type auditor struct {
	next   Provider
	name   string
	events store.EventRepo
}

// WithAudit wraps a Provider with event journaling.
func WithAudit(p Provider, repo store.EventRepo, providerName string) Provider {
	return &auditor{next: p, name: providerName, events: repo}
}

func (a *auditor) Generate(ctx context.Context, req Request) (*Reply, error) {
	start := time.Now()

	reply, err := a.next.Generate(ctx, req)

	data := store.CoachRequestEventData{
		Provider:  a.name,
		Model:     a.next.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if reply != nil {
		data.Model = reply.Model
		data.InputTokens = reply.Usage.InputTokens
		data.OutputTokens = reply.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A journaling failure must not take the coach down with it.
	if jerr := a.events.AppendCoachRequest(ctx, data); jerr != nil {
		fmt.Fprintf(os.Stderr, "warning: coach request not journaled: %v\n", jerr)
	}

	return reply, err
}

func (a *auditor) ModelID() string { return a.next.ModelID() }
