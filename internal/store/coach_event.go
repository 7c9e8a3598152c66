package store

import (
	"context"
	"fmt"

	"github.com/alecrj/atelier/ent"
	"github.com/alecrj/atelier/ent/coachrequestevent"
)

func (r *eventRepo) AppendCoachRequest(ctx context.Context, data CoachRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CoachRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save coach request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCoachRequests(ctx context.Context, opts QueryOpts) ([]CoachRequestEventRecord, error) {
	query := r.client.CoachRequestEvent.Query().
		Order(ent.Desc(coachrequestevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(coachrequestevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		query = query.Where(coachrequestevent.TimestampGTE(opts.From))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query coach request events: %w", err)
	}

	records := make([]CoachRequestEventRecord, len(events))
	for i, e := range events {
		records[i] = CoachRequestEventRecord{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
		}
	}
	return records, nil
}
