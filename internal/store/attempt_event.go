package store

import (
	"context"
	"fmt"

	"github.com/alecrj/atelier/ent"
	"github.com/alecrj/atelier/ent/attemptevent"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetLessonID(data.LessonID).
		SetStepID(data.StepID).
		SetScore(data.Score).
		SetPassed(data.Passed).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttemptEvents(ctx context.Context, opts QueryOpts) ([]AttemptEventRecord, error) {
	query := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(attemptevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	records := make([]AttemptEventRecord, len(events))
	for i, e := range events {
		records[i] = AttemptEventRecord{
			LessonID:     e.LessonID,
			StepID:       e.StepID,
			Score:        e.Score,
			Passed:       e.Passed,
			DurationSecs: e.DurationSecs,
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
		}
	}
	return records, nil
}
