package store

import (
	"context"
	"fmt"

	"github.com/alecrj/atelier/ent"
	"github.com/alecrj/atelier/ent/lessonevent"
)

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LessonEvent.Create().
		SetSequence(seqNum).
		SetLessonID(data.LessonID).
		SetLessonTitle(data.LessonTitle).
		SetCategory(data.Category).
		SetXpAwarded(data.XPAwarded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLessonEvents(ctx context.Context, opts QueryOpts) ([]LessonEventRecord, error) {
	query := r.client.LessonEvent.Query().
		Order(ent.Desc(lessonevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(lessonevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		query = query.Where(lessonevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(lessonevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lesson events: %w", err)
	}

	records := make([]LessonEventRecord, len(events))
	for i, e := range events {
		records[i] = LessonEventRecord{
			LessonID:    e.LessonID,
			LessonTitle: e.LessonTitle,
			Category:    e.Category,
			XPAwarded:   e.XpAwarded,
			Sequence:    e.Sequence,
			Timestamp:   e.Timestamp,
		}
	}
	return records, nil
}
