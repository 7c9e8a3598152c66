package store

import (
	"context"
	"fmt"

	"github.com/alecrj/atelier/ent"
	"github.com/alecrj/atelier/ent/badgeevent"
)

func (r *eventRepo) AppendBadgeEvent(ctx context.Context, data BadgeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.BadgeEvent.Create().
		SetSequence(seqNum).
		SetBadgeID(data.BadgeID).
		SetTitle(data.Title).
		SetXpReward(data.XPReward).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save badge event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryBadgeEvents(ctx context.Context, opts QueryOpts) ([]BadgeEventRecord, error) {
	query := r.client.BadgeEvent.Query().
		Order(ent.Desc(badgeevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(badgeevent.SequenceGT(opts.After))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query badge events: %w", err)
	}

	records := make([]BadgeEventRecord, len(events))
	for i, e := range events {
		records[i] = BadgeEventRecord{
			BadgeID:   e.BadgeID,
			Title:     e.Title,
			XPReward:  e.XpReward,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
