package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendStreakEvent(ctx context.Context, data StreakEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.StreakEvent.Create().
		SetSequence(seqNum).
		SetAction(data.Action).
		SetDays(data.Days).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save streak event: %w", err)
	}
	return nil
}
