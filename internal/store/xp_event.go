package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendXPEvent(ctx context.Context, data XPEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.XPEvent.Create().
		SetSequence(seqNum).
		SetAmount(data.Amount).
		SetTotal(data.Total).
		SetSource(data.Source)

	if data.LessonID != nil {
		builder = builder.SetLessonID(*data.LessonID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save xp event: %w", err)
	}
	return nil
}
