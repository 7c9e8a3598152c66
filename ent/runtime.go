// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/alecrj/atelier/ent/artwork"
	"github.com/alecrj/atelier/ent/attemptevent"
	"github.com/alecrj/atelier/ent/badgeevent"
	"github.com/alecrj/atelier/ent/coachrequestevent"
	"github.com/alecrj/atelier/ent/lessonevent"
	"github.com/alecrj/atelier/ent/schema"
	"github.com/alecrj/atelier/ent/snapshot"
	"github.com/alecrj/atelier/ent/streakevent"
	"github.com/alecrj/atelier/ent/xpevent"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	artworkFields := schema.Artwork{}.Fields()
	_ = artworkFields
	// artworkDescTitle is the schema descriptor for title field.
	artworkDescTitle := artworkFields[1].Descriptor()
	// artwork.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	artwork.TitleValidator = artworkDescTitle.Validators[0].(func(string) error)
	// artworkDescPath is the schema descriptor for path field.
	artworkDescPath := artworkFields[3].Descriptor()
	// artwork.PathValidator is a validator for the "path" field. It is called by the builders before save.
	artwork.PathValidator = artworkDescPath.Validators[0].(func(string) error)
	// artworkDescImportedAt is the schema descriptor for imported_at field.
	artworkDescImportedAt := artworkFields[4].Descriptor()
	// artwork.DefaultImportedAt holds the default value on creation for the imported_at field.
	artwork.DefaultImportedAt = artworkDescImportedAt.Default.(func() time.Time)
	// artworkDescID is the schema descriptor for id field.
	artworkDescID := artworkFields[0].Descriptor()
	// artwork.DefaultID holds the default value on creation for the id field.
	artwork.DefaultID = artworkDescID.Default.(func() uuid.UUID)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescLessonID is the schema descriptor for lesson_id field.
	attempteventDescLessonID := attempteventFields[0].Descriptor()
	// attemptevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	attemptevent.LessonIDValidator = attempteventDescLessonID.Validators[0].(func(string) error)
	// attempteventDescStepID is the schema descriptor for step_id field.
	attempteventDescStepID := attempteventFields[1].Descriptor()
	// attemptevent.StepIDValidator is a validator for the "step_id" field. It is called by the builders before save.
	attemptevent.StepIDValidator = attempteventDescStepID.Validators[0].(func(string) error)
	// attempteventDescScore is the schema descriptor for score field.
	attempteventDescScore := attempteventFields[2].Descriptor()
	// attemptevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	attemptevent.ScoreValidator = func() func(float64) error {
		validators := attempteventDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attempteventDescDurationSecs is the schema descriptor for duration_secs field.
	attempteventDescDurationSecs := attempteventFields[4].Descriptor()
	// attemptevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	attemptevent.DefaultDurationSecs = attempteventDescDurationSecs.Default.(int)
	// attemptevent.DurationSecsValidator is a validator for the "duration_secs" field. It is called by the builders before save.
	attemptevent.DurationSecsValidator = attempteventDescDurationSecs.Validators[0].(func(int) error)
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescBadgeID is the schema descriptor for badge_id field.
	badgeeventDescBadgeID := badgeeventFields[0].Descriptor()
	// badgeevent.BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	badgeevent.BadgeIDValidator = badgeeventDescBadgeID.Validators[0].(func(string) error)
	// badgeeventDescTitle is the schema descriptor for title field.
	badgeeventDescTitle := badgeeventFields[1].Descriptor()
	// badgeevent.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	badgeevent.TitleValidator = badgeeventDescTitle.Validators[0].(func(string) error)
	// badgeeventDescXpReward is the schema descriptor for xp_reward field.
	badgeeventDescXpReward := badgeeventFields[2].Descriptor()
	// badgeevent.XpRewardValidator is a validator for the "xp_reward" field. It is called by the builders before save.
	badgeevent.XpRewardValidator = badgeeventDescXpReward.Validators[0].(func(int) error)
	coachrequesteventMixin := schema.CoachRequestEvent{}.Mixin()
	coachrequesteventMixinFields0 := coachrequesteventMixin[0].Fields()
	_ = coachrequesteventMixinFields0
	coachrequesteventFields := schema.CoachRequestEvent{}.Fields()
	_ = coachrequesteventFields
	// coachrequesteventDescTimestamp is the schema descriptor for timestamp field.
	coachrequesteventDescTimestamp := coachrequesteventMixinFields0[1].Descriptor()
	// coachrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	coachrequestevent.DefaultTimestamp = coachrequesteventDescTimestamp.Default.(func() time.Time)
	// coachrequesteventDescProvider is the schema descriptor for provider field.
	coachrequesteventDescProvider := coachrequesteventFields[0].Descriptor()
	// coachrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	coachrequestevent.ProviderValidator = coachrequesteventDescProvider.Validators[0].(func(string) error)
	// coachrequesteventDescModel is the schema descriptor for model field.
	coachrequesteventDescModel := coachrequesteventFields[1].Descriptor()
	// coachrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	coachrequestevent.ModelValidator = coachrequesteventDescModel.Validators[0].(func(string) error)
	// coachrequesteventDescPurpose is the schema descriptor for purpose field.
	coachrequesteventDescPurpose := coachrequesteventFields[2].Descriptor()
	// coachrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	coachrequestevent.PurposeValidator = coachrequesteventDescPurpose.Validators[0].(func(string) error)
	// coachrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	coachrequesteventDescInputTokens := coachrequesteventFields[3].Descriptor()
	// coachrequestevent.InputTokensValidator is a validator for the "input_tokens" field. It is called by the builders before save.
	coachrequestevent.InputTokensValidator = coachrequesteventDescInputTokens.Validators[0].(func(int) error)
	// coachrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	coachrequesteventDescOutputTokens := coachrequesteventFields[4].Descriptor()
	// coachrequestevent.OutputTokensValidator is a validator for the "output_tokens" field. It is called by the builders before save.
	coachrequestevent.OutputTokensValidator = coachrequesteventDescOutputTokens.Validators[0].(func(int) error)
	// coachrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	coachrequesteventDescLatencyMs := coachrequesteventFields[5].Descriptor()
	// coachrequestevent.LatencyMsValidator is a validator for the "latency_ms" field. It is called by the builders before save.
	coachrequestevent.LatencyMsValidator = coachrequesteventDescLatencyMs.Validators[0].(func(int64) error)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[0].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	// lessoneventDescLessonTitle is the schema descriptor for lesson_title field.
	lessoneventDescLessonTitle := lessoneventFields[1].Descriptor()
	// lessonevent.LessonTitleValidator is a validator for the "lesson_title" field. It is called by the builders before save.
	lessonevent.LessonTitleValidator = lessoneventDescLessonTitle.Validators[0].(func(string) error)
	// lessoneventDescCategory is the schema descriptor for category field.
	lessoneventDescCategory := lessoneventFields[2].Descriptor()
	// lessonevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	lessonevent.CategoryValidator = lessoneventDescCategory.Validators[0].(func(string) error)
	// lessoneventDescXpAwarded is the schema descriptor for xp_awarded field.
	lessoneventDescXpAwarded := lessoneventFields[3].Descriptor()
	// lessonevent.XpAwardedValidator is a validator for the "xp_awarded" field. It is called by the builders before save.
	lessonevent.XpAwardedValidator = lessoneventDescXpAwarded.Validators[0].(func(int) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	streakeventMixin := schema.StreakEvent{}.Mixin()
	streakeventMixinFields0 := streakeventMixin[0].Fields()
	_ = streakeventMixinFields0
	streakeventFields := schema.StreakEvent{}.Fields()
	_ = streakeventFields
	// streakeventDescTimestamp is the schema descriptor for timestamp field.
	streakeventDescTimestamp := streakeventMixinFields0[1].Descriptor()
	// streakevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	streakevent.DefaultTimestamp = streakeventDescTimestamp.Default.(func() time.Time)
	// streakeventDescAction is the schema descriptor for action field.
	streakeventDescAction := streakeventFields[0].Descriptor()
	// streakevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	streakevent.ActionValidator = streakeventDescAction.Validators[0].(func(string) error)
	// streakeventDescDays is the schema descriptor for days field.
	streakeventDescDays := streakeventFields[1].Descriptor()
	// streakevent.DaysValidator is a validator for the "days" field. It is called by the builders before save.
	streakevent.DaysValidator = streakeventDescDays.Validators[0].(func(int) error)
	xpeventMixin := schema.XPEvent{}.Mixin()
	xpeventMixinFields0 := xpeventMixin[0].Fields()
	_ = xpeventMixinFields0
	xpeventFields := schema.XPEvent{}.Fields()
	_ = xpeventFields
	// xpeventDescTimestamp is the schema descriptor for timestamp field.
	xpeventDescTimestamp := xpeventMixinFields0[1].Descriptor()
	// xpevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	xpevent.DefaultTimestamp = xpeventDescTimestamp.Default.(func() time.Time)
	// xpeventDescAmount is the schema descriptor for amount field.
	xpeventDescAmount := xpeventFields[0].Descriptor()
	// xpevent.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	xpevent.AmountValidator = xpeventDescAmount.Validators[0].(func(int) error)
	// xpeventDescTotal is the schema descriptor for total field.
	xpeventDescTotal := xpeventFields[1].Descriptor()
	// xpevent.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	xpevent.TotalValidator = xpeventDescTotal.Validators[0].(func(int) error)
	// xpeventDescSource is the schema descriptor for source field.
	xpeventDescSource := xpeventFields[2].Descriptor()
	// xpevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	xpevent.SourceValidator = xpeventDescSource.Validators[0].(func(string) error)
}
