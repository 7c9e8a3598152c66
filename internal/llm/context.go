package llm

import "context"

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose labels the context with what the call is for, e.g.
// "attempt-feedback". The audit decorator stores the label with each
// coach request event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom returns the purpose label, or "unknown" for an unlabeled
// context.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey).(string); ok && p != "" {
		return p
	}
	return "unknown"
}
