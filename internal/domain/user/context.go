package user

import "context"

// Context holds the authenticated caller extracted from the access token.
// TeacherID is set only for teacher-role callers.
type Context struct {
	UserID    string
	Role      Role
	TeacherID *string
}

type ctxKey struct{}

// WithContext attaches the authenticated caller to ctx.
func WithContext(ctx context.Context, u Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// FromContext returns the authenticated caller, if any.
func FromContext(ctx context.Context) (Context, bool) {
	u, ok := ctx.Value(ctxKey{}).(Context)
	return u, ok
}
