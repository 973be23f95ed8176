package context

import (
	"context"

	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/model"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// GetSession returns the session the auth middleware restored for this request.
func GetSession(ctx context.Context) (*model.Session, bool) {
	s, ok := ctx.Value(constant.SessionKey).(*model.Session)
	return s, ok && s != nil
}

// WithSession stores s and its user id on ctx.
func WithSession(ctx context.Context, s *model.Session) context.Context {
	ctx = context.WithValue(ctx, constant.SessionKey, s)
	if s != nil && s.IsAuthenticated {
		ctx = context.WithValue(ctx, constant.UserIDKey, s.UserID)
	}
	return ctx
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(constant.RequestIDKey).(string)
	return id
}
