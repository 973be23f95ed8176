package session

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/watch-storefront/cmd/config"
	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/model"
	authrepo "github.com/muhammadheryan/watch-storefront/repository/auth"
	redisrepo "github.com/muhammadheryan/watch-storefront/repository/redis"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
	"github.com/muhammadheryan/watch-storefront/utils/errors"
	"github.com/muhammadheryan/watch-storefront/utils/logger"
	"go.uber.org/zap"
)

type SessionApp interface {
	SignIn(ctx context.Context, req *model.SignInRequest) (*model.SignInResponse, error)
	SignOut(ctx context.Context, sessionID string)
	RestoreSession(ctx context.Context, sessionID string) *model.Session
	DropSession(ctx context.Context, sessionID string)
	Notify(ctx context.Context, sessionID string, notice model.Notice)
	Notices(ctx context.Context, sessionID string) []model.Notice
}

type SessionAppImpl struct {
	config    *config.Config
	authRepo  authrepo.AuthRepository
	redisRepo redisrepo.Repository
}

func NewSessionApp(config *config.Config, authRepo authrepo.AuthRepository, redisRepo redisrepo.Repository) SessionApp {
	return &SessionAppImpl{
		config:    config,
		authRepo:  authRepo,
		redisRepo: redisRepo,
	}
}

func (s *SessionAppImpl) SignIn(ctx context.Context, req *model.SignInRequest) (*model.SignInResponse, error) {
	res, err := s.authRepo.SignIn(ctx, req)
	if err != nil {
		return nil, signInError(err)
	}

	if res.AccessToken == "" {
		logger.Error("[SignIn] backend returned empty token", zap.String("username", req.Username))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	claims := readClaims(res.AccessToken)
	ent := &model.SessionEntity{
		ID:        uuid.NewString(),
		UserID:    res.UserID,
		Username:  firstNonEmpty(res.Username, claims.username, req.Username),
		Roles:     res.Roles,
		Token:     res.AccessToken,
		ExpiresAt: time.Now().Add(s.config.Auth.SessionExpTime),
	}
	if ent.UserID == 0 {
		ent.UserID = claims.userID
	}
	if len(ent.Roles) == 0 {
		ent.Roles = claims.roles
	}

	// Store session in Redis
	if err := s.redisRepo.SetSession(ctx, ent, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[SignIn] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.SignInResponse{
		SessionID: ent.ID,
		Session:   model.NewSession(ent),
	}, nil
}

// SignOut tears the session down locally whatever the backend answers.
func (s *SessionAppImpl) SignOut(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}

	ent, err := s.redisRepo.GetSession(ctx, sessionID)
	if err != nil {
		logger.Warn("[SignOut] err GetSession", zap.String("error", err.Error()))
	}

	if ent != nil && ent.Token != "" {
		if err := s.authRepo.Logout(ctx, ent.Token); err != nil {
			logger.Warn("[SignOut] backend logout failed", zap.String("error", err.Error()), zap.Uint64("user_id", ent.UserID))
		}
	}

	s.DropSession(ctx, sessionID)
}

// RestoreSession rebuilds the session from storage without asking the
// backend whether the token is still good.
func (s *SessionAppImpl) RestoreSession(ctx context.Context, sessionID string) *model.Session {
	if sessionID == "" {
		return model.NewSession(nil)
	}

	ent, err := s.redisRepo.GetSession(ctx, sessionID)
	if err != nil {
		logger.Error("[RestoreSession] err GetSession", zap.String("error", err.Error()))
		return model.NewSession(nil)
	}
	return model.NewSession(ent)
}

func (s *SessionAppImpl) DropSession(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := s.redisRepo.DeleteSession(ctx, sessionID); err != nil {
		logger.Error("[DropSession] err DeleteSession", zap.String("error", err.Error()))
	}
}

func (s *SessionAppImpl) Notify(ctx context.Context, sessionID string, notice model.Notice) {
	if sessionID == "" {
		return
	}
	if err := s.redisRepo.PushNotice(ctx, sessionID, notice, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Notify] err PushNotice", zap.String("error", err.Error()))
	}
}

func (s *SessionAppImpl) Notices(ctx context.Context, sessionID string) []model.Notice {
	if sessionID == "" {
		return nil
	}
	notices, err := s.redisRepo.PopNotices(ctx, sessionID)
	if err != nil {
		logger.Error("[Notices] err PopNotices", zap.String("error", err.Error()))
		return nil
	}
	return notices
}

// signInError keeps field level messages from the backend when it sends
// them and otherwise reports a single message.
func signInError(err error) error {
	apiErr, ok := err.(*backend.APIError)
	if !ok {
		logger.Error("[SignIn] err authRepo.SignIn", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrBackendUnavailable)
	}
	if len(apiErr.Fields) > 0 {
		return errors.SetValidationError(apiErr.Fields)
	}
	if apiErr.StatusCode >= 500 {
		logger.Error("[SignIn] err authRepo.SignIn", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrBackendUnavailable)
	}
	if apiErr.Message != "" {
		return errors.SetCustomErrorMessage(constant.ErrInvalidCredential, apiErr.Message)
	}
	return errors.SetCustomError(constant.ErrInvalidCredential)
}

type tokenClaims struct {
	userID   uint64
	username string
	roles    []string
}

// readClaims reads display fields from the access token without verifying
// it; the backend stays the only judge of the token's validity.
func readClaims(token string) tokenClaims {
	var out tokenClaims
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return out
	}

	if sub, err := claims.GetSubject(); err == nil {
		out.username = sub
	}
	if name, ok := claims["username"].(string); ok && name != "" {
		out.username = name
	}
	switch v := claims["userId"].(type) {
	case float64:
		out.userID = uint64(v)
	case string:
		out.userID, _ = strconv.ParseUint(v, 10, 64)
	}
	if roles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range roles {
			if rs, ok := r.(string); ok {
				out.roles = append(out.roles, rs)
			}
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
