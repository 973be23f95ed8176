package session_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appsession "github.com/muhammadheryan/watch-storefront/application/session"
	"github.com/muhammadheryan/watch-storefront/cmd/config"
	"github.com/muhammadheryan/watch-storefront/constant"
	authmocks "github.com/muhammadheryan/watch-storefront/mocks/repository/auth"
	redismocks "github.com/muhammadheryan/watch-storefront/mocks/repository/redis"
	"github.com/muhammadheryan/watch-storefront/model"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
	cerr "github.com/muhammadheryan/watch-storefront/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			SessionExpTime: 7 * 24 * time.Hour,
		},
	}
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestSessionApp_SignIn(t *testing.T) {
	type fields struct {
		authRepo  *authmocks.AuthRepository
		redisRepo *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.SignInRequest
	}
	tokenWithClaims := signedToken(t, jwt.MapClaims{"sub": "alice", "userId": float64(9), "roles": []interface{}{"ADMIN"}})

	tests := []struct {
		name       string
		fields     fields
		args       args
		mockCall   func(f fields)
		wantUserID uint64
		wantRoles  []string
		wantFields map[string]string
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: backend returns identity",
			fields: fields{
				authRepo:  authmocks.NewAuthRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background(), req: &model.SignInRequest{Username: "alice", Password: "pw"}},
			mockCall: func(f fields) {
				f.authRepo.On("SignIn", mock.Anything, &model.SignInRequest{Username: "alice", Password: "pw"}).
					Return(&model.SignInResult{AccessToken: "tok", UserID: 3, Username: "alice", Roles: []string{"USER"}}, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.MatchedBy(func(ent *model.SessionEntity) bool {
					return ent.ID != "" && ent.UserID == 3 && ent.Token == "tok" && ent.ExpiresAt.After(time.Now().Add(6*24*time.Hour))
				}), 7*24*time.Hour).Return(nil).Once()
			},
			wantUserID: 3,
			wantRoles:  []string{"USER"},
		},
		{
			name: "success: identity read from token claims",
			fields: fields{
				authRepo:  authmocks.NewAuthRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background(), req: &model.SignInRequest{Username: "alice", Password: "pw"}},
			mockCall: func(f fields) {
				f.authRepo.On("SignIn", mock.Anything, mock.Anything).
					Return(&model.SignInResult{AccessToken: tokenWithClaims}, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.MatchedBy(func(ent *model.SessionEntity) bool {
					return ent.UserID == 9 && ent.Username == "alice"
				}), mock.Anything).Return(nil).Once()
			},
			wantUserID: 9,
			wantRoles:  []string{"ADMIN"},
		},
		{
			name: "error: field errors are kept",
			fields: fields{
				authRepo:  authmocks.NewAuthRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background(), req: &model.SignInRequest{Username: "a", Password: "b"}},
			mockCall: func(f fields) {
				f.authRepo.On("SignIn", mock.Anything, mock.Anything).
					Return(nil, &backend.APIError{StatusCode: http.StatusBadRequest, Fields: map[string]string{"username": "not found"}}).Once()
			},
			wantFields: map[string]string{"username": "not found"},
			wantErr:    true,
			errCode:    constant.ErrInvalidRequest,
		},
		{
			name: "error: wrong password",
			fields: fields{
				authRepo:  authmocks.NewAuthRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background(), req: &model.SignInRequest{Username: "a", Password: "b"}},
			mockCall: func(f fields) {
				f.authRepo.On("SignIn", mock.Anything, mock.Anything).
					Return(nil, &backend.APIError{StatusCode: http.StatusUnauthorized, Message: "Sai mật khẩu"}).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredential,
		},
		{
			name: "error: backend down",
			fields: fields{
				authRepo:  authmocks.NewAuthRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background(), req: &model.SignInRequest{Username: "a", Password: "b"}},
			mockCall: func(f fields) {
				f.authRepo.On("SignIn", mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: refused")).Once()
			},
			wantErr: true,
			errCode: constant.ErrBackendUnavailable,
		},
		{
			name: "error: session not stored",
			fields: fields{
				authRepo:  authmocks.NewAuthRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background(), req: &model.SignInRequest{Username: "a", Password: "b"}},
			mockCall: func(f fields) {
				f.authRepo.On("SignIn", mock.Anything, mock.Anything).Return(&model.SignInResult{AccessToken: "tok", UserID: 1}, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appsession.NewSessionApp(testConfig(), tt.fields.authRepo, tt.fields.redisRepo)

			got, err := app.SignIn(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SignIn() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				for k, v := range tt.wantFields {
					if ce.Fields()[k] != v {
						t.Fatalf("field %q = %q, want %q", k, ce.Fields()[k], v)
					}
				}
				return
			}

			if got.SessionID == "" {
				t.Fatal("SignIn() SessionID should not be empty")
			}
			if !got.Session.IsAuthenticated {
				t.Fatal("SignIn() session should be authenticated")
			}
			if got.Session.UserID != tt.wantUserID {
				t.Fatalf("UserID = %d, want %d", got.Session.UserID, tt.wantUserID)
			}
			if len(got.Session.Roles) != len(tt.wantRoles) || got.Session.Roles[0] != tt.wantRoles[0] {
				t.Fatalf("Roles = %v, want %v", got.Session.Roles, tt.wantRoles)
			}
		})
	}
}

func TestSessionApp_SignOut(t *testing.T) {
	tests := []struct {
		name     string
		sid      string
		mockCall func(a *authmocks.AuthRepository, r *redismocks.Repository)
	}{
		{
			name: "logout and drop",
			sid:  "sid-1",
			mockCall: func(a *authmocks.AuthRepository, r *redismocks.Repository) {
				r.On("GetSession", mock.Anything, "sid-1").Return(&model.SessionEntity{ID: "sid-1", Token: "tok"}, nil).Once()
				a.On("Logout", mock.Anything, "tok").Return(nil).Once()
				r.On("DeleteSession", mock.Anything, "sid-1").Return(nil).Once()
			},
		},
		{
			name: "backend logout fails, session still dropped",
			sid:  "sid-1",
			mockCall: func(a *authmocks.AuthRepository, r *redismocks.Repository) {
				r.On("GetSession", mock.Anything, "sid-1").Return(&model.SessionEntity{ID: "sid-1", Token: "tok"}, nil).Once()
				a.On("Logout", mock.Anything, "tok").Return(errors.New("timeout")).Once()
				r.On("DeleteSession", mock.Anything, "sid-1").Return(nil).Once()
			},
		},
		{
			name: "already signed out",
			sid:  "sid-1",
			mockCall: func(a *authmocks.AuthRepository, r *redismocks.Repository) {
				r.On("GetSession", mock.Anything, "sid-1").Return(nil, nil).Once()
				r.On("DeleteSession", mock.Anything, "sid-1").Return(nil).Once()
			},
		},
		{
			name:     "no cookie",
			sid:      "",
			mockCall: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authRepo := authmocks.NewAuthRepository(t)
			redisRepo := redismocks.NewRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(authRepo, redisRepo)
			}
			app := appsession.NewSessionApp(testConfig(), authRepo, redisRepo)

			app.SignOut(context.Background(), tt.sid)
		})
	}
}

func TestSessionApp_RestoreSession(t *testing.T) {
	tests := []struct {
		name     string
		sid      string
		mockCall func(r *redismocks.Repository)
		wantAuth bool
	}{
		{
			name: "stored session",
			sid:  "sid-1",
			mockCall: func(r *redismocks.Repository) {
				r.On("GetSession", mock.Anything, "sid-1").Return(&model.SessionEntity{ID: "sid-1", UserID: 2, Token: "tok"}, nil).Once()
			},
			wantAuth: true,
		},
		{
			name: "expired session",
			sid:  "sid-1",
			mockCall: func(r *redismocks.Repository) {
				r.On("GetSession", mock.Anything, "sid-1").Return(nil, nil).Once()
			},
			wantAuth: false,
		},
		{
			name: "storage error",
			sid:  "sid-1",
			mockCall: func(r *redismocks.Repository) {
				r.On("GetSession", mock.Anything, "sid-1").Return(nil, errors.New("redis down")).Once()
			},
			wantAuth: false,
		},
		{
			name:     "no cookie",
			sid:      "",
			wantAuth: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisRepo := redismocks.NewRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(redisRepo)
			}
			app := appsession.NewSessionApp(testConfig(), authmocks.NewAuthRepository(t), redisRepo)

			got := app.RestoreSession(context.Background(), tt.sid)
			if got.IsAuthenticated != tt.wantAuth {
				t.Fatalf("IsAuthenticated = %v, want %v", got.IsAuthenticated, tt.wantAuth)
			}
		})
	}
}

func TestSessionApp_Notices(t *testing.T) {
	redisRepo := redismocks.NewRepository(t)
	notice := model.Notice{Level: model.NoticeInfo, Message: "Payment was cancelled"}
	redisRepo.On("PushNotice", mock.Anything, "sid-1", notice, 7*24*time.Hour).Return(nil).Once()
	redisRepo.On("PopNotices", mock.Anything, "sid-1").Return([]model.Notice{notice}, nil).Once()

	app := appsession.NewSessionApp(testConfig(), authmocks.NewAuthRepository(t), redisRepo)
	app.Notify(context.Background(), "sid-1", notice)

	got := app.Notices(context.Background(), "sid-1")
	if len(got) != 1 || got[0] != notice {
		t.Fatalf("Notices() = %v, want [%v]", got, notice)
	}
}
