package model

import "time"

// SessionEntity is the persisted form of a signed-in browser session.
type SessionEntity struct {
	ID        string    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Session is the identity held by the storefront for one browser.
// IsAuthenticated is always derived from the token.
type Session struct {
	ID              string   `json:"-"`
	UserID          uint64   `json:"userId"`
	Username        string   `json:"username"`
	Roles           []string `json:"roles"`
	Token           string   `json:"-"`
	IsAuthenticated bool     `json:"isAuthenticated"`
}

// NewSession builds a Session from a persisted entity. A nil entity or an
// empty token yields an anonymous session with no roles.
func NewSession(ent *SessionEntity) *Session {
	if ent == nil || ent.Token == "" {
		s := &Session{Roles: []string{}}
		if ent != nil {
			s.ID = ent.ID
		}
		return s
	}
	roles := make([]string, len(ent.Roles))
	copy(roles, ent.Roles)
	return &Session{
		ID:              ent.ID,
		UserID:          ent.UserID,
		Username:        ent.Username,
		Roles:           roles,
		Token:           ent.Token,
		IsAuthenticated: true,
	}
}

// HasRole reports whether the session carries role.
func (s *Session) HasRole(role string) bool {
	if s == nil || !s.IsAuthenticated {
		return false
	}
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignInResult is what the shop backend answers on a successful sign-in.
type SignInResult struct {
	AccessToken string   `json:"accessToken"`
	UserID      uint64   `json:"userId"`
	Username    string   `json:"username"`
	Roles       []string `json:"roles"`
}

type SignInResponse struct {
	SessionID string   `json:"-"`
	Session   *Session `json:"session"`
}
