package services

import (
	"context"
	"time"

	"bigode_server/database"
	"bigode_server/lib"
	"bigode_server/structs"
	"bigode_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewAuthService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *AuthService {
	return &AuthService{logger: logger, cfg: cfg, db: db}
}

// TokenPair holds a freshly issued access/refresh token set.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Login verifies staff credentials and issues a token pair. Unknown email and
// wrong password return the same error so the response never leaks which one
// it was.
func (as *AuthService) Login(ctx context.Context, req *structs.LoginRequest) (*tables.User, *TokenPair, error) {
	user, err := database.Query[tables.User](as.db).
		Where("email", req.Email).
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		as.logger.Error("Failed to fetch user for login", gecho.Field("error", err))
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, lib.ErrInvalidCredentials
	}

	match, err := lib.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password", gecho.Field("error", err), gecho.Field("user", user.Id))
		return nil, nil, err
	}
	if !match {
		return nil, nil, lib.ErrInvalidCredentials
	}

	pair, err := as.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	as.logger.Info("User logged in", gecho.Field("user", user.Id), gecho.Field("role", user.Role))
	return user, pair, nil
}

// Refresh validates a refresh token and issues a new pair. The user row is
// re-fetched so a deleted account cannot keep refreshing.
func (as *AuthService) Refresh(ctx context.Context, refreshToken string) (*tables.User, *TokenPair, error) {
	claims, err := lib.ParseToken(refreshToken, as.cfg.Auth.RefreshTokenSecret)
	if err != nil {
		return nil, nil, lib.ErrInvalidToken
	}

	user, err := as.GetUserById(ctx, claims.Sub)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, lib.ErrInvalidToken
	}

	pair, err := as.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (as *AuthService) GetUserById(ctx context.Context, id uuid.UUID) (*tables.User, error) {
	return database.Query[tables.User](as.db).
		Where("id", id).
		Timeout(5 * time.Second).
		First(ctx)
}

func (as *AuthService) issueTokens(user *tables.User) (*TokenPair, error) {
	access, err := lib.SignToken(user.Id, user.Email, user.Role,
		as.cfg.Auth.AccessTokenSecret, as.cfg.Auth.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}

	refresh, err := lib.SignToken(user.Id, user.Email, user.Role,
		as.cfg.Auth.RefreshTokenSecret, as.cfg.Auth.RefreshTokenExpiry)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
