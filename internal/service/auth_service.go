package service

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/noah-isme/anycanvas/internal/models"
	appErrors "github.com/noah-isme/anycanvas/pkg/errors"
)

type tokenRepository interface {
	ListUserGeneratedTokens(ctx context.Context) (*models.APIResponse, error)
}

// AuthService confirms the configured bearer token is accepted by Canvas.
type AuthService struct {
	repo   tokenRepository
	logger *zap.Logger
}

// NewAuthService creates a new auth service instance.
func NewAuthService(repo tokenRepository, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{repo: repo, logger: logger}
}

// VerifyAccess succeeds only when the token probe answers 200.
func (s *AuthService) VerifyAccess(ctx context.Context) error {
	resp, err := s.repo.ListUserGeneratedTokens(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrAuthentication.Code, "token check request failed")
	}
	s.logger.Debug("token check response", zap.Int("status", resp.StatusCode), zap.ByteString("body", resp.Body))

	if resp.StatusCode != http.StatusOK {
		return appErrors.WithStatus(appErrors.ErrAuthentication, resp.StatusCode, "")
	}

	s.logger.Info("authenticated with canvas")
	return nil
}
