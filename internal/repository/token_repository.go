package repository

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/noah-isme/anycanvas/internal/models"
)

const userGeneratedTokensPath = "/v1/users/self/user_generated_tokens"

// TokenRepository probes the token owner's access tokens endpoint, which only answers 200 to a
// valid bearer token.
type TokenRepository struct {
	client *resty.Client
}

// NewTokenRepository instantiates a token repository.
func NewTokenRepository(client *resty.Client) *TokenRepository {
	return &TokenRepository{client: client}
}

// ListUserGeneratedTokens issues the probe request.
func (r *TokenRepository) ListUserGeneratedTokens(ctx context.Context) (*models.APIResponse, error) {
	resp, err := r.client.R().SetContext(ctx).Get(userGeneratedTokensPath)
	if err != nil {
		return nil, err
	}
	return &models.APIResponse{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}
