package google

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
)

// ClientOptions returns the authentication options for the provider's
// auth method followed by any extra options.
func ClientOptions(ctx context.Context, provider driven.TokenProvider, extra ...option.ClientOption) ([]option.ClientOption, error) {
	var opts []option.ClientOption

	switch method := authMethod(provider); method {
	case domain.AuthMethodAPIKey:
		key, err := provider.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("google: api key: %w", err)
		}
		opts = append(opts, option.WithAPIKey(key))
	case domain.AuthMethodToken:
		opts = append(opts, option.WithTokenSource(NewTokenSource(ctx, provider)))
	case domain.AuthMethodNone:
		opts = append(opts, option.WithoutAuthentication())
	default:
		return nil, fmt.Errorf("google: auth method %q: %w", method, domain.ErrInvalidInput)
	}

	return append(opts, extra...), nil
}

// NewSheetsService creates a Google Sheets API service.
func NewSheetsService(ctx context.Context, provider driven.TokenProvider, extra ...option.ClientOption) (*sheets.Service, error) {
	opts, err := ClientOptions(ctx, provider, extra...)
	if err != nil {
		return nil, err
	}
	return sheets.NewService(ctx, opts...)
}

// NewDriveService creates a Google Drive API service.
func NewDriveService(ctx context.Context, provider driven.TokenProvider, extra ...option.ClientOption) (*drive.Service, error) {
	opts, err := ClientOptions(ctx, provider, extra...)
	if err != nil {
		return nil, err
	}
	return drive.NewService(ctx, opts...)
}

func authMethod(provider driven.TokenProvider) domain.AuthMethod {
	if provider == nil {
		return domain.AuthMethodNone
	}
	return provider.AuthMethod()
}
