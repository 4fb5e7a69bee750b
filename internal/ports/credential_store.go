package ports

import (
	"context"

	"github.com/bnema/clickup-cli/internal/domain"
)

type CredentialStore interface {
	Load(ctx context.Context) (domain.Credentials, error)
	Save(ctx context.Context, creds domain.Credentials) error
	Update(ctx context.Context, patch domain.CredentialsPatch) error
	Get(ctx context.Context, key domain.CredentialKey) (string, error)
	Set(ctx context.Context, key domain.CredentialKey, value string) error
}
