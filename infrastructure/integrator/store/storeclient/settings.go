package storeclient

import (
	"context"
	"net/http"

	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
)

// GetSettings obtém o documento de configurações do store, fonte de
// fallback do código de convite quando a variável de ambiente está vazia
func (c *StoreClient) GetSettings(ctx context.Context) (*storedomain.Settings, error) {
	var settings storedomain.Settings

	_, err := c.do(ctx, http.MethodGet, "/settings", nil, nil, &settings)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}
