package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/pkg/errors"
	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
	"github.com/vfg2006/backoffice-api/internal/config"
)

// TotalUnknown indica que a resposta de listagem não trouxe o cabeçalho
// x-total-count; o chamador deve contar o conjunto completo como fallback.
const TotalUnknown = -1

// ErrNotFound indica que o recurso não existe na coleção do store
var ErrNotFound = errors.New("registro não encontrado no store")

// Client é a interface de acesso bruto às coleções do data store
type Client interface {
	ListOrders(ctx context.Context, params storedomain.OrderListParams) ([]*storedomain.Order, int, error)
	GetOrder(ctx context.Context, id int) (*storedomain.Order, error)
	PatchOrderStatus(ctx context.Context, id int, status string) (*storedomain.Order, error)

	ListOrderItems(ctx context.Context, orderID *int) ([]*storedomain.OrderItem, error)

	ListProducts(ctx context.Context, params storedomain.ProductListParams) ([]*storedomain.Product, int, error)
	GetProduct(ctx context.Context, id int) (*storedomain.Product, error)
	CreateProduct(ctx context.Context, product *storedomain.Product) (*storedomain.Product, error)

	ListCustomers(ctx context.Context) ([]*storedomain.Customer, error)
	GetCustomer(ctx context.Context, id int) (*storedomain.Customer, error)
	CreateCustomer(ctx context.Context, customer *storedomain.Customer) (*storedomain.Customer, error)

	ListUsers(ctx context.Context, username string) ([]*storedomain.User, error)
	CreateUser(ctx context.Context, user *storedomain.User) (*storedomain.User, error)

	GetSettings(ctx context.Context) (*storedomain.Settings, error)
}

type StoreClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente do data store
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Store.RequestTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &StoreClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

// buildURL monta a URL de um recurso da coleção com os parâmetros de consulta
func (c *StoreClient) buildURL(resource string, query url.Values) (string, error) {
	endpoint, err := url.Parse(c.config.Store.BaseURL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base do store: %w", err)
	}

	endpoint.Path = path.Join(endpoint.Path, resource)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	return endpoint.String(), nil
}

// do executa a requisição, decodifica o corpo JSON em out e retorna os
// cabeçalhos da resposta (necessários para o x-total-count das listagens)
func (c *StoreClient) do(ctx context.Context, method, resource string, query url.Values, body any, out any) (http.Header, error) {
	endpoint, err := c.buildURL(resource, query)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.Store.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Store.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.Wrapf(ErrNotFound, "requisição %s %s", method, resource)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("requisição %s %s falhou com status: %s", method, resource, resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
		}
	}

	return resp.Header, nil
}

// totalFromHeader extrai o total da listagem do cabeçalho x-total-count
// (insensível a maiúsculas); TotalUnknown quando ausente ou inválido
func totalFromHeader(header http.Header) int {
	raw := header.Get("X-Total-Count")
	if raw == "" {
		return TotalUnknown
	}

	total, err := strconv.Atoi(raw)
	if err != nil {
		return TotalUnknown
	}

	return total
}
