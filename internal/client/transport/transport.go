package transport

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/blake2b"

	"github.com/ddanilov/sitesync/internal/client/storage"
	"github.com/ddanilov/sitesync/internal/models"
	"github.com/ddanilov/sitesync/pkg/api"
)

// ErrTokenExpired means the saved bearer token is past its expiry and
// the user has to log in again before syncing.
var ErrTokenExpired = errors.New("access token expired")

// Client - HTTP транспорт клиента синхронизации. Токен доступа хранится
// в журнале метаданных и подставляется в каждый авторизованный запрос.
type Client struct {
	httpClient *http.Client
	meta       storage.MetaStorage
	logger     *slog.Logger
	baseURL    string
}

// New создает новый транспорт поверх журнала метаданных
func New(baseURL string, meta storage.MetaStorage, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		meta:    meta,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Login аутентифицирует пользователя и сохраняет выданный токен
func (c *Client) Login(ctx context.Context, login, password string) error {
	req := api.LoginRequest{Login: login, Password: password}

	var resp api.LoginResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}

	if err := c.meta.SaveAccessToken(ctx, resp.AccessToken); err != nil {
		return fmt.Errorf("failed to save access token: %w", err)
	}
	return nil
}

// Apply применяет одну мутацию на сервере. Ответ 409 означает, что
// запись разошлась с сервером; в этом случае возвращается
// *api.ConflictError со снимком серверных данных.
func (c *Client) Apply(ctx context.Context, m *models.PendingMutation) error {
	token, err := c.meta.GetAccessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to load access token: %w", err)
	}
	if tokenExpired(token) {
		return ErrTokenExpired
	}

	method, path := routeFor(m)
	req := api.MutationRequest{
		ID:         m.ID,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Operation:  string(m.Operation),
		Payload:    m.Payload,
		Timestamp:  m.Timestamp,
	}

	if err := c.doRequest(ctx, method, path, token, req, nil); err != nil {
		var conflictErr *api.ConflictError
		if errors.As(err, &conflictErr) {
			conflictErr.EntityType = m.EntityType
			conflictErr.EntityID = m.EntityID
		}
		return err
	}
	return nil
}

// routeFor выбирает метод и путь по типу операции
func routeFor(m *models.PendingMutation) (method, path string) {
	base := fmt.Sprintf("/api/v1/entities/%s", url.PathEscape(m.EntityType))
	switch m.Operation {
	case models.OperationCreate:
		return http.MethodPost, base
	case models.OperationDelete:
		return http.MethodDelete, base + "/" + url.PathEscape(m.EntityID)
	default:
		return http.MethodPut, base + "/" + url.PathEscape(m.EntityID)
	}
}

// tokenExpired проверяет срок действия токена без валидации подписи:
// подпись проверяет сервер, клиенту достаточно не слать заведомо
// протухший токен.
func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		// Непрозрачный токен - пусть решает сервер
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now())
}

func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	var jsonData []byte
	if body != nil {
		var err error
		jsonData, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		// Контрольная сумма тела: сервер отбрасывает побитые загрузки
		// с нестабильной полевой связи
		digest := blake2b.Sum256(jsonData)
		req.Header.Set("X-Payload-Digest", hex.EncodeToString(digest[:]))
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusConflict {
		var conflict api.ConflictResponse
		if err := json.Unmarshal(respBody, &conflict); err != nil {
			return fmt.Errorf("failed to decode conflict response: %w", err)
		}
		return &api.ConflictError{
			ServerData:      conflict.ServerData,
			ServerTimestamp: conflict.ServerTimestamp,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
