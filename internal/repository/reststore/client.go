// Package reststore implementa os repositórios como um cliente fino
// JSON-sobre-HTTP contra um backend externo, com bearer token e uma única
// retentativa após refresh em respostas 401.
package reststore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/config"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
)

// Client cliente HTTP autenticado do backend externo
type Client struct {
	base   string
	http   *http.Client
	logger *zap.Logger

	mu           sync.Mutex
	token        string
	refreshToken string
}

// NewClient cria o cliente a partir da configuração
func NewClient(cfg *config.RESTStorageConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		base:         strings.TrimRight(cfg.BaseURL, "/"),
		http:         &http.Client{Timeout: cfg.Timeout},
		logger:       logger,
		token:        cfg.Token,
		refreshToken: cfg.RefreshToken,
	}
}

// do executa a requisição; em 401 tenta um refresh e repete uma única vez
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && c.refreshToken != "" {
		_ = resp.Body.Close()
		if err := c.refresh(ctx); err != nil {
			return err
		}
		resp, err = c.send(ctx, method, path, body)
		if err != nil {
			return err
		}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return repository.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("backend externo respondeu %d em %s %s", resp.StatusCode, method, path)
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.http.Do(req)
}

// refresh troca o refresh token por um novo access token
func (c *Client) refresh(ctx context.Context) error {
	c.mu.Lock()
	refresh := c.refreshToken
	c.mu.Unlock()

	raw, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/token/refresh/", bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("refresh de token falhou com status %d", resp.StatusCode)
	}

	var payload struct {
		Access string `json:"access"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return err
	}

	c.mu.Lock()
	c.token = payload.Access
	c.mu.Unlock()

	c.logger.Info("access token renovado junto ao backend externo")
	return nil
}
