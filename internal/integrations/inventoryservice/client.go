package inventoryservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с InventoryService (resource directory)
// Core читает отсюда статус/флаг активности, вместимость и лабораторию ресурса
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента InventoryService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetEquipment получает оборудование по ID
func (c *Client) GetEquipment(ctx context.Context, equipmentID int64) (*Equipment, error) {
	url := fmt.Sprintf("%s/internal/equipment/%d", c.baseURL, equipmentID)

	var equipment Equipment
	if err := c.getJSON(ctx, url, &equipment, ErrEquipmentNotFound); err != nil {
		return nil, err
	}

	return &equipment, nil
}

// GetWorkspace получает рабочее место по ID
func (c *Client) GetWorkspace(ctx context.Context, workspaceID int64) (*Workspace, error) {
	url := fmt.Sprintf("%s/internal/workspaces/%d", c.baseURL, workspaceID)

	var workspace Workspace
	if err := c.getJSON(ctx, url, &workspace, ErrWorkspaceNotFound); err != nil {
		return nil, err
	}

	return &workspace, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
// notFoundErr возвращается при статусе 404
func (c *Client) getJSON(ctx context.Context, url string, dest interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid resource ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// IsNotFound возвращает true для ошибок отсутствия ресурса любого вида
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEquipmentNotFound) || errors.Is(err, ErrWorkspaceNotFound)
}
