package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/lushkiwi/UT-Marketplace/internal/config"
	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/internal/utils"
	"github.com/lushkiwi/UT-Marketplace/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and initialises the shared HMAC hasher pool used for transport
// integrity hashes.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	utils.InitHasherPool(appCfg.HashKey)

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
// Safe for concurrent use with the request methods.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the signup request to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.LoginResponse, error) {
	var account models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&account).
		Post("/api/auth/register")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return account, nil
}

// Login implements [ServerAdapter]. It POSTs the plaintext credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns the account
// summary including the stored key record; KeyRecord is nil for accounts
// without key material. Returns an error if the request fails, the server
// returns a non-2xx status, or the token cannot be parsed.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	var account models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&account).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return account, nil
}

// GetKeyRecord implements [ServerAdapter]. It GETs /api/keys/{userID} and
// decodes the key record. HTTP 404 means the account has no key material and
// is translated to (nil, nil); callers treat absence as a normal state.
// Requires a valid bearer token.
func (h *httpServerAdapter) GetKeyRecord(ctx context.Context, userID int64) (*models.KeyRecord, error) {
	var record models.KeyRecord

	resp, err := h.authedRequest(ctx).
		SetResult(&record).
		Get("/api/keys/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return nil, fmt.Errorf("get key record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

// GetPublicKeys implements [ServerAdapter]. It POSTs the id batch to
// POST /api/keys/batch and returns the id → public key map; users without key
// records are omitted by the server. An empty input returns an empty map
// without a network call. Requires a valid bearer token.
func (h *httpServerAdapter) GetPublicKeys(ctx context.Context, userIDs []int64) (map[int64]string, error) {
	if len(userIDs) == 0 {
		return map[int64]string{}, nil
	}

	var result models.PublicKeysResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PublicKeysRequest{UserIDs: userIDs}).
		SetResult(&result).
		Post("/api/keys/batch")
	if err != nil {
		return nil, fmt.Errorf("get public keys request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if result.Keys == nil {
		result.Keys = map[int64]string{}
	}
	return result.Keys, nil
}

// GetPublicKey implements [ServerAdapter]. It reuses the batch endpoint with a
// single id and unwraps the result, so point and batch lookups share one
// transport path. Requires a valid bearer token.
func (h *httpServerAdapter) GetPublicKey(ctx context.Context, userID int64) (string, bool, error) {
	keys, err := h.GetPublicKeys(ctx, []int64{userID})
	if err != nil {
		return "", false, err
	}

	key, ok := keys[userID]
	return key, ok, nil
}

// SendMessage implements [ServerAdapter]. It attaches a transport integrity
// hash over req.Content and POSTs the request to POST /api/messages/. Returns
// the persisted message with server-assigned fields. Requires a valid bearer
// token.
func (h *httpServerAdapter) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error) {
	req.Hash = hex.EncodeToString(utils.Hash([]byte(req.Content)))

	var message models.Message

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&message).
		Post("/api/messages/")
	if err != nil {
		return models.Message{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	return message, nil
}

// GetThread implements [ServerAdapter]. It GETs
// /api/messages/thread/{counterpartyID}, adding the listing_id query parameter
// when listingID is non-nil, and decodes the message slice. Requires a valid
// bearer token.
func (h *httpServerAdapter) GetThread(ctx context.Context, counterpartyID int64, listingID *int64) ([]models.Message, error) {
	req := h.authedRequest(ctx)
	if listingID != nil {
		req.SetQueryParam("listing_id", strconv.FormatInt(*listingID, 10))
	}

	resp, err := req.Get("/api/messages/thread/" + strconv.FormatInt(counterpartyID, 10))
	if err != nil {
		return nil, fmt.Errorf("get thread request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var thread []models.Message
	if err = json.Unmarshal(resp.Body(), &thread); err != nil {
		return nil, fmt.Errorf("decode thread response: %w", err)
	}

	return thread, nil
}

// GetInbox implements [ServerAdapter]. It GETs /api/messages/ with the
// since_id query parameter and decodes the message slice. Requires a valid
// bearer token.
func (h *httpServerAdapter) GetInbox(ctx context.Context, sinceID int64) ([]models.Message, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("since_id", strconv.FormatInt(sinceID, 10)).
		Get("/api/messages/")
	if err != nil {
		return nil, fmt.Errorf("get inbox request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var inbox []models.Message
	if err = json.Unmarshal(resp.Body(), &inbox); err != nil {
		return nil, fmt.Errorf("decode inbox response: %w", err)
	}

	return inbox, nil
}

// GetConversations implements [ServerAdapter]. It GETs
// /api/messages/conversations and decodes the summary slice. Requires a valid
// bearer token.
func (h *httpServerAdapter) GetConversations(ctx context.Context) ([]models.Conversation, error) {
	resp, err := h.authedRequest(ctx).Get("/api/messages/conversations")
	if err != nil {
		return nil, fmt.Errorf("get conversations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var conversations []models.Conversation
	if err = json.Unmarshal(resp.Body(), &conversations); err != nil {
		return nil, fmt.Errorf("decode conversations response: %w", err)
	}

	return conversations, nil
}

// MarkThreadRead implements [ServerAdapter]. It POSTs the acknowledgement to
// POST /api/messages/read and returns the number of messages that changed
// state. Requires a valid bearer token.
func (h *httpServerAdapter) MarkThreadRead(ctx context.Context, counterpartyID int64) (int64, error) {
	var result models.MarkReadResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.MarkReadRequest{CounterpartyID: counterpartyID}).
		SetResult(&result).
		Post("/api/messages/read")
	if err != nil {
		return 0, fmt.Errorf("mark thread read request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.MarkedRead, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
