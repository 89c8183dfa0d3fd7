// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lushkiwi/UT-Marketplace/internal/app"
	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/internal/service"
	"github.com/lushkiwi/UT-Marketplace/internal/store"
	"github.com/lushkiwi/UT-Marketplace/internal/validators"
	"github.com/lushkiwi/UT-Marketplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock MessageService
// ─────────────────────────────────────────────

// mockMessageService implements service.MessageService for unit tests.
// Each method field can be overridden per test case.
type mockMessageService struct {
	sendMessageFn      func(ctx context.Context, senderID int64, request models.SendMessageRequest) (models.Message, error)
	getThreadFn        func(ctx context.Context, userID int64, counterpartyID int64, listingID *int64) ([]models.Message, error)
	getInboxFn         func(ctx context.Context, userID int64, sinceID int64) ([]models.Message, error)
	getConversationsFn func(ctx context.Context, userID int64) ([]models.Conversation, error)
	markThreadReadFn   func(ctx context.Context, userID int64, counterpartyID int64) (int64, error)
}

func (m *mockMessageService) SendMessage(ctx context.Context, senderID int64, request models.SendMessageRequest) (models.Message, error) {
	return m.sendMessageFn(ctx, senderID, request)
}

func (m *mockMessageService) GetThread(ctx context.Context, userID int64, counterpartyID int64, listingID *int64) ([]models.Message, error) {
	return m.getThreadFn(ctx, userID, counterpartyID, listingID)
}

func (m *mockMessageService) GetInbox(ctx context.Context, userID int64, sinceID int64) ([]models.Message, error) {
	return m.getInboxFn(ctx, userID, sinceID)
}

func (m *mockMessageService) GetConversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	return m.getConversationsFn(ctx, userID)
}

func (m *mockMessageService) MarkThreadRead(ctx context.Context, userID int64, counterpartyID int64) (int64, error) {
	return m.markThreadReadFn(ctx, userID, counterpartyID)
}

// newHandlerWithMessages builds a Handler with the given MessageService mock.
func newHandlerWithMessages(t *testing.T, messages service.MessageService) *Handler {
	t.Helper()
	svcs := &service.Services{
		MessageService: messages,
		AppInfoService: &mockAppInfoService{version: "test"},
	}
	return NewHandler(svcs, logger.Nop())
}

// ─────────────────────────────────────────────
// sendMessage
// ─────────────────────────────────────────────

// TestSendMessage_Success verifies that a valid send results in 201 Created
// with the persisted message, sender taken from the request context.
func TestSendMessage_Success(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	messages := &mockMessageService{
		sendMessageFn: func(_ context.Context, senderID int64, req models.SendMessageRequest) (models.Message, error) {
			assert.Equal(t, int64(9), senderID)
			assert.Equal(t, int64(10), req.ReceiverID)
			assert.Equal(t, "is the couch still available?", req.Content)
			return models.Message{
				ID:         101,
				SenderID:   senderID,
				ReceiverID: req.ReceiverID,
				Content:    req.Content,
				CreatedAt:  now,
			}, nil
		},
	}

	h := newHandlerWithMessages(t, messages)
	body := jsonBody(t, models.SendMessageRequest{ReceiverID: 10, Content: "is the couch still available?"})
	req := authedRequest(t, http.MethodPost, "/api/messages/", strings.NewReader(body), 9)
	rec := httptest.NewRecorder()

	h.sendMessage(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var saved models.Message
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&saved))
	assert.Equal(t, int64(101), saved.ID)
	assert.Equal(t, int64(9), saved.SenderID)
	assert.False(t, saved.IsRead)
}

// TestSendMessage_WithListing verifies that the listing reference is
// forwarded to the service.
func TestSendMessage_WithListing(t *testing.T) {
	listingID := int64(42)

	messages := &mockMessageService{
		sendMessageFn: func(_ context.Context, _ int64, req models.SendMessageRequest) (models.Message, error) {
			require.NotNil(t, req.ListingID)
			assert.Equal(t, listingID, *req.ListingID)
			return models.Message{ID: 1, ListingID: req.ListingID}, nil
		},
	}

	h := newHandlerWithMessages(t, messages)
	body := jsonBody(t, models.SendMessageRequest{ReceiverID: 10, ListingID: &listingID, Content: "about the bike"})
	req := authedRequest(t, http.MethodPost, "/api/messages/", strings.NewReader(body), 9)
	rec := httptest.NewRecorder()

	h.sendMessage(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

// TestSendMessage_NoUserIDInContext verifies that a request that skipped the
// auth middleware is rejected with 401.
func TestSendMessage_NoUserIDInContext(t *testing.T) {
	h := newHandlerWithMessages(t, &mockMessageService{})
	body := jsonBody(t, models.SendMessageRequest{ReceiverID: 10, Content: "hello"})
	req := httptest.NewRequest(http.MethodPost, "/api/messages/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.sendMessage(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgNoUserIDProvided)
}

// TestSendMessage_InvalidJSON verifies that a malformed body is rejected
// with 400 before the service is consulted.
func TestSendMessage_InvalidJSON(t *testing.T) {
	h := newHandlerWithMessages(t, &mockMessageService{})
	req := authedRequest(t, http.MethodPost, "/api/messages/", strings.NewReader("{not json"), 9)
	rec := httptest.NewRecorder()

	h.sendMessage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestSendMessage_ValidationError verifies that a wrapped
// service.ErrInvalidDataProvided from the validation layer maps to 400.
func TestSendMessage_ValidationError(t *testing.T) {
	messages := &mockMessageService{
		sendMessageFn: func(context.Context, int64, models.SendMessageRequest) (models.Message, error) {
			return models.Message{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrSelfMessage)
		},
	}

	h := newHandlerWithMessages(t, messages)
	body := jsonBody(t, models.SendMessageRequest{ReceiverID: 9, Content: "note to self"})
	req := authedRequest(t, http.MethodPost, "/api/messages/", strings.NewReader(body), 9)
	rec := httptest.NewRecorder()

	h.sendMessage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInvalidDataProvided)
}

// TestSendMessage_ReceiverNotFound verifies that store.ErrMessageNotSaved,
// raised when the receiver id violates the users foreign key, maps to 404.
func TestSendMessage_ReceiverNotFound(t *testing.T) {
	messages := &mockMessageService{
		sendMessageFn: func(context.Context, int64, models.SendMessageRequest) (models.Message, error) {
			return models.Message{}, store.ErrMessageNotSaved
		},
	}

	h := newHandlerWithMessages(t, messages)
	body := jsonBody(t, models.SendMessageRequest{ReceiverID: 404404, Content: "anyone there?"})
	req := authedRequest(t, http.MethodPost, "/api/messages/", strings.NewReader(body), 9)
	rec := httptest.NewRecorder()

	h.sendMessage(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgUserNotFound)
}

// TestSendMessage_StorageError verifies that an unexpected storage failure
// maps to 500.
func TestSendMessage_StorageError(t *testing.T) {
	messages := &mockMessageService{
		sendMessageFn: func(context.Context, int64, models.SendMessageRequest) (models.Message, error) {
			return models.Message{}, store.ErrScanningRow
		},
	}

	h := newHandlerWithMessages(t, messages)
	body := jsonBody(t, models.SendMessageRequest{ReceiverID: 10, Content: "hello"})
	req := authedRequest(t, http.MethodPost, "/api/messages/", strings.NewReader(body), 9)
	rec := httptest.NewRecorder()

	h.sendMessage(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// getThread
// ─────────────────────────────────────────────

// TestGetThread_Success verifies that the full two-party history is returned
// with 200 OK and no listing filter by default.
func TestGetThread_Success(t *testing.T) {
	messages := &mockMessageService{
		getThreadFn: func(_ context.Context, userID, counterpartyID int64, listingID *int64) ([]models.Message, error) {
			assert.Equal(t, int64(9), userID)
			assert.Equal(t, int64(10), counterpartyID)
			assert.Nil(t, listingID)
			return []models.Message{
				{ID: 1, SenderID: 9, ReceiverID: 10, Content: "hi"},
				{ID: 2, SenderID: 10, ReceiverID: 9, Content: "hello"},
			}, nil
		},
	}

	h := newHandlerWithMessages(t, messages)
	req := authedRequest(t, http.MethodGet, "/api/messages/thread/10", nil, 9)
	req = withURLParam(t, req, "counterpartyID", "10")
	rec := httptest.NewRecorder()

	h.getThread(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var thread []models.Message
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&thread))
	require.Len(t, thread, 2)
	assert.Equal(t, int64(1), thread[0].ID)
	assert.Equal(t, int64(2), thread[1].ID)
}

// TestGetThread_WithListingFilter verifies that the listing_id query
// parameter narrows the thread.
func TestGetThread_WithListingFilter(t *testing.T) {
	messages := &mockMessageService{
		getThreadFn: func(_ context.Context, _, _ int64, listingID *int64) ([]models.Message, error) {
			require.NotNil(t, listingID)
			assert.Equal(t, int64(12), *listingID)
			return nil, nil
		},
	}

	h := newHandlerWithMessages(t, messages)
	req := authedRequest(t, http.MethodGet, "/api/messages/thread/10?listing_id=12", nil, 9)
	req = withURLParam(t, req, "counterpartyID", "10")
	rec := httptest.NewRecorder()

	h.getThread(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestGetThread_InvalidCounterpartyParam verifies that a non-numeric path
// parameter is rejected with 400.
func TestGetThread_InvalidCounterpartyParam(t *testing.T) {
	h := newHandlerWithMessages(t, &mockMessageService{})
	req := authedRequest(t, http.MethodGet, "/api/messages/thread/abc", nil, 9)
	req = withURLParam(t, req, "counterpartyID", "abc")
	rec := httptest.NewRecorder()

	h.getThread(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestGetThread_InvalidListingParam verifies that a non-numeric listing_id
// query parameter is rejected with 400.
func TestGetThread_InvalidListingParam(t *testing.T) {
	h := newHandlerWithMessages(t, &mockMessageService{})
	req := authedRequest(t, http.MethodGet, "/api/messages/thread/10?listing_id=abc", nil, 9)
	req = withURLParam(t, req, "counterpartyID", "10")
	rec := httptest.NewRecorder()

	h.getThread(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestGetThread_NoUserIDInContext verifies the 401 guard.
func TestGetThread_NoUserIDInContext(t *testing.T) {
	h := newHandlerWithMessages(t, &mockMessageService{})
	req := httptest.NewRequest(http.MethodGet, "/api/messages/thread/10", nil)
	req = withURLParam(t, req, "counterpartyID", "10")
	rec := httptest.NewRecorder()

	h.getThread(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestGetThread_ValidationError verifies that a wrapped
// service.ErrInvalidDataProvided maps to 400 through the status mapper.
func TestGetThread_ValidationError(t *testing.T) {
	messages := &mockMessageService{
		getThreadFn: func(context.Context, int64, int64, *int64) ([]models.Message, error) {
			return nil, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidCounterparty)
		},
	}

	h := newHandlerWithMessages(t, messages)
	req := authedRequest(t, http.MethodGet, "/api/messages/thread/0", nil, 9)
	req = withURLParam(t, req, "counterpartyID", "0")
	rec := httptest.NewRecorder()

	h.getThread(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// getInbox
// ─────────────────────────────────────────────

// TestGetInbox_Success verifies that messages past the client's watermark are
// returned with 200 OK.
func TestGetInbox_Success(t *testing.T) {
	messages := &mockMessageService{
		getInboxFn: func(_ context.Context, userID, sinceID int64) ([]models.Message, error) {
			assert.Equal(t, int64(9), userID)
			assert.Equal(t, int64(100), sinceID)
			return []models.Message{
				{ID: 101, SenderID: 10, ReceiverID: 9, Content: "new message"},
				{ID: 105, SenderID: 12, ReceiverID: 9, Content: "another one"},
			}, nil
		},
	}

	h := newHandlerWithMessages(t, messages)
	req := authedRequest(t, http.MethodGet, "/api/messages/?since_id=100", nil, 9)
	rec := httptest.NewRecorder()

	h.getInbox(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var inbox []models.Message
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&inbox))
	require.Len(t, inbox, 2)
	assert.Equal(t, int64(101), inbox[0].ID)
}

// TestGetInbox_DefaultSinceID verifies that a missing since_id parameter
// defaults to zero, returning the whole inbox.
func TestGetInbox_DefaultSinceID(t *testing.T) {
	messages := &mockMessageService{
		getInboxFn: func(_ context.Context, _, sinceID int64) ([]models.Message, error) {
			assert.Zero(t, sinceID)
			return nil, nil
		},
	}

	h := newHandlerWithMessages(t, messages)
	req := authedRequest(t, http.MethodGet, "/api/messages/", nil, 9)
	rec := httptest.NewRecorder()

	h.getInbox(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestGetInbox_InvalidSinceID verifies that a non-numeric since_id is
// rejected with 400.
func TestGetInbox_InvalidSinceID(t *testing.T) {
	h := newHandlerWithMessages(t, &mockMessageService{})
	req := authedRequest(t, http.MethodGet, "/api/messages/?since_id=abc", nil, 9)
	rec := httptest.NewRecorder()

	h.getInbox(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestGetInbox_NoUserIDInContext verifies the 401 guard.
func TestGetInbox_NoUserIDInContext(t *testing.T) {
	h := newHandlerWithMessages(t, &mockMessageService{})
	req := httptest.NewRequest(http.MethodGet, "/api/messages/", nil)
	rec := httptest.NewRecorder()

	h.getInbox(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestGetInbox_StorageError verifies that a storage failure maps to 500.
func TestGetInbox_StorageError(t *testing.T) {
	messages := &mockMessageService{
		getInboxFn: func(context.Context, int64, int64) ([]models.Message, error) {
			return nil, store.ErrScanningRows
		},
	}

	h := newHandlerWithMessages(t, messages)
	req := authedRequest(t, http.MethodGet, "/api/messages/", nil, 9)
	rec := httptest.NewRecorder()

	h.getInbox(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// getConversations
// ─────────────────────────────────────────────

// TestGetConversations_Success verifies that conversation summaries are
// returned with 200 OK.
func TestGetConversations_Success(t *testing.T) {
	messages := &mockMessageService{
		getConversationsFn: func(_ context.Context, userID int64) ([]models.Conversation, error) {
			assert.Equal(t, int64(9), userID)
			return []models.Conversation{
				{CounterpartyID: 10, CounterpartyName: "Bob", LastMessage: "see you", UnreadCount: 2},
				{CounterpartyID: 12, CounterpartyName: "Carol", LastMessage: "thanks!", UnreadCount: 0},
			}, nil
		},
	}

	h := newHandlerWithMessages(t, messages)
	req := authedRequest(t, http.MethodGet, "/api/messages/conversations", nil, 9)
	rec := httptest.NewRecorder()

	h.getConversations(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var conversations []models.Conversation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&conversations))
	require.Len(t, conversations, 2)
	assert.Equal(t, "Bob", conversations[0].CounterpartyName)
	assert.Equal(t, int64(2), conversations[0].UnreadCount)
}

// TestGetConversations_NoUserIDInContext verifies the 401 guard.
func TestGetConversations_NoUserIDInContext(t *testing.T) {
	h := newHandlerWithMessages(t, &mockMessageService{})
	req := httptest.NewRequest(http.MethodGet, "/api/messages/conversations", nil)
	rec := httptest.NewRecorder()

	h.getConversations(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestGetConversations_StorageError verifies that a storage failure maps
// to 500.
func TestGetConversations_StorageError(t *testing.T) {
	messages := &mockMessageService{
		getConversationsFn: func(context.Context, int64) ([]models.Conversation, error) {
			return nil, store.ErrExecutingQuery
		},
	}

	h := newHandlerWithMessages(t, messages)
	req := authedRequest(t, http.MethodGet, "/api/messages/conversations", nil, 9)
	rec := httptest.NewRecorder()

	h.getConversations(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// markThreadRead
// ─────────────────────────────────────────────

// TestMarkThreadRead_Success verifies that acknowledging a thread reports the
// number of messages that flipped to read.
func TestMarkThreadRead_Success(t *testing.T) {
	messages := &mockMessageService{
		markThreadReadFn: func(_ context.Context, userID, counterpartyID int64) (int64, error) {
			assert.Equal(t, int64(9), userID)
			assert.Equal(t, int64(10), counterpartyID)
			return 3, nil
		},
	}

	h := newHandlerWithMessages(t, messages)
	body := jsonBody(t, models.MarkReadRequest{CounterpartyID: 10})
	req := authedRequest(t, http.MethodPost, "/api/messages/read", strings.NewReader(body), 9)
	rec := httptest.NewRecorder()

	h.markThreadRead(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MarkReadResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(3), resp.MarkedRead)
}

// TestMarkThreadRead_AlreadyRead verifies that re-acknowledging an already
// read thread succeeds with a zero count.
func TestMarkThreadRead_AlreadyRead(t *testing.T) {
	messages := &mockMessageService{
		markThreadReadFn: func(context.Context, int64, int64) (int64, error) {
			return 0, nil
		},
	}

	h := newHandlerWithMessages(t, messages)
	body := jsonBody(t, models.MarkReadRequest{CounterpartyID: 10})
	req := authedRequest(t, http.MethodPost, "/api/messages/read", strings.NewReader(body), 9)
	rec := httptest.NewRecorder()

	h.markThreadRead(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MarkReadResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Zero(t, resp.MarkedRead)
}

// TestMarkThreadRead_InvalidJSON verifies that a malformed body is rejected
// with 400.
func TestMarkThreadRead_InvalidJSON(t *testing.T) {
	h := newHandlerWithMessages(t, &mockMessageService{})
	req := authedRequest(t, http.MethodPost, "/api/messages/read", strings.NewReader("{not json"), 9)
	rec := httptest.NewRecorder()

	h.markThreadRead(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestMarkThreadRead_NoUserIDInContext verifies the 401 guard.
func TestMarkThreadRead_NoUserIDInContext(t *testing.T) {
	h := newHandlerWithMessages(t, &mockMessageService{})
	body := jsonBody(t, models.MarkReadRequest{CounterpartyID: 10})
	req := httptest.NewRequest(http.MethodPost, "/api/messages/read", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.markThreadRead(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestMarkThreadRead_ValidationError verifies that a wrapped
// service.ErrInvalidDataProvided maps to 400.
func TestMarkThreadRead_ValidationError(t *testing.T) {
	messages := &mockMessageService{
		markThreadReadFn: func(context.Context, int64, int64) (int64, error) {
			return 0, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidCounterparty)
		},
	}

	h := newHandlerWithMessages(t, messages)
	body := jsonBody(t, models.MarkReadRequest{})
	req := authedRequest(t, http.MethodPost, "/api/messages/read", strings.NewReader(body), 9)
	rec := httptest.NewRecorder()

	h.markThreadRead(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
