// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lushkiwi/UT-Marketplace/internal/app"
	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/internal/service"
	"github.com/lushkiwi/UT-Marketplace/internal/store"
	"github.com/lushkiwi/UT-Marketplace/internal/utils"
	"github.com/lushkiwi/UT-Marketplace/models"
)

// sendMessage persists one message. The sender is always the authenticated
// user; the body carries it to a receiver verbatim, whether ciphertext or
// plaintext.
func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	senderID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.sendMessage").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.sendMessage").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	message, err := h.services.MessageService.SendMessage(ctx, senderID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrMessageNotSaved):
			log.Err(err).Msg("receiver does not exist")
			http.Error(w, app.MsgUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.sendMessage").Msg("error sending message")
			http.Error(w, "error sending message", statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, message, http.StatusCreated)
}

// getThread serves the full two-party history between the authenticated user
// and {counterpartyID}, oldest first. The optional listing_id query parameter
// narrows the thread to a single listing.
func (h *Handler) getThread(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getThread").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	counterpartyID, err := strconv.ParseInt(chi.URLParam(r, "counterpartyID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getThread").Msg("invalid counterparty ID in path")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var listingID *int64
	if raw := r.URL.Query().Get("listing_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Err(err).Str("func", "*Handler.getThread").Msg("invalid listing_id query parameter")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		listingID = &parsed
	}

	messages, err := h.services.MessageService.GetThread(ctx, userID, counterpartyID, listingID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getThread").Msg("error getting thread")
		http.Error(w, "error getting thread", statusFromError(err))
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

// getInbox serves every message addressed to the authenticated user with an
// id greater than since_id. Clients poll it to advance their local watermark.
func (h *Handler) getInbox(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getInbox").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var sinceID int64
	if raw := r.URL.Query().Get("since_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Err(err).Str("func", "*Handler.getInbox").Msg("invalid since_id query parameter")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		sinceID = parsed
	}

	messages, err := h.services.MessageService.GetInbox(ctx, userID, sinceID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getInbox").Msg("error getting inbox")
		http.Error(w, "error getting inbox", statusFromError(err))
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

// getConversations serves one summary row per distinct counterparty of the
// authenticated user, newest activity first.
func (h *Handler) getConversations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getConversations").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	conversations, err := h.services.MessageService.GetConversations(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getConversations").Msg("error getting conversations")
		http.Error(w, "error getting conversations", statusFromError(err))
		return
	}

	utils.WriteJSON(w, conversations, http.StatusOK)
}

// markThreadRead flags every unread message from the given counterparty to
// the authenticated user as read and reports how many actually flipped.
func (h *Handler) markThreadRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.markThreadRead").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var req models.MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.markThreadRead").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	markedRead, err := h.services.MessageService.MarkThreadRead(ctx, userID, req.CounterpartyID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.markThreadRead").Msg("error marking thread read")
		http.Error(w, "error marking thread read", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MarkReadResponse{MarkedRead: markedRead}, http.StatusOK)
}
