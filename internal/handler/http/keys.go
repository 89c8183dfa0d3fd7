// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lushkiwi/UT-Marketplace/internal/app"
	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/internal/utils"
	"github.com/lushkiwi/UT-Marketplace/models"
)

// getKeyRecord serves the full key record of a single user, protected
// private key blob included. Because of the blob the record is only served
// to its owner; peers that need someone's public key use the batch endpoint.
func (h *Handler) getKeyRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requesterID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getKeyRecord").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getKeyRecord").Msg("invalid user ID in path")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if userID != requesterID {
		log.Error().
			Int64("requester_id", requesterID).
			Int64("target_id", userID).
			Msg("attempt to read another user's key record")
		http.Error(w, app.MsgAccessDenied, http.StatusForbidden)
		return
	}

	record, err := h.services.KeyService.GetKeyRecord(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getKeyRecord").Msg("error getting key record")
		http.Error(w, "error getting key record", statusFromError(err))
		return
	}

	// Accounts created before encrypted messaging have no record.
	if record == nil {
		log.Debug().Int64("user_id", userID).Msg("no key record stored")
		http.Error(w, app.MsgKeyRecordNotFound, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

// getPublicKeys serves a batch of public keys. Users without a key record
// are silently omitted from the response map.
func (h *Handler) getPublicKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.PublicKeysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.getPublicKeys").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	keys, err := h.services.KeyService.GetPublicKeys(ctx, req.UserIDs)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPublicKeys").Msg("error getting public keys")
		http.Error(w, "error getting public keys", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.PublicKeysResponse{Keys: keys}, http.StatusOK)
}
