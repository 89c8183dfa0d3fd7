// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

package tui

import (
	"errors"
	"strings"

	"github.com/lushkiwi/UT-Marketplace/internal/crypto"
	"github.com/lushkiwi/UT-Marketplace/internal/service"
	"github.com/lushkiwi/UT-Marketplace/internal/store"
)

// humanizeAuthError turns auth-flow failures into screen text. Known
// sentinels get a specific message, everything else goes through the
// network heuristic.
func humanizeAuthError(err error) string {
	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return "Invalid login or password"
	case errors.Is(err, crypto.ErrInvalidPasswordOrCorruptBlob):
		return "Wrong password, or the stored key data is damaged"
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return "This login is already taken"
	case errors.Is(err, service.ErrNoStoredSession):
		return "No saved session on this device"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "The server rejected the submitted data"
	}
	return humanizeServerUnavailableError(err)
}

func humanizeSendError(err error) string {
	switch {
	case errors.Is(err, service.ErrSendBlocked):
		return "Not sent: could not encrypt for this recipient"
	case errors.Is(err, store.ErrNoUserWasFound):
		return "Not sent: no such user"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Not sent: the message is empty or malformed"
	}
	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network unavailable or the server cannot be reached"
	}

	return err.Error()
}
