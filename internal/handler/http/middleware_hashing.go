package http

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/lushkiwi/UT-Marketplace/internal/app"
	"github.com/lushkiwi/UT-Marketplace/internal/utils"
	"github.com/lushkiwi/UT-Marketplace/models"
)

// sendHashing verifies the integrity hash attached to a send-message request.
// The client computes an HMAC-SHA256 over the raw content and ships it
// hex-encoded in the hash field; the server recomputes it over the received
// content and rejects the message on mismatch. Requests without a hash pass
// through unverified, the field is optional.
func (h *Handler) sendHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Debug().Str("func", "*Handler.sendHashing").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.sendHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		// Decode JSON from []byte
		var req models.SendMessageRequest
		if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
			h.logger.Err(err).Str("func", "*Handler.sendHashing").Msg("failed to decode JSON")
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Hash == "" {
			next.ServeHTTP(w, r)
			return
		}

		// Calculate hash from content exactly as the client does
		hashedContent := hex.EncodeToString(utils.Hash([]byte(req.Content)))
		if hashedContent != req.Hash {
			h.logger.Error().Str("func", "*Handler.sendHashing").
				Str("hash from request", req.Hash).
				Str("hashed content", hashedContent).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		h.logger.Debug().Str("func", "*Handler.sendHashing").
			Str("hash from request", req.Hash).
			Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
