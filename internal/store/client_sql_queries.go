// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

package store

const (
	// createClientSchema bootstraps the local database. SQLite schema lives
	// here rather than in the goose migrations, which are written for
	// PostgreSQL. The session table is constrained to a single row.
	createClientSchema = `
		CREATE TABLE IF NOT EXISTS session (
			id              INTEGER PRIMARY KEY CHECK (id = 1),
			user_id         INTEGER NOT NULL,
			login           TEXT    NOT NULL,
			name            TEXT    NOT NULL DEFAULT '',
			token           TEXT    NOT NULL,
			last_message_id INTEGER NOT NULL DEFAULT 0,
			updated_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS cached_messages (
			id          INTEGER PRIMARY KEY,
			sender_id   INTEGER NOT NULL,
			receiver_id INTEGER NOT NULL,
			listing_id  INTEGER,
			content     TEXT    NOT NULL,
			is_read     INTEGER NOT NULL DEFAULT 0,
			created_at  TIMESTAMP NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_cached_messages_pair
			ON cached_messages (sender_id, receiver_id, created_at);

		CREATE TABLE IF NOT EXISTS cached_contacts (
			user_id INTEGER PRIMARY KEY,
			name    TEXT NOT NULL
		);`

	saveSession = `
		INSERT INTO session (id, user_id, login, name, token, last_message_id, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			user_id         = excluded.user_id,
			login           = excluded.login,
			name            = excluded.name,
			token           = excluded.token,
			last_message_id = excluded.last_message_id,
			updated_at      = CURRENT_TIMESTAMP;`

	getSession = `
		SELECT user_id, login, name, token, last_message_id, updated_at
		FROM session
		WHERE id = 1;`

	// updateWatermark only ever moves the watermark forward; concurrent
	// refresh sweeps cannot rewind it.
	updateWatermark = `
		UPDATE session
		SET last_message_id = $1,
		    updated_at      = CURRENT_TIMESTAMP
		WHERE id = 1 AND last_message_id < $1;`

	deleteSession = `DELETE FROM session;`

	// upsertCachedMessage keeps content immutable; a re-pulled message can
	// only change its read flag.
	upsertCachedMessage = `
		INSERT INTO cached_messages (id, sender_id, receiver_id, listing_id, content, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			is_read = excluded.is_read;`

	getCachedThread = `
		SELECT id, sender_id, receiver_id, listing_id, content, is_read, created_at
		FROM cached_messages
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at, id;`

	// getCachedConversations mirrors the server conversations query on the
	// local cache so the list renders offline. Counterparty names come from
	// cached_contacts and fall back to "user <id>".
	getCachedConversations = `
		WITH pair_messages AS (
			SELECT m.id,
			       m.sender_id,
			       m.receiver_id,
			       m.listing_id,
			       m.content,
			       m.is_read,
			       m.created_at,
			       CASE WHEN m.sender_id = $1 THEN m.receiver_id ELSE m.sender_id END AS counterparty_id
			FROM cached_messages m
			WHERE m.sender_id = $1 OR m.receiver_id = $1
		),
		ranked AS (
			SELECT pm.*,
			       ROW_NUMBER() OVER (PARTITION BY counterparty_id ORDER BY created_at DESC, id DESC) AS rn
			FROM pair_messages pm
		)
		SELECT r.counterparty_id,
		       COALESCE(c.name, 'user ' || r.counterparty_id),
		       r.listing_id,
		       r.content,
		       r.created_at,
		       r.sender_id,
		       (SELECT COUNT(*)
		        FROM pair_messages u
		        WHERE u.counterparty_id = r.counterparty_id
		          AND u.receiver_id = $1
		          AND u.is_read = 0)
		FROM ranked r
		LEFT JOIN cached_contacts c ON c.user_id = r.counterparty_id
		WHERE r.rn = 1
		ORDER BY r.created_at DESC;`

	markCachedThreadRead = `
		UPDATE cached_messages
		SET is_read = 1
		WHERE receiver_id = $1 AND sender_id = $2 AND is_read = 0;`

	saveContact = `
		INSERT INTO cached_contacts (user_id, name)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			name = excluded.name;`

	clearMessageCache = `
		DELETE FROM cached_messages;
		DELETE FROM cached_contacts;`
)
