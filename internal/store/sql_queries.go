package store

import (
	"context"

	"github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, name, auth_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, name, auth_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, auth_hash, created_at
    FROM users
    WHERE login = $1;`

	saveKeyRecord = `INSERT INTO user_keys (user_id, public_key, encrypted_private_key)
    VALUES ($1, $2, $3);`

	getKeyRecord = `SELECT user_id, public_key, encrypted_private_key, created_at
    FROM user_keys
    WHERE user_id = $1;`

	saveMessage = `INSERT INTO messages (sender_id, receiver_id, listing_id, content)
    VALUES ($1, $2, $3, $4)
    RETURNING id, sender_id, receiver_id, listing_id, content, is_read, created_at;`

	getInbox = `SELECT id, sender_id, receiver_id, listing_id, content, is_read, created_at
    FROM messages
    WHERE (sender_id = $1 OR receiver_id = $1) AND id > $2
    ORDER BY id;`

	markThreadRead = `UPDATE messages
    SET is_read = TRUE
    WHERE receiver_id = $1 AND sender_id = $2 AND is_read = FALSE;`

	// getConversations aggregates one summary row per counterparty: the latest
	// message in the pair plus how many messages addressed to $1 are unread.
	getConversations = `WITH pair_messages AS (
        SELECT m.id,
               m.sender_id,
               m.receiver_id,
               m.listing_id,
               m.content,
               m.is_read,
               m.created_at,
               CASE WHEN m.sender_id = $1 THEN m.receiver_id ELSE m.sender_id END AS counterparty_id
        FROM messages m
        WHERE m.sender_id = $1 OR m.receiver_id = $1
    ),
    last_messages AS (
        SELECT DISTINCT ON (counterparty_id)
               counterparty_id, listing_id, content, created_at, sender_id
        FROM pair_messages
        ORDER BY counterparty_id, created_at DESC, id DESC
    ),
    unread_counts AS (
        SELECT counterparty_id, COUNT(*) AS unread_count
        FROM pair_messages
        WHERE receiver_id = $1 AND NOT is_read
        GROUP BY counterparty_id
    )
    SELECT l.counterparty_id,
           u.name,
           l.listing_id,
           l.content,
           l.created_at,
           l.sender_id,
           COALESCE(c.unread_count, 0)
    FROM last_messages l
    JOIN users u ON u.user_id = l.counterparty_id
    LEFT JOIN unread_counts c ON c.counterparty_id = l.counterparty_id
    ORDER BY l.created_at DESC;`
)

// buildPublicKeysQuery builds the batch public-key lookup for a set of user
// IDs. Users without a key record simply produce no row; the caller is
// responsible for treating absence as "cannot encrypt for this user".
func buildPublicKeysQuery(_ context.Context, userIDs []int64) (string, []any, error) {
	return squirrel.Select("user_id", "public_key").
		From("user_keys").
		Where(squirrel.Eq{"user_id": userIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// buildThreadQuery builds the two-way thread query between userID and
// counterpartyID, ordered oldest first. A non-nil listingID narrows the
// thread to messages attached to that listing.
func buildThreadQuery(_ context.Context, userID int64, counterpartyID int64, listingID *int64) (string, []any, error) {
	builder := squirrel.Select(
		"id",
		"sender_id",
		"receiver_id",
		"listing_id",
		"content",
		"is_read",
		"created_at",
	).
		From("messages").
		Where(squirrel.Or{
			squirrel.And{squirrel.Eq{"sender_id": userID}, squirrel.Eq{"receiver_id": counterpartyID}},
			squirrel.And{squirrel.Eq{"sender_id": counterpartyID}, squirrel.Eq{"receiver_id": userID}},
		}).
		OrderBy("created_at", "id").
		PlaceholderFormat(squirrel.Dollar)

	if listingID != nil {
		builder = builder.Where(squirrel.Eq{"listing_id": *listingID})
	}

	return builder.ToSql()
}
