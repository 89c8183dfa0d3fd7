package service

import (
	"context"
	"fmt"

	"github.com/lushkiwi/UT-Marketplace/internal/adapter"
	"github.com/lushkiwi/UT-Marketplace/internal/crypto"
	"github.com/lushkiwi/UT-Marketplace/internal/session"
	"github.com/lushkiwi/UT-Marketplace/internal/store"
	"github.com/lushkiwi/UT-Marketplace/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	codec      crypto.KeyCodec
	vault      crypto.PrivateKeyVault
	keys       *session.KeyCache
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, codec crypto.KeyCodec, vault crypto.PrivateKeyVault, keys *session.KeyCache) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, codec: codec, vault: vault, keys: keys}
}

func (a *clientAuthService) Register(ctx context.Context, login, name, password string) (models.ClientSession, error) {
	pair, err := a.codec.Generate()
	if err != nil {
		return models.ClientSession{}, fmt.Errorf("generate key pair: %w", err)
	}

	// The private key leaves this function only inside the protected blob.
	blob, err := a.vault.Protect(pair.PrivateKey, password)
	if err != nil {
		return models.ClientSession{}, fmt.Errorf("protect private key: %w", err)
	}

	account, err := a.adapter.Register(ctx, models.RegisterRequest{
		Login:               login,
		Name:                name,
		Password:            password,
		PublicKey:           pair.PublicKey,
		EncryptedPrivateKey: blob,
	})
	if err != nil {
		return models.ClientSession{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	if err := a.keys.Load(pair.PublicKey, pair.PrivateKey); err != nil {
		return models.ClientSession{}, fmt.Errorf("load session keys: %w", err)
	}

	return a.installSession(ctx, account, login)
}

func (a *clientAuthService) Login(ctx context.Context, login, password string) (models.ClientSession, error) {
	account, err := a.adapter.Login(ctx, models.User{Login: login, Password: password})
	if err != nil {
		return models.ClientSession{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	if account.KeyRecord == nil {
		// Account predates encrypted messaging: nothing to unlock. Any keys
		// left over from a previous login must not leak into this session.
		a.keys.Clear()
		return a.installSession(ctx, account, login)
	}

	privateKey, err := a.vault.Open(account.KeyRecord.EncryptedPrivateKey, password)
	if err != nil {
		return models.ClientSession{}, fmt.Errorf("open private key blob: %w", err)
	}
	if err := a.keys.Load(account.KeyRecord.PublicKey, privateKey); err != nil {
		return models.ClientSession{}, fmt.Errorf("load session keys: %w", err)
	}

	return a.installSession(ctx, account, login)
}

func (a *clientAuthService) Unlock(ctx context.Context, password string) (models.ClientSession, error) {
	sess, err := a.localStore.SessionRepository.GetSession(ctx)
	if err != nil {
		return models.ClientSession{}, fmt.Errorf("read stored session: %w", err)
	}
	if sess == nil {
		return models.ClientSession{}, ErrNoStoredSession
	}

	a.adapter.SetToken(sess.Token)

	record, err := a.adapter.GetKeyRecord(ctx, sess.UserID)
	if err != nil {
		return models.ClientSession{}, fmt.Errorf("fetch key record: %w", mapAdapterError(err))
	}
	if record == nil {
		a.keys.Clear()
		return *sess, nil
	}

	privateKey, err := a.vault.Open(record.EncryptedPrivateKey, password)
	if err != nil {
		return models.ClientSession{}, fmt.Errorf("open private key blob: %w", err)
	}
	if err := a.keys.Load(record.PublicKey, privateKey); err != nil {
		return models.ClientSession{}, fmt.Errorf("load session keys: %w", err)
	}

	return *sess, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	// Key material goes first so it is gone even when storage cleanup fails.
	a.keys.Clear()
	a.adapter.SetToken("")

	if err := a.localStore.SessionRepository.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete stored session: %w", err)
	}
	if err := a.localStore.MessageCacheRepository.Clear(ctx); err != nil {
		return fmt.Errorf("clear message cache: %w", err)
	}

	return nil
}

func (a *clientAuthService) CurrentSession(ctx context.Context) (*models.ClientSession, error) {
	return a.localStore.SessionRepository.GetSession(ctx)
}

// installSession persists the freshly authenticated session. The message
// cache survives only a re-login into the same account; switching accounts
// resets it together with the inbox watermark.
func (a *clientAuthService) installSession(ctx context.Context, account models.LoginResponse, login string) (models.ClientSession, error) {
	prev, err := a.localStore.SessionRepository.GetSession(ctx)
	if err != nil {
		return models.ClientSession{}, fmt.Errorf("read previous session: %w", err)
	}

	sameAccount := prev != nil && prev.UserID == account.UserID
	if !sameAccount {
		if err := a.localStore.MessageCacheRepository.Clear(ctx); err != nil {
			return models.ClientSession{}, fmt.Errorf("reset message cache: %w", err)
		}
	}

	sess := models.ClientSession{
		UserID: account.UserID,
		Login:  login,
		Name:   account.Name,
		Token:  a.adapter.Token(),
	}
	if sameAccount {
		sess.LastMessageID = prev.LastMessageID
	}

	if err := a.localStore.SessionRepository.SaveSession(ctx, sess); err != nil {
		return models.ClientSession{}, fmt.Errorf("persist session: %w", err)
	}

	return sess, nil
}
