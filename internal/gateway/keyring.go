package gateway

import (
	"github.com/SergeyBogomolovv/payment-service/internal/config"
	"github.com/SergeyBogomolovv/payment-service/internal/entities"
)

type Credential struct {
	SecretKey      string
	PublishableKey string
}

// Keyring selects API credentials per currency. Each half of a pair falls
// back to the default pair when the currency has no key of its own.
type Keyring struct {
	Default    Credential
	ByCurrency map[entities.Currency]Credential
}

func NewKeyring(cfg config.Stripe) Keyring {
	k := Keyring{
		Default: Credential{
			SecretKey:      cfg.Default.SecretKey,
			PublishableKey: cfg.Default.PublishableKey,
		},
		ByCurrency: make(map[entities.Currency]Credential, len(cfg.ByCurrency)),
	}
	for cur, keys := range cfg.ByCurrency {
		k.ByCurrency[entities.Currency(cur)] = Credential{
			SecretKey:      keys.SecretKey,
			PublishableKey: keys.PublishableKey,
		}
	}
	return k
}

// Resolve returns entities.ErrMissingCredential when no secret key is known
// for the currency.
func (k Keyring) Resolve(currency entities.Currency) (Credential, error) {
	cred := k.ByCurrency[currency]
	if cred.SecretKey == "" {
		cred.SecretKey = k.Default.SecretKey
	}
	if cred.PublishableKey == "" {
		cred.PublishableKey = k.Default.PublishableKey
	}
	if cred.SecretKey == "" {
		return Credential{}, entities.ErrMissingCredential
	}
	return cred, nil
}

func (k Keyring) PublishableKey(currency entities.Currency) string {
	if key := k.ByCurrency[currency].PublishableKey; key != "" {
		return key
	}
	return k.Default.PublishableKey
}
