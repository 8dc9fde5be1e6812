package gateway_test

import (
	"testing"

	"github.com/SergeyBogomolovv/payment-service/internal/config"
	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/SergeyBogomolovv/payment-service/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyring_Resolve(t *testing.T) {
	keyring := gateway.NewKeyring(config.Stripe{
		Default: config.StripeKeys{SecretKey: "sk_default", PublishableKey: "pk_default"},
		ByCurrency: map[string]config.StripeKeys{
			"usd": {SecretKey: "sk_usd", PublishableKey: "pk_usd"},
			"eur": {SecretKey: "sk_eur"},
		},
	})

	testCases := []struct {
		name     string
		currency entities.Currency
		want     gateway.Credential
	}{
		{"own pair", entities.USD, gateway.Credential{SecretKey: "sk_usd", PublishableKey: "pk_usd"}},
		{"publishable falls back", entities.EUR, gateway.Credential{SecretKey: "sk_eur", PublishableKey: "pk_default"}},
		{"whole pair falls back", entities.RUB, gateway.Credential{SecretKey: "sk_default", PublishableKey: "pk_default"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := keyring.Resolve(tc.currency)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKeyring_MissingSecret(t *testing.T) {
	keyring := gateway.NewKeyring(config.Stripe{
		Default: config.StripeKeys{PublishableKey: "pk_default"},
		ByCurrency: map[string]config.StripeKeys{
			"usd": {SecretKey: "sk_usd"},
		},
	})

	_, err := keyring.Resolve(entities.EUR)
	assert.ErrorIs(t, err, entities.ErrMissingCredential)

	cred, err := keyring.Resolve(entities.USD)
	require.NoError(t, err)
	assert.Equal(t, "pk_default", cred.PublishableKey)

	assert.Equal(t, "pk_default", keyring.PublishableKey(entities.EUR))
}
