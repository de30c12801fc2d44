package application

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokobajusablon/storefront/internal/settings/domain"
)

type mockSettingRepository struct {
	values map[string]json.RawMessage
}

func newMockSettingRepository() *mockSettingRepository {
	return &mockSettingRepository{values: make(map[string]json.RawMessage)}
}

func (m *mockSettingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	value, ok := m.values[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Setting{Key: key, Value: value}, nil
}

func (m *mockSettingRepository) List(ctx context.Context) ([]*domain.Setting, error) {
	var out []*domain.Setting
	for key, value := range m.values {
		out = append(out, &domain.Setting{Key: key, Value: value})
	}
	return out, nil
}

func (m *mockSettingRepository) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	m.values[key] = value
	return nil
}

func TestUpsertRejectsUnknownKey(t *testing.T) {
	repo := newMockSettingRepository()
	svc := NewSettingsService(repo)

	err := svc.Upsert(context.Background(), "shipping_rates", json.RawMessage(`{}`))

	assert.ErrorIs(t, err, domain.ErrUnknownKey)
	assert.Empty(t, repo.values)
}

func TestUpsertRejectsInvalidJSON(t *testing.T) {
	svc := NewSettingsService(newMockSettingRepository())

	err := svc.Upsert(context.Background(), domain.KeyStoreInfo, json.RawMessage(`{broken`))

	assert.Error(t, err)
}

func TestUpsertThenGet(t *testing.T) {
	svc := NewSettingsService(newMockSettingRepository())
	ctx := context.Background()

	value := json.RawMessage(`{"number":"628111222333","display":"+62 811-122-2333"}`)
	require.NoError(t, svc.Upsert(ctx, domain.KeyWhatsAppNumber, value))

	setting, err := svc.Get(ctx, domain.KeyWhatsAppNumber)
	require.NoError(t, err)
	assert.JSONEq(t, string(value), string(setting.Value))
}

func TestWhatsAppNumberTyped(t *testing.T) {
	svc := NewSettingsService(newMockSettingRepository())
	ctx := context.Background()

	require.NoError(t, svc.Upsert(ctx, domain.KeyWhatsAppNumber,
		json.RawMessage(`{"number":"628111222333","display":"+62 811"}`)))

	number, err := svc.WhatsAppNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "628111222333", number)
}

func TestWhatsAppNumberMissing(t *testing.T) {
	svc := NewSettingsService(newMockSettingRepository())

	_, err := svc.WhatsAppNumber(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWhatsAppNumberMalformed(t *testing.T) {
	repo := newMockSettingRepository()
	repo.values[domain.KeyWhatsAppNumber] = json.RawMessage(`"just a string"`)
	svc := NewSettingsService(repo)

	_, err := svc.WhatsAppNumber(context.Background())
	assert.Error(t, err)
}

func TestStoreInfoTyped(t *testing.T) {
	svc := NewSettingsService(newMockSettingRepository())
	ctx := context.Background()

	require.NoError(t, svc.Upsert(ctx, domain.KeyStoreInfo,
		json.RawMessage(`{"name":"Toko Baju Sablon","address":"Jakarta","hours":"09.00-17.00"}`)))

	info, err := svc.StoreInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Toko Baju Sablon", info.Name)
	assert.Equal(t, "09.00-17.00", info.Hours)
}

func TestSocialMediaTyped(t *testing.T) {
	svc := NewSettingsService(newMockSettingRepository())
	ctx := context.Background()

	require.NoError(t, svc.Upsert(ctx, domain.KeySocialMedia,
		json.RawMessage(`{"instagram":"@tokobaju","tiktok":"@tokobaju.id"}`)))

	social, err := svc.SocialMedia(ctx)
	require.NoError(t, err)
	assert.Equal(t, "@tokobaju", social.Instagram)
	assert.Equal(t, "@tokobaju.id", social.TikTok)
}
