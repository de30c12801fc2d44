package domain

import (
	"context"
	"encoding/json"
)

// SettingRepository stores keyed JSON settings. Upsert inserts or
// replaces the value for key.
type SettingRepository interface {
	Get(ctx context.Context, key string) (*Setting, error)
	List(ctx context.Context) ([]*Setting, error)
	Upsert(ctx context.Context, key string, value json.RawMessage) error
}
