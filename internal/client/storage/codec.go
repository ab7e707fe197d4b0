package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// LoadList reads the blob stored under key and decodes it as a JSON array.
// An absent key yields an empty slice.
func LoadList[T any](ctx context.Context, a Adapter, key string) ([]T, error) {
	data, err := a.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []T{}, nil
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode cache[%s]: %w", key, err)
	}
	return list, nil
}

// SaveList encodes list as a JSON array and replaces the blob under key.
// The whole blob is written in one Set, so a failed write leaves the prior
// persisted state untouched.
func SaveList[T any](ctx context.Context, a Adapter, key string, list []T) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode cache[%s]: %w", key, err)
	}
	return a.Set(ctx, key, data)
}
