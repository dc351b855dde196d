package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/stuath/internal/domain"
)

// KVProfileRepo stores the normalized profile as one JSON document.
type KVProfileRepo struct {
	kv KVStore
}

// NewKVProfileRepo creates a ProfileRepo on top of a key-value store.
func NewKVProfileRepo(kv KVStore) *KVProfileRepo {
	return &KVProfileRepo{kv: kv}
}

func (r *KVProfileRepo) Load(ctx context.Context) (*domain.UserProfile, error) {
	raw, err := r.kv.Get(ctx, KeyUserData)
	if err != nil {
		return nil, fmt.Errorf("user profile: %w", err)
	}
	var p domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decoding user profile: %w", err)
	}
	return &p, nil
}

func (r *KVProfileRepo) Save(ctx context.Context, p *domain.UserProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding user profile: %w", err)
	}
	if err := r.kv.Set(ctx, KeyUserData, string(data)); err != nil {
		return fmt.Errorf("saving user profile: %w", err)
	}
	return nil
}

func (r *KVProfileRepo) Delete(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyUserData)
}
