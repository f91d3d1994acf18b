// Package session persists the per-session key-value state that must
// survive a restart: auth token, phone number, user id, cached profile,
// dark-mode preference and the local order history mirror.
package session

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"github.com/NAdun-bit/rasa-storefront-api/config"
	"github.com/NAdun-bit/rasa-storefront-api/models"
)

// String-keyed slots, one value each.
const (
	KeyAuthToken   = "authToken"
	KeyPhoneNumber = "phoneNumber"
	KeyUserID      = "userId"
	KeyUserData    = "userData"
	KeyDarkMode    = "darkMode"
	KeyUserOrders  = "userOrders"
)

// Store is the raw string-keyed backend. Get returns "" for absent keys.
type Store interface {
	Get(ctx context.Context, sessionID, key string) (string, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID string, keys ...string) error
}

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	return &RedisStore{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func redisKey(sessionID, key string) string {
	return "session:" + sessionID + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	value, err := s.rdb.Get(ctx, redisKey(sessionID, key)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return value, err
}

func (s *RedisStore) Set(ctx context.Context, sessionID, key, value string) error {
	return s.rdb.Set(ctx, redisKey(sessionID, key), value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string, keys ...string) error {
	fullKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		fullKeys = append(fullKeys, redisKey(sessionID, key))
	}
	return s.rdb.Del(ctx, fullKeys...).Err()
}

// Sessions layers the typed slots over a raw Store.
type Sessions struct {
	store Store
}

func NewSessions(store Store) *Sessions {
	return &Sessions{store: store}
}

// SaveAuth records the verified token and phone number.
func (s *Sessions) SaveAuth(ctx context.Context, sessionID, token, phoneNumber string) error {
	if err := s.store.Set(ctx, sessionID, KeyAuthToken, token); err != nil {
		return err
	}
	return s.store.Set(ctx, sessionID, KeyPhoneNumber, phoneNumber)
}

func (s *Sessions) AuthToken(ctx context.Context, sessionID string) (string, error) {
	return s.store.Get(ctx, sessionID, KeyAuthToken)
}

func (s *Sessions) PhoneNumber(ctx context.Context, sessionID string) (string, error) {
	return s.store.Get(ctx, sessionID, KeyPhoneNumber)
}

func (s *Sessions) SaveUserID(ctx context.Context, sessionID, userID string) error {
	return s.store.Set(ctx, sessionID, KeyUserID, userID)
}

func (s *Sessions) UserID(ctx context.Context, sessionID string) (string, error) {
	return s.store.Get(ctx, sessionID, KeyUserID)
}

// SaveUserData overwrites the cached profile; fetch-overwrite is the only
// invalidation strategy.
func (s *Sessions) SaveUserData(ctx context.Context, sessionID string, profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, sessionID, KeyUserData, string(data))
}

func (s *Sessions) UserData(ctx context.Context, sessionID string) (models.UserProfile, error) {
	raw, err := s.store.Get(ctx, sessionID, KeyUserData)
	if err != nil || raw == "" {
		return models.UserProfile{}, err
	}
	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return models.UserProfile{}, nil
	}
	return profile, nil
}

func (s *Sessions) SetDarkMode(ctx context.Context, sessionID string, enabled bool) error {
	data, _ := json.Marshal(enabled)
	return s.store.Set(ctx, sessionID, KeyDarkMode, string(data))
}

func (s *Sessions) DarkMode(ctx context.Context, sessionID string) (bool, error) {
	raw, err := s.store.Get(ctx, sessionID, KeyDarkMode)
	if err != nil || raw == "" {
		return false, err
	}
	var enabled bool
	if err := json.Unmarshal([]byte(raw), &enabled); err != nil {
		return false, nil
	}
	return enabled, nil
}

// PrependOrder mirrors a submitted order into the durable history,
// most-recent-first. The list grows without bound.
func (s *Sessions) PrependOrder(ctx context.Context, sessionID string, order models.SubmittedOrder) error {
	orders, err := s.Orders(ctx, sessionID)
	if err != nil {
		return err
	}
	orders = append([]models.SubmittedOrder{order}, orders...)
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, sessionID, KeyUserOrders, string(data))
}

func (s *Sessions) Orders(ctx context.Context, sessionID string) ([]models.SubmittedOrder, error) {
	raw, err := s.store.Get(ctx, sessionID, KeyUserOrders)
	if err != nil || raw == "" {
		return nil, err
	}
	var orders []models.SubmittedOrder
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, nil
	}
	return orders, nil
}

// ClearAuth tears down the auth slots on logout. Dark mode and order
// history survive.
func (s *Sessions) ClearAuth(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID, KeyAuthToken, KeyPhoneNumber, KeyUserID, KeyUserData)
}
