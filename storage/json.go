package storage

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// Load reads the JSON document under key into a value of type T. A missing
// entry, an unreadable store, or corrupt JSON all degrade to fallback; the
// latter two are logged but never propagated.
func Load[T any](kv KV, log *zap.Logger, key string, fallback T) T {
	raw, err := kv.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn("storage read failed, using fallback", zap.String("key", key), zap.Error(err))
		}
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn("corrupt stored document, using fallback", zap.String("key", key), zap.Error(err))
		return fallback
	}
	return v
}

// Save serializes v and rewrites the full document under key.
func Save(kv KV, log *zap.Logger, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Error("marshal for storage failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := kv.Set(key, raw); err != nil {
		log.Error("storage write failed", zap.String("key", key), zap.Error(err))
	}
}
