package repository

import (
	"encoding/json"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// CacheRepository stores serialized calculation results.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// ScenarioKey derives a stable cache key from a calculation kind and its
// input. Inputs are plain value structs so their JSON form is deterministic.
func ScenarioKey(kind string, input any) (string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return kind + ":" + strconv.FormatUint(xxhash.Sum64(payload), 16), nil
}
