package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/matzehuels/pinout/pkg/errors"
)

// hashKey returns prefix:sha256(json(parts)). It fails when parts cannot be
// encoded, so distinct inputs never collapse onto one key.
func hashKey(prefix string, parts ...any) (string, error) {
	data, err := json.Marshal(parts)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "encode cache key")
	}
	return prefix + ":" + Hash(data), nil
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
