package builder

import (
	"errors"
	"fmt"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
)

// ErrConfig is the sentinel wrapped by every ConfigError.
var ErrConfig = errors.New("configuration error")

// ConfigError rejects one user-supplied item. The item produces no channel.
type ConfigError struct {
	Category model.Category `json:"category"`
	Item     string         `json:"item"`
	Field    string         `json:"field,omitempty"`
	Value    string         `json:"value,omitempty"`
	Reason   string         `json:"reason"`
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s %q: %s", e.Category, e.Item, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s %q: %s", e.Category, e.Item, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

func reject(c model.Category, item, field, value string, err error) *ConfigError {
	return &ConfigError{Category: c, Item: item, Field: field, Value: value, Reason: err.Error()}
}
