package setting

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrNotFound = errors.New("setting not found")

// Setting is a key/value configuration row managed from the admin
// back-office. Writes are upserts keyed on the setting name.
type Setting struct {
	key       string
	value     string
	updatedAt time.Time
}

func NewSetting(key, value string) (*Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("setting key is required")
	}
	if len(key) > 100 {
		return nil, fmt.Errorf("setting key cannot exceed 100 characters")
	}

	return &Setting{
		key:       key,
		value:     value,
		updatedAt: time.Now(),
	}, nil
}

func ReconstructSetting(key, value string, updatedAt time.Time) *Setting {
	return &Setting{
		key:       key,
		value:     value,
		updatedAt: updatedAt,
	}
}

func (s *Setting) Key() string          { return s.key }
func (s *Setting) Value() string        { return s.value }
func (s *Setting) UpdatedAt() time.Time { return s.updatedAt }

func (s *Setting) UpdateValue(value string) {
	s.value = value
	s.updatedAt = time.Now()
}

func (s *Setting) IntValue(fallback int) int {
	v, err := strconv.Atoi(s.value)
	if err != nil {
		return fallback
	}
	return v
}

func (s *Setting) BoolValue(fallback bool) bool {
	v, err := strconv.ParseBool(s.value)
	if err != nil {
		return fallback
	}
	return v
}

type Repository interface {
	Upsert(ctx context.Context, setting *Setting) error
	GetByKey(ctx context.Context, key string) (*Setting, error)
	List(ctx context.Context) ([]*Setting, error)
}
