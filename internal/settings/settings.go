// Package settings reads the editor-managed generation settings file.
//
// The file is re-read on every Load so that a generation request always sees
// the settings as they are at call time.
package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/phrazzld/metadesc-api/internal/domain"
	"github.com/phrazzld/metadesc-api/internal/platform/logger"
	"github.com/spf13/viper"
)

// Keys of the settings file.
const (
	KeyEnabled         = "enabled"
	KeyDefaultProvider = "default_provider"
	KeyPersona         = "persona"
	KeyEnabledBundles  = "enabled_bundles"
)

// Loader returns the current generation settings.
type Loader interface {
	Load(ctx context.Context) (domain.GenerationSettings, error)
}

// Store loads generation settings from a YAML (or JSON/TOML) file.
// Every Load performs its own read; results are never shared between calls.
type Store struct {
	path   string
	logger *slog.Logger
}

var _ Loader = (*Store)(nil)

// NewStore creates a Store for the file at path. If logger is nil, the
// default logger is used.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		path:   path,
		logger: logger.With(slog.String("component", "settings_store")),
	}
}

// Load reads the settings file. A missing file yields the zero settings,
// which leave generation disabled.
func (s *Store) Load(ctx context.Context) (domain.GenerationSettings, error) {
	if err := ctx.Err(); err != nil {
		return domain.GenerationSettings{}, err
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	return s.read(log)
}

// read parses the settings file.
func (s *Store) read(log *slog.Logger) (domain.GenerationSettings, error) {
	v := viper.New()
	v.SetDefault(KeyEnabled, false)
	v.SetDefault(KeyDefaultProvider, "")
	v.SetDefault(KeyPersona, "")
	v.SetDefault(KeyEnabledBundles, []string{})
	v.SetConfigFile(s.path)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Error("failed to read settings file",
				slog.String("path", s.path),
				slog.String("error", err.Error()))
			return domain.GenerationSettings{}, fmt.Errorf("error reading settings file %s: %w", s.path, err)
		}
		log.Debug("settings file not found, using defaults", slog.String("path", s.path))
	}

	var settings domain.GenerationSettings
	if err := v.Unmarshal(&settings); err != nil {
		return domain.GenerationSettings{}, fmt.Errorf("error unmarshalling settings: %w", err)
	}

	settings.DefaultProvider = strings.TrimSpace(settings.DefaultProvider)
	settings.EnabledBundles = normalizeBundles(settings.EnabledBundles)

	return settings, nil
}

// normalizeBundles drops blank entries and duplicates while keeping order.
func normalizeBundles(bundles []string) []string {
	out := make([]string, 0, len(bundles))
	seen := make(map[string]struct{}, len(bundles))
	for _, b := range bundles {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		if _, dup := seen[b]; dup {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out
}
