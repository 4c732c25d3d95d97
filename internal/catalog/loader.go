package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/gildedrose"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/repository"
	"github.com/osse101/GildedRose_Go/internal/validation"
)

// Sentinel errors for catalog loader
var (
	ErrDuplicateName = errors.New("duplicate item name")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON catalog of opening stock
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []domain.Item `json:"items"`
}

// Loader handles loading and validating the catalog
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Catalog, configPath string) (*SyncResult, error)
}

// SyncResult contains the result of seeding stock from the catalog
type SyncResult struct {
	ItemsInserted int
	ItemsSkipped  int
	Unchanged     bool
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	rules           gildedrose.Rules
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
		rules:           gildedrose.DefaultRules(),
	}
}

// Load reads and parses a catalog JSON file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	// Validate against schema once the bytes are known to be JSON
	if err := l.schemaValidator.ValidateBytes(data, SchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	return &config, nil
}

// Validate checks the catalog for errors the schema cannot express
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	names := make(map[string]bool, len(config.Items))
	for i, item := range config.Items {
		if item.Name == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, i)
		}
		if names[item.Name] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateName, item.Name)
		}
		names[item.Name] = true

		if gildedrose.Classify(item.Name).IsLegendary() {
			if item.Quality != l.rules.LegendaryQuality {
				return fmt.Errorf(ErrFmtLegendaryQuality, ErrInvalidConfig, item.Name, l.rules.LegendaryQuality, item.Quality)
			}
			continue
		}
		if item.Quality < l.rules.MinQuality || item.Quality > l.rules.MaxQuality {
			return fmt.Errorf(ErrFmtQualityOutOfRange, ErrInvalidConfig, item.Name, item.Quality, l.rules.MinQuality, l.rules.MaxQuality)
		}
	}

	return nil
}

// SyncToDatabase stocks catalog items that are not yet on the shelves.
// Existing rows are never overwritten since they carry aged state.
func (l *catalogLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Catalog, configPath string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	fileHash, modTime, err := fileFingerprint(configPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckFileChangeFailed, err)
	}

	if meta, err := repo.GetSyncMetadata(ctx, domain.ConfigNameCatalog); err == nil && meta.FileHash == fileHash {
		log.Info(LogMsgConfigUnchanged, "path", configPath)
		return &SyncResult{Unchanged: true}, nil
	}

	existing, err := repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetExistingItemsFailed, err)
	}
	stocked := make(map[string]bool, len(existing))
	for _, item := range existing {
		stocked[item.Name] = true
	}

	result := &SyncResult{}
	for i := range config.Items {
		item := &config.Items[i]
		if stocked[item.Name] {
			result.ItemsSkipped++
			continue
		}

		id, err := repo.InsertItem(ctx, item)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgInsertItemFailed, item.Name, err)
		}
		result.ItemsInserted++
		log.Info(LogMsgInsertedItem, "name", item.Name, "id", id)
	}

	if err := repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   domain.ConfigNameCatalog,
		LastSyncTime: time.Now(),
		FileHash:     fileHash,
		FileModTime:  modTime,
	}); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	log.Info(LogMsgSyncCompleted,
		"inserted", result.ItemsInserted,
		"skipped", result.ItemsSkipped)

	return result, nil
}

// fileFingerprint returns the SHA-256 of the file contents and its mod time
func fileFingerprint(path string) (string, time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", time.Time{}, fmt.Errorf(ErrMsgStatConfigFileFailed, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", time.Time{}, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), info.ModTime(), nil
}
