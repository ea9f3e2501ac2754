package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/repository"
	"github.com/osse101/Armory_Go/internal/validation"
)

//go:embed schemas/items.schema.json
var itemsSchema []byte

// SeedFile is the on-disk catalog seed format
type SeedFile struct {
	Version string        `json:"version"`
	Items   []domain.Item `json:"items"`
}

// Loader reads the seed file and inserts missing items
type Loader interface {
	Load(path string) (*SeedFile, error)
	Validate(seed *SeedFile) error
	// Seed inserts items whose code is not yet in the catalog. Existing rows are
	// never overwritten, so admin edits survive restarts.
	Seed(ctx context.Context, repo repository.Item, path string) (int, error)
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a loader with the embedded seed schema registered
func NewLoader() (Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.RegisterSchema(SchemaName, itemsSchema); err != nil {
		return nil, err
	}
	return &loader{schemaValidator: v}, nil
}

// Load reads, schema-checks and parses the seed file
func (l *loader) Load(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSeedFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaInvalidFormat, path, err)
	}

	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf(ErrMsgParseSeedFailed, err)
	}

	return &seed, nil
}

// Validate applies the rules the schema cannot express
func (l *loader) Validate(seed *SeedFile) error {
	if seed == nil {
		return fmt.Errorf("%w: seed is nil", domain.ErrInvalidInput)
	}

	seen := make(map[int]bool, len(seed.Items))
	for i, item := range seed.Items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf(ErrMsgSeedItemInvalidFmt, i, err)
		}
		if seen[item.Code] {
			return fmt.Errorf(ErrMsgDuplicateSeedCode, domain.ErrDuplicateItemCode, item.Code)
		}
		seen[item.Code] = true
	}
	return nil
}

func (l *loader) Seed(ctx context.Context, repo repository.Item, path string) (int, error) {
	log := logger.FromContext(ctx)

	seed, err := l.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn(LogMsgSeedFileAbsent, "path", path)
			return 0, nil
		}
		return 0, err
	}
	if err := l.Validate(seed); err != nil {
		return 0, err
	}
	log.Info(LogMsgSeedLoaded, "path", path, "version", seed.Version, "items", len(seed.Items))

	inserted, err := repo.SeedItems(ctx, seed.Items)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgSeedFailed, err)
	}

	log.Info(LogMsgSeedCompleted, "inserted", inserted, "skipped", len(seed.Items)-inserted)
	return inserted, nil
}
