package users

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/dmarques/skilltrack/internal/common"
	"github.com/dmarques/skilltrack/internal/filex"
	"github.com/dmarques/skilltrack/internal/logging"
	"github.com/dmarques/skilltrack/internal/models"
)

//go:embed store.schema.json
var storeSchemaJSON string

// JSONRepository implements Repository on top of one indented JSON file.
type JSONRepository struct {
	path   string
	log    logging.Logger
	schema *gojsonschema.Schema
}

// NewJSONRepository returns a repository bound to path. The embedded document
// schema is compiled once here; a compile failure is a programming error and
// is returned rather than deferred to every Load.
func NewJSONRepository(path string, log logging.Logger) (*JSONRepository, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(storeSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compile store schema: %w", err)
	}
	return &JSONRepository{path: path, log: log, schema: schema}, nil
}

// Load reads and decodes the data file. Every failure mode short of a valid
// document — missing file, unreadable file, invalid JSON, document failing
// the root schema — produces a fresh empty store.
func (r *JSONRepository) Load(ctx context.Context) *models.Store {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.log.Warn(ctx, "data file unreadable, starting empty", "path", r.path, "err", err)
		}
		return models.NewStore()
	}

	result, err := r.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		r.log.Warn(ctx, "data file is not valid JSON, starting empty", "path", r.path, "err", err)
		return models.NewStore()
	}
	if !result.Valid() {
		r.log.Warn(ctx, "data file failed schema check, starting empty",
			"path", r.path, "violations", len(result.Errors()))
		return models.NewStore()
	}

	var store models.Store
	if err := json.Unmarshal(data, &store); err != nil {
		r.log.Warn(ctx, "data file failed to decode, starting empty", "path", r.path, "err", err)
		return models.NewStore()
	}
	return &store
}

// Save serializes the whole store, indented and with non-ASCII text left
// unescaped, and replaces the file content in one step.
func (r *JSONRepository) Save(ctx context.Context, store *models.Store) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(store); err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	if err := filex.ReplaceFile(r.path, buf.Bytes()); err != nil {
		r.log.Error(ctx, "failed to write data file", "path", r.path, "err", err)
		return fmt.Errorf("%w: %w", common.ErrSaveFailed, err)
	}
	return nil
}
