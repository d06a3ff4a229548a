package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/slotbook/slotbook-sdk-go/slotbook/types"
)

// UserRecord is one entry of a bulk import file.
type UserRecord struct {
	ExternalID string `yaml:"external_id"`
	Email      string `yaml:"email"`
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
}

type importFile struct {
	Users []UserRecord `yaml:"users"`
}

// ParseUsers decodes an import file of the form
//
//	users:
//	  - external_id: member-1042
//	    email: ada@example.com
//	    first_name: Ada
//
// Records without an external_id get a random UUID.
func ParseUsers(r io.Reader) ([]UserRecord, error) {
	var f importFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing import file: %w", err)
	}

	for i := range f.Users {
		if f.Users[i].ExternalID == "" {
			f.Users[i].ExternalID = uuid.NewString()
		}
	}
	return f.Users, nil
}

// Request converts the record to a registration request.
func (u UserRecord) Request() *types.RegisterUserRequest {
	return &types.RegisterUserRequest{
		ExternalID: u.ExternalID,
		Email:      openapi_types.Email(u.Email),
		FirstName:  u.FirstName,
		LastName:   u.LastName,
	}
}

// EnsureFunc registers a user unless it already exists.
type EnsureFunc func(ctx context.Context, req *types.RegisterUserRequest) (*types.UserMapping, error)

// ImportResult is the outcome of one record.
type ImportResult struct {
	ExternalID string             `json:"external_id"`
	Mapping    *types.UserMapping `json:"mapping,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// Importer registers users with bounded concurrency and a request rate limit.
type Importer struct {
	ensure      EnsureFunc
	limiter     *rate.Limiter
	concurrency int
	logger      zerolog.Logger
}

// NewImporter creates an Importer from cfg.
func NewImporter(ensure EnsureFunc, cfg ImportConfig, logger zerolog.Logger) *Importer {
	return &Importer{
		ensure:      ensure,
		limiter:     rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		concurrency: cfg.Concurrency,
		logger:      logger,
	}
}

// Run imports records. A failed record is reported in its result and does
// not stop the others; only context cancellation aborts the run. Each
// goroutine writes its own slot of the result slice, so results keep the
// order of records.
func (im *Importer) Run(ctx context.Context, records []UserRecord) ([]ImportResult, error) {
	results := make([]ImportResult, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(im.concurrency)

	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			if err := im.limiter.Wait(ctx); err != nil {
				return err
			}

			mapping, err := im.ensure(ctx, rec.Request())
			results[i] = ImportResult{ExternalID: rec.ExternalID, Mapping: mapping}
			if err != nil {
				results[i].Error = err.Error()
				im.logger.Warn().Err(err).Str("external_id", rec.ExternalID).Msg("Failed to import user")
				return nil
			}
			im.logger.Debug().Str("external_id", rec.ExternalID).Msg("Imported user")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
