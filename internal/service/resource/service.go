package resource

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository/kvstore"
	apperrors "github.com/medicore/hospital-api/pkg/errors"
)

// Descriptor names a resource collection and its key namespace.
type Descriptor struct {
	Name   string
	Prefix string
}

// The five resource collections.
var (
	Patients     = Descriptor{Name: "Patient", Prefix: "patient:"}
	Appointments = Descriptor{Name: "Appointment", Prefix: "appointment:"}
	Doctors      = Descriptor{Name: "Doctor", Prefix: "doctor:"}
	Departments  = Descriptor{Name: "Department", Prefix: "department:"}
	Services     = Descriptor{Name: "Service", Prefix: "service:"}
)

// Service implements the shared record lifecycle for one resource
// collection: server-assigned ids and timestamps on create, shallow-merge
// on update with id and createdAt preserved, hard delete.
type Service struct {
	store kvstore.Store
	desc  Descriptor
	now   func() time.Time
}

func NewService(store kvstore.Store, desc Descriptor) *Service {
	return &Service{
		store: store,
		desc:  desc,
		now:   time.Now,
	}
}

func (s *Service) Name() string { return s.desc.Name }

func (s *Service) List(ctx context.Context) ([]model.Record, error) {
	records, err := s.store.GetByPrefix(ctx, s.desc.Prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", s.desc.Name, err)
	}
	return records, nil
}

func (s *Service) Get(ctx context.Context, id string) (model.Record, error) {
	rec, err := s.store.Get(ctx, s.desc.Prefix+id)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, apperrors.NotFound(s.desc.Name, err)
		}
		return nil, fmt.Errorf("failed to get %s: %w", s.desc.Name, err)
	}
	return rec, nil
}

// Create persists the body under a fresh id. A caller-supplied id field
// wins over the generated one; seed data relies on that to keep stable ids.
// An id collision silently overwrites.
func (s *Service) Create(ctx context.Context, body model.Record) (model.Record, error) {
	now := s.now().UTC()

	rec := body.Clone()
	if rec.ID() == "" {
		rec[model.FieldID] = newID(now)
	}
	ts := now.Format(time.RFC3339Nano)
	rec[model.FieldCreatedAt] = ts
	rec[model.FieldUpdatedAt] = ts

	if err := s.store.Set(ctx, s.desc.Prefix+rec.ID(), rec); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", s.desc.Name, err)
	}
	return rec, nil
}

// Update shallow-merges body over the stored record. The id and createdAt
// fields are preserved no matter what the body says; updatedAt is
// refreshed. Concurrent updates are last-write-wins.
func (s *Service) Update(ctx context.Context, id string, body model.Record) (model.Record, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := existing.Clone()
	for k, v := range body {
		rec[k] = v
	}
	rec[model.FieldID] = id
	rec[model.FieldCreatedAt] = existing[model.FieldCreatedAt]
	rec[model.FieldUpdatedAt] = s.now().UTC().Format(time.RFC3339Nano)

	if err := s.store.Set(ctx, s.desc.Prefix+id, rec); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", s.desc.Name, err)
	}
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, s.desc.Prefix+id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.desc.Name, err)
	}
	return nil
}

// ListByDepartment filters the namespace by exact, case-sensitive equality
// of the department field.
func (s *Service) ListByDepartment(ctx context.Context, department string) ([]model.Record, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if rec.StringField("department") == department {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newID builds a timestamp-plus-random-suffix id. There is no collision
// check; two ids generated in the same millisecond still differ in the
// suffix with overwhelming probability.
func newID(now time.Time) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}
