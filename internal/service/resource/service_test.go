package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository/kvstore"
	apperrors "github.com/medicore/hospital-api/pkg/errors"
)

func newTestService(desc Descriptor) *Service {
	return NewService(kvstore.NewMemoryStore(), desc)
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(Patients)

	rec, err := svc.Create(ctx, model.Record{"firstName": "Jane", "department": "Cardiology"})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID())
	assert.Equal(t, rec[model.FieldCreatedAt], rec[model.FieldUpdatedAt])
	assert.Equal(t, "Jane", rec.StringField("firstName"))
}

func TestCreateIDsUnique(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(Patients)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		rec, err := svc.Create(ctx, model.Record{"firstName": "Jane"})
		require.NoError(t, err)
		assert.False(t, seen[rec.ID()], "duplicate id %s", rec.ID())
		seen[rec.ID()] = true
	}
}

func TestCreateHonorsCallerSuppliedID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(Departments)

	rec, err := svc.Create(ctx, model.Record{"id": "cardiology", "name": "Cardiology"})
	require.NoError(t, err)
	assert.Equal(t, "cardiology", rec.ID())

	got, err := svc.Get(ctx, "cardiology")
	require.NoError(t, err)
	assert.Equal(t, "Cardiology", got.StringField("name"))
}

func TestCreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(Doctors)

	created, err := svc.Create(ctx, model.Record{"name": "Dr. Lee", "specialty": "Cardiology"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetMissingIsNotFound(t *testing.T) {
	svc := newTestService(Doctors)

	_, err := svc.Get(context.Background(), "missing")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
	assert.Equal(t, "Doctor not found", appErr.Message)
}

func TestUpdateMergesAndPreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(Patients)

	created, err := svc.Create(ctx, model.Record{"firstName": "Jane", "status": "Active"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID(), model.Record{
		"status": "Discharged",
		// Attempts to rewrite managed fields are ignored.
		"id":        "forged",
		"createdAt": "1970-01-01T00:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID(), updated.ID())
	assert.Equal(t, created[model.FieldCreatedAt], updated[model.FieldCreatedAt])
	assert.Equal(t, "Discharged", updated.StringField("status"))
	assert.Equal(t, "Jane", updated.StringField("firstName"))

	createdAt, err := time.Parse(time.RFC3339Nano, updated.StringField(model.FieldCreatedAt))
	require.NoError(t, err)
	updatedAt, err := time.Parse(time.RFC3339Nano, updated.StringField(model.FieldUpdatedAt))
	require.NoError(t, err)
	assert.True(t, updatedAt.After(createdAt), "updatedAt must advance")
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	svc := newTestService(Appointments)

	_, err := svc.Update(context.Background(), "missing", model.Record{"status": "Completed"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestUpdateLastWriteWins(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(Patients)

	created, err := svc.Create(ctx, model.Record{"status": "Active", "department": "Cardiology"})
	require.NoError(t, err)

	// Two read-modify-write updates with overlapping fields; the later
	// write's value stands without any conflict detection.
	_, err = svc.Update(ctx, created.ID(), model.Record{"status": "Under Treatment"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, created.ID(), model.Record{"status": "Discharged", "department": "Neurology"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Discharged", got.StringField("status"))
	assert.Equal(t, "Neurology", got.StringField("department"))
}

func TestDeleteThenGet(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(Services)

	created, err := svc.Create(ctx, model.Record{"title": "Emergency Care"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID()))

	_, err = svc.Get(ctx, created.ID())
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	svc := newTestService(Services)

	err := svc.Delete(context.Background(), "missing")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestListByDepartmentIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(Patients)

	for _, dep := range []string{"Cardiology", "cardiology", "Neurology", "Cardiology"} {
		_, err := svc.Create(ctx, model.Record{"department": dep})
		require.NoError(t, err)
	}

	matches, err := svc.ListByDepartment(ctx, "Cardiology")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
	for _, rec := range matches {
		assert.Equal(t, "Cardiology", rec.StringField("department"))
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(Appointments)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, model.Record{"name": "Visitor"})
		require.NoError(t, err)
	}

	records, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}
