package repositoryImp

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrisense/database"
	"agrisense/entities"
	"agrisense/pkg/farm/repository"
)

func newRepo(t *testing.T) repository.FarmRepository {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return New(db)
}

func TestCreateAndFind(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	f := &entities.Farm{
		FarmID:  "farm-1",
		OwnerID: "U_1",
		Name:    "North plot",
		IrrigationZones: []entities.IrrigationZone{
			{ZoneID: "z1", Name: "Zone A", CropType: "Onion", AreaAcres: 1.5},
		},
	}
	require.NoError(t, r.Create(ctx, f))

	got, err := r.FindByID(ctx, "farm-1")
	require.NoError(t, err)
	assert.Equal(t, "North plot", got.Name)
	require.Len(t, got.IrrigationZones, 1)
	assert.Equal(t, "Onion", got.IrrigationZones[0].CropType)

	_, err = r.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListByOwner(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	require.NoError(t, r.Create(ctx, &entities.Farm{FarmID: "a", OwnerID: "U_1"}))
	require.NoError(t, r.Create(ctx, &entities.Farm{FarmID: "b", OwnerID: "U_2"}))
	require.NoError(t, r.Create(ctx, &entities.Farm{FarmID: "c", OwnerID: "U_1"}))

	got, err := r.ListByOwner(ctx, "U_1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.ElementsMatch(t, []string{"a", "c"}, []string{got[0].FarmID, got[1].FarmID})
}

func TestAddGreenPoints(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	require.NoError(t, r.Create(ctx, &entities.Farm{FarmID: "farm-1", GreenPoints: 10}))

	total, err := r.AddGreenPoints(ctx, "farm-1", 5)
	require.NoError(t, err)
	assert.Equal(t, 15, total)

	_, err = r.AddGreenPoints(ctx, "missing", 5)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAddGreenPointsConcurrent(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	require.NoError(t, r.Create(ctx, &entities.Farm{FarmID: "farm-1"}))

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.AddGreenPoints(ctx, "farm-1", 5)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	f, err := r.FindByID(ctx, "farm-1")
	require.NoError(t, err)
	assert.Equal(t, 5*n, f.GreenPoints)
}
