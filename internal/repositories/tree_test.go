package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/treeseverywhere/api/internal/models"
)

func TestTreeRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTreeWriteRepository(db, nil)
	readRepo := NewTreeReadRepository(db)
	ctx := context.Background()

	olive := models.TreeDB{TreeID: uuid.New(), Name: "Olive", ScientificName: "Olea europaea"}
	err := writeRepo.Save(ctx, olive)
	assert.NoError(t, err)

	t.Run("GetByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, olive.TreeID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "Olea europaea", got.ScientificName)
	})

	t.Run("GetByNames matches on either name", func(t *testing.T) {
		got, err := readRepo.GetByNames(ctx, "Olive", "other")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, olive.TreeID, got.TreeID)

		got, err = readRepo.GetByNames(ctx, "other", "Olea europaea")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, olive.TreeID, got.TreeID)

		got, err = readRepo.GetByNames(ctx, "Fig", "Ficus carica")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate common name rejected", func(t *testing.T) {
		err := writeRepo.Save(ctx, models.TreeDB{TreeID: uuid.New(), Name: "Olive", ScientificName: "Olea oleaster"})
		assert.Error(t, err)
	})

	t.Run("duplicate scientific name rejected", func(t *testing.T) {
		err := writeRepo.Save(ctx, models.TreeDB{TreeID: uuid.New(), Name: "Wild Olive", ScientificName: "Olea europaea"})
		assert.Error(t, err)
	})
}

func TestTreeWriteRepository_UpdateAndDelete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTreeWriteRepository(db, nil)
	readRepo := NewTreeReadRepository(db)
	ctx := context.Background()

	treeID := seedTree(t, db, "Olive", "Olea europaea")

	t.Run("Update renames the species", func(t *testing.T) {
		rows, err := writeRepo.Update(ctx, models.TreeDB{TreeID: treeID, Name: "European Olive", ScientificName: "Olea europaea"})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		got, err := readRepo.GetByID(ctx, treeID)
		assert.NoError(t, err)
		assert.Equal(t, "European Olive", got.Name)
	})

	t.Run("Delete removes the species", func(t *testing.T) {
		rows, err := writeRepo.Delete(ctx, treeID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		rows, err = writeRepo.Delete(ctx, treeID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})
}
