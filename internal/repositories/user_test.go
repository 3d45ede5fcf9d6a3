package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/treeseverywhere/api/internal/models"
)

func TestUserRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	user := models.UserDB{
		UserID:       uuid.New(),
		Username:     "zeus",
		PasswordHash: "bcrypt-hash",
		IsActive:     true,
	}

	saved, err := writeRepo.Save(ctx, user)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), saved.DateJoined, time.Minute)

	t.Run("GetByUsername", func(t *testing.T) {
		got, err := readRepo.GetByUsername(ctx, "zeus")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, user.UserID, got.UserID)
		assert.Equal(t, "bcrypt-hash", got.PasswordHash)
		assert.True(t, got.IsActive)
		assert.False(t, got.IsSuperuser)
		assert.WithinDuration(t, time.Now(), got.DateJoined, time.Minute)
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "zeus", got.Username)
	})

	t.Run("unknown user returns nil", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)

		got, err = readRepo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, models.UserDB{
			UserID:       uuid.New(),
			Username:     "zeus",
			PasswordHash: "other-hash",
		})
		assert.Error(t, err)
	})
}

func TestUserReadRepository_List(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	seedUser(t, db, "zeus")
	seedUser(t, db, "athena")
	seedUser(t, db, "hera")

	users, err := readRepo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 3)
	assert.Equal(t, "athena", users[0].Username)
	assert.Equal(t, "hera", users[1].Username)
	assert.Equal(t, "zeus", users[2].Username)
}

func TestUserRepository_Memberships(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "zeus")
	godsID := seedAccount(t, db, "Gods")
	titansID := seedAccount(t, db, "Titans")

	err := writeRepo.ReplaceAccounts(ctx, userID, []uuid.UUID{godsID, titansID})
	assert.NoError(t, err)

	t.Run("ListAccounts returns both memberships", func(t *testing.T) {
		accounts, err := readRepo.ListAccounts(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, accounts, 2)

		names := []string{accounts[0].Name, accounts[1].Name}
		assert.Contains(t, names, "Gods")
		assert.Contains(t, names, "Titans")
	})

	t.Run("IsMember", func(t *testing.T) {
		member, err := readRepo.IsMember(ctx, userID, godsID)
		assert.NoError(t, err)
		assert.True(t, member)

		member, err = readRepo.IsMember(ctx, uuid.New(), godsID)
		assert.NoError(t, err)
		assert.False(t, member)
	})

	t.Run("IsMemberOfAccountName", func(t *testing.T) {
		member, err := readRepo.IsMemberOfAccountName(ctx, userID, "Titans")
		assert.NoError(t, err)
		assert.True(t, member)

		member, err = readRepo.IsMemberOfAccountName(ctx, userID, "Mortals")
		assert.NoError(t, err)
		assert.False(t, member)
	})

	t.Run("ReplaceAccounts overwrites the set", func(t *testing.T) {
		err := writeRepo.ReplaceAccounts(ctx, userID, []uuid.UUID{titansID})
		assert.NoError(t, err)

		member, err := readRepo.IsMember(ctx, userID, godsID)
		assert.NoError(t, err)
		assert.False(t, member)

		member, err = readRepo.IsMember(ctx, userID, titansID)
		assert.NoError(t, err)
		assert.True(t, member)
	})

	t.Run("ReplaceAccounts with empty set clears memberships", func(t *testing.T) {
		err := writeRepo.ReplaceAccounts(ctx, userID, nil)
		assert.NoError(t, err)

		accounts, err := readRepo.ListAccounts(ctx, userID)
		assert.NoError(t, err)
		assert.Empty(t, accounts)
	})
}

func TestUserWriteRepository_UpdateAndDelete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "zeus")

	t.Run("Update changes mutable fields", func(t *testing.T) {
		rows, err := writeRepo.Update(ctx, models.UserDB{
			UserID:       userID,
			Username:     "jupiter",
			PasswordHash: "new-hash",
			IsActive:     true,
			IsStaff:      true,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		got, err := readRepo.GetByID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, "jupiter", got.Username)
		assert.True(t, got.IsStaff)
	})

	t.Run("Update unknown user affects no rows", func(t *testing.T) {
		rows, err := writeRepo.Update(ctx, models.UserDB{UserID: uuid.New(), Username: "ghost"})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})

	t.Run("Delete cascades to profile and memberships", func(t *testing.T) {
		accountID := seedAccount(t, db, "Gods")
		err := writeRepo.ReplaceAccounts(ctx, userID, []uuid.UUID{accountID})
		assert.NoError(t, err)

		profileRepo := NewProfileWriteRepository(db, nil)
		_, err = profileRepo.Save(ctx, models.ProfileDB{UserID: userID, About: "thunder"})
		assert.NoError(t, err)

		rows, err := writeRepo.Delete(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		got, err := readRepo.GetByID(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, got)

		profile, err := NewProfileReadRepository(db).GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, profile)

		var memberships int
		err = db.Get(&memberships, `SELECT COUNT(*) FROM account_users WHERE user_id = $1`, userID)
		assert.NoError(t, err)
		assert.Zero(t, memberships)
	})

	t.Run("Delete unknown user affects no rows", func(t *testing.T) {
		rows, err := writeRepo.Delete(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})
}
