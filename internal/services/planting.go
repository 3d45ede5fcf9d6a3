package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/treeseverywhere/api/internal/logger"
	"github.com/treeseverywhere/api/internal/models"
)

// ErrInvalidMembership is returned when a planting is attempted on
// behalf of an account the user does not belong to.
var ErrInvalidMembership = errors.New("account is not associated with this user")

// PlantedTreeReader defines read-only operations for planting records.
type PlantedTreeReader interface {
	GetByID(ctx context.Context, plantedTreeID uuid.UUID) (*models.PlantedTreeDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PlantedTreeDB, error)
	ListByAccountName(ctx context.Context, accountName string) ([]models.PlantedTreeDB, error)
}

// PlantedTreeWriter defines write operations for planting records.
type PlantedTreeWriter interface {
	Save(ctx context.Context, planted models.PlantedTreeDB) (*models.PlantedTreeDB, error)
	Update(ctx context.Context, planted models.PlantedTreeDB) (int64, error)
	Delete(ctx context.Context, plantedTreeID uuid.UUID) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PlantedTreeUpdate carries the optional fields of a planting update;
// nil fields are left untouched.
type PlantedTreeUpdate struct {
	TreeID    *uuid.UUID
	Latitude  *float64
	Longitude *float64
	PlantedAt *time.Time
}

// PlantingService implements the membership-gated planting workflow and
// CRUD over planting records.
type PlantingService struct {
	reader      PlantedTreeReader
	writer      PlantedTreeWriter
	users       UserReader
	accounts    AccountReader
	trees       TreeReader
	kafkaWriter KafkaWriter
}

// NewPlantingService creates a new PlantingService. kafkaWriter may be
// nil; event publishing is then skipped.
func NewPlantingService(
	reader PlantedTreeReader,
	writer PlantedTreeWriter,
	users UserReader,
	accounts AccountReader,
	trees TreeReader,
	kafkaWriter KafkaWriter,
) *PlantingService {
	return &PlantingService{
		reader:      reader,
		writer:      writer,
		users:       users,
		accounts:    accounts,
		trees:       trees,
		kafkaWriter: kafkaWriter,
	}
}

// publishPlanting publishes a planting event to Kafka. Failures are
// logged and never surfaced; the row is already committed.
func (svc *PlantingService) publishPlanting(ctx context.Context, planted *models.PlantedTreeDB) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "planted_tree_id", planted.PlantedTreeID)
		return
	}

	event := models.PlantingEvent{
		EventID:       uuid.NewString(),
		PlantedTreeID: planted.PlantedTreeID.String(),
		UserID:        planted.UserID.String(),
		AccountID:     planted.AccountID.String(),
		TreeID:        planted.TreeID.String(),
		Latitude:      planted.Latitude,
		Longitude:     planted.Longitude,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal planting event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.PlantedTreeID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish planting event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("planting event published", "event_id", event.EventID, "planted_tree_id", event.PlantedTreeID)
	}
}

// PlantTree records one planted tree after verifying the user belongs to
// the account. On a membership violation nothing is written.
func (svc *PlantingService) PlantTree(ctx context.Context, userID, accountID, treeID uuid.UUID, latitude, longitude float64) (*models.PlantedTreeDB, error) {
	member, err := svc.users.IsMember(ctx, userID, accountID)
	if err != nil {
		logger.Log.Errorw("failed to check membership", "user_id", userID, "account_id", accountID, "err", err)
		return nil, err
	}
	if !member {
		logger.Log.Errorw("membership violation", "user_id", userID, "account_id", accountID)
		return nil, ErrInvalidMembership
	}

	tree, err := svc.trees.GetByID(ctx, treeID)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, ErrNotFound
	}

	planted, err := svc.writer.Save(ctx, models.PlantedTreeDB{
		PlantedTreeID: uuid.New(),
		UserID:        userID,
		AccountID:     accountID,
		TreeID:        treeID,
		Latitude:      latitude,
		Longitude:     longitude,
	})
	if err != nil {
		logger.Log.Errorw("failed to save planted tree", "user_id", userID, "tree_id", treeID, "err", err)
		return nil, err
	}

	svc.publishPlanting(ctx, planted)
	return planted, nil
}

// PlantTrees records a batch of plantings for one account. The
// membership precondition is checked up front; each item is then planted
// independently, so a failed item (missing species, constraint
// violation) lands in the failed list without aborting the rest. The
// batch is NOT atomic across items.
func (svc *PlantingService) PlantTrees(ctx context.Context, userID, accountID uuid.UUID, plantings []models.TreePlanting) ([]models.PlantedTreeDB, []models.TreePlanting, error) {
	member, err := svc.users.IsMember(ctx, userID, accountID)
	if err != nil {
		return nil, nil, err
	}
	if !member {
		return nil, nil, ErrInvalidMembership
	}

	success := []models.PlantedTreeDB{}
	failed := []models.TreePlanting{}
	for _, planting := range plantings {
		planted, err := svc.PlantTree(ctx, userID, accountID, planting.TreeID, planting.Latitude, planting.Longitude)
		if err != nil {
			failed = append(failed, planting)
			continue
		}
		success = append(success, *planted)
	}

	return success, failed, nil
}

// Create runs the planting workflow on behalf of a caller. A caller may
// only record plantings for themselves unless they are a superuser.
func (svc *PlantingService) Create(ctx context.Context, caller *models.UserDB, userID, accountID, treeID uuid.UUID, latitude, longitude float64) (*models.PlantedTreeView, error) {
	if !isOwnerOrAdmin(caller, userID) {
		return nil, ErrForbidden
	}
	planted, err := svc.PlantTree(ctx, userID, accountID, treeID, latitude, longitude)
	if err != nil {
		return nil, err
	}
	return svc.view(ctx, planted)
}

// CreateBatch runs the batch planting workflow on behalf of a caller.
func (svc *PlantingService) CreateBatch(ctx context.Context, caller *models.UserDB, userID, accountID uuid.UUID, plantings []models.TreePlanting) ([]models.PlantedTreeView, []models.TreePlanting, error) {
	if !isOwnerOrAdmin(caller, userID) {
		return nil, nil, ErrForbidden
	}
	success, failed, err := svc.PlantTrees(ctx, userID, accountID, plantings)
	if err != nil {
		return nil, nil, err
	}
	views, err := svc.views(ctx, success)
	if err != nil {
		return nil, nil, err
	}
	return views, failed, nil
}

// view expands a planting row into its serialized shape.
func (svc *PlantingService) view(ctx context.Context, planted *models.PlantedTreeDB) (*models.PlantedTreeView, error) {
	tree, err := svc.trees.GetByID(ctx, planted.TreeID)
	if err != nil {
		return nil, err
	}
	account, err := svc.accounts.GetByID(ctx, planted.AccountID)
	if err != nil {
		return nil, err
	}
	user, err := svc.users.GetByID(ctx, planted.UserID)
	if err != nil {
		return nil, err
	}
	if tree == nil || account == nil || user == nil {
		return nil, ErrNotFound
	}
	userAccounts, err := svc.users.ListAccounts(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	return &models.PlantedTreeView{
		ID:        planted.PlantedTreeID,
		Tree:      *tree,
		User:      models.NewUserView(user, userAccounts),
		Account:   *account,
		PlantedAt: planted.PlantedAt,
		Latitude:  planted.Latitude,
		Longitude: planted.Longitude,
		Age:       planted.Age(time.Now()),
		Location:  planted.Location(),
	}, nil
}

// views expands a slice of planting rows.
func (svc *PlantingService) views(ctx context.Context, planted []models.PlantedTreeDB) ([]models.PlantedTreeView, error) {
	out := make([]models.PlantedTreeView, 0, len(planted))
	for i := range planted {
		v, err := svc.view(ctx, &planted[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

// View exposes the expanded serialization of a planting row.
func (svc *PlantingService) View(ctx context.Context, planted *models.PlantedTreeDB) (*models.PlantedTreeView, error) {
	return svc.view(ctx, planted)
}

// Views exposes the expanded serialization of several planting rows.
func (svc *PlantingService) Views(ctx context.Context, planted []models.PlantedTreeDB) ([]models.PlantedTreeView, error) {
	return svc.views(ctx, planted)
}

// Get returns one planting. Only its owner or a superuser may see it.
func (svc *PlantingService) Get(ctx context.Context, caller *models.UserDB, plantedTreeID uuid.UUID) (*models.PlantedTreeView, error) {
	planted, err := svc.reader.GetByID(ctx, plantedTreeID)
	if err != nil {
		return nil, err
	}
	if planted == nil {
		return nil, ErrNotFound
	}
	if !isOwnerOrAdmin(caller, planted.UserID) {
		return nil, ErrForbidden
	}
	return svc.view(ctx, planted)
}

// ListOwn returns the caller's plantings.
func (svc *PlantingService) ListOwn(ctx context.Context, caller *models.UserDB) ([]models.PlantedTreeView, error) {
	planted, err := svc.reader.ListByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	return svc.views(ctx, planted)
}

// ListByUser returns a user's plantings. Only that user or a superuser
// may list them.
func (svc *PlantingService) ListByUser(ctx context.Context, caller *models.UserDB, userID uuid.UUID) ([]models.PlantedTreeView, error) {
	if !isOwnerOrAdmin(caller, userID) {
		return nil, ErrForbidden
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	planted, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return svc.views(ctx, planted)
}

// ListByAccountName returns the plantings made on behalf of the named
// account. The caller must belong to it; superusers bypass the check.
func (svc *PlantingService) ListByAccountName(ctx context.Context, caller *models.UserDB, accountName string) ([]models.PlantedTreeView, error) {
	if caller == nil {
		return nil, ErrForbidden
	}
	if !caller.IsSuperuser {
		member, err := svc.users.IsMemberOfAccountName(ctx, caller.UserID, accountName)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, ErrForbidden
		}
	}

	planted, err := svc.reader.ListByAccountName(ctx, accountName)
	if err != nil {
		return nil, err
	}
	return svc.views(ctx, planted)
}

// Update changes a planting. Only its owner or a superuser may change it.
func (svc *PlantingService) Update(ctx context.Context, caller *models.UserDB, plantedTreeID uuid.UUID, update PlantedTreeUpdate) (*models.PlantedTreeView, error) {
	planted, err := svc.reader.GetByID(ctx, plantedTreeID)
	if err != nil {
		return nil, err
	}
	if planted == nil {
		return nil, ErrNotFound
	}
	if !isOwnerOrAdmin(caller, planted.UserID) {
		return nil, ErrForbidden
	}

	if update.TreeID != nil {
		tree, err := svc.trees.GetByID(ctx, *update.TreeID)
		if err != nil {
			return nil, err
		}
		if tree == nil {
			return nil, ErrNotFound
		}
		planted.TreeID = *update.TreeID
	}
	if update.Latitude != nil {
		planted.Latitude = *update.Latitude
	}
	if update.Longitude != nil {
		planted.Longitude = *update.Longitude
	}
	if update.PlantedAt != nil {
		planted.PlantedAt = *update.PlantedAt
	}

	if _, err := svc.writer.Update(ctx, *planted); err != nil {
		logger.Log.Errorw("failed to update planted tree", "planted_tree_id", plantedTreeID, "err", err)
		return nil, err
	}
	return svc.view(ctx, planted)
}

// Delete removes a planting. Only its owner or a superuser may delete it.
func (svc *PlantingService) Delete(ctx context.Context, caller *models.UserDB, plantedTreeID uuid.UUID) error {
	planted, err := svc.reader.GetByID(ctx, plantedTreeID)
	if err != nil {
		return err
	}
	if planted == nil {
		return ErrNotFound
	}
	if !isOwnerOrAdmin(caller, planted.UserID) {
		return ErrForbidden
	}

	rows, err := svc.writer.Delete(ctx, plantedTreeID)
	if err != nil {
		logger.Log.Errorw("failed to delete planted tree", "planted_tree_id", plantedTreeID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
