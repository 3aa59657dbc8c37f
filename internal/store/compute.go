package store

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fleet_dispatch/internal/models"
)

// CancelPolicy names the choice of whether a job already in a terminal state
// may still be marked cancelled. The upstream behaviour allows it, so the
// default is permissive.
type CancelPolicy struct {
	AllowCancelTerminal bool
}

// ComputeFilter narrows List. Both predicates are conjunctive.
type ComputeFilter struct {
	OrderID *uint
	Status  *models.ComputeStatus
}

// ComputeStore owns the compute job lifecycle. Every method takes the calling
// account's id and enforces ownership inside the query itself, so two
// concurrent mutations are serialized by the database rather than by any
// in-process state.
type ComputeStore struct {
	db     *gorm.DB
	policy CancelPolicy
}

func NewComputeStore(db *gorm.DB, policy CancelPolicy) *ComputeStore {
	return &ComputeStore{db: db, policy: policy}
}

// List returns the account's computes, filtered and ordered by id ascending.
// The explicit ordering keeps results reproducible for pagination later.
func (s *ComputeStore) List(ctx context.Context, accountID uint, f ComputeFilter) ([]models.Compute, error) {
	q := s.db.WithContext(ctx).Where("account_id = ?", accountID)
	if f.OrderID != nil {
		q = q.Where("order_id = ?", *f.OrderID)
	}
	if f.Status != nil {
		q = q.Where("compute_status = ?", *f.Status)
	}
	var computes []models.Compute
	if err := q.Order("id ASC").Find(&computes).Error; err != nil {
		return nil, err
	}
	return computes, nil
}

// Get returns nil for an id that does not exist and for one owned by another
// account; the two cases are indistinguishable on purpose.
func (s *ComputeStore) Get(ctx context.Context, accountID, id uint) (*models.Compute, error) {
	var compute models.Compute
	err := s.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&compute).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &compute, nil
}

// Create inserts a new job in the initial state. The order must exist and
// belong to the calling account; otherwise ErrNotFound, so cross-account ids
// look the same as missing ones.
func (s *ComputeStore) Create(ctx context.Context, accountID, orderID uint, data datatypes.JSON, comment string) (*models.Compute, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND account_id = ?", orderID, accountID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	compute := models.Compute{
		AccountID:         accountID,
		OrderID:           orderID,
		ComputeStatus:     models.ComputeInitial,
		Data:              data,
		CommentForAccount: comment,
	}
	if err := s.db.WithContext(ctx).Create(&compute).Error; err != nil {
		return nil, err
	}
	return &compute, nil
}

// MarkPending moves a freshly created job to pending once its dispatch
// message has been accepted by the stream. A job whose enqueue failed stays
// visibly initial.
func (s *ComputeStore) MarkPending(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Model(&models.Compute{}).
		Where("id = ? AND compute_status = ?", id, models.ComputeInitial).
		Updates(map[string]interface{}{
			"compute_status": models.ComputePending,
			"updated_at":     time.Now().Unix(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Cancel marks a job cancelled with a single conditional UPDATE. The WHERE
// clause carries the ownership check, so there is no read-then-write race:
// of two concurrent cancels the second still matches the row and succeeds,
// which is the documented no-guard behaviour. When the policy forbids
// cancelling terminal jobs the clause also excludes them and such calls
// report ErrNotFound.
func (s *ComputeStore) Cancel(ctx context.Context, accountID, id uint) (*models.Compute, error) {
	q := s.db.WithContext(ctx).Model(&models.Compute{}).
		Where("id = ? AND account_id = ?", id, accountID)
	if !s.policy.AllowCancelTerminal {
		q = q.Where("compute_status NOT IN ?", models.TerminalComputeStatuses)
	}
	res := q.Updates(map[string]interface{}{
		"compute_status": models.ComputeCancelled,
		"updated_at":     time.Now().Unix(),
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var compute models.Compute
	if err := s.db.WithContext(ctx).First(&compute, id).Error; err != nil {
		return nil, err
	}
	return &compute, nil
}

// ListByOrder is the nested Order.computes hop. The parent order has already
// been resolved under its owner, so scoping on (order, account) is enough.
func (s *ComputeStore) ListByOrder(ctx context.Context, accountID, orderID uint) ([]models.Compute, error) {
	return s.List(ctx, accountID, ComputeFilter{OrderID: &orderID})
}
