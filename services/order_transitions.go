package services

import (
	"errors"
	"time"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"

	"gorm.io/gorm"
)

var (
	// ErrStatusConflict: the order moved under us (another operator, or a
	// stale board). The caller should refetch and retry deliberately.
	ErrStatusConflict = errors.New("status changed by someone else")
	ErrTerminalStatus = errors.New("order is in a terminal status")
)

// stamp field written when *entering* the given status
var statusStamps = map[entity.OrderStatus]string{
	entity.StatusPreparing: "printed_at",
	entity.StatusReady:     "prepared_at",
	entity.StatusServed:    "served_at",
	entity.StatusPaid:      "paid_at",
}

// Advance moves the order one step along the fixed chain
// pending → confirmed → preparing → ready → served → paid, stamping the
// transition timestamp. The guarded update turns concurrent advances into a
// conflict instead of a silent double-step.
func (s *OrderService) Advance(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	next, ok := o.Status.Next()
	if !ok {
		return nil, ErrTerminalStatus
	}

	stamps := map[string]any{}
	if field, ok := statusStamps[next]; ok {
		stamps[field] = time.Now()
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, next, stamps)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.GetOrderDetail(o.ID)
	if err != nil {
		return nil, err
	}
	if s.Hub != nil {
		s.Hub.StatusChanged(updated)
	}
	return updated, nil
}

// Cancel is reachable from any non-terminal status. There is no un-cancel.
func (s *OrderService) Cancel(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if o.Status.Terminal() {
		return nil, ErrTerminalStatus
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, entity.StatusCancelled, nil)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.GetOrderDetail(o.ID)
	if err != nil {
		return nil, err
	}
	if s.Hub != nil {
		s.Hub.StatusChanged(updated)
	}
	return updated, nil
}
