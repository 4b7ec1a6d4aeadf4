package notification

import (
	"context"
	"fmt"

	db "github.com/MartPlace/MartPlace-Backend/db/sqlc"
	"github.com/MartPlace/MartPlace-Backend/services/kyc"
	"github.com/MartPlace/MartPlace-Backend/services/monitoring/logging"
)

// Notification persists workflow outcomes so the dashboards can render
// them as toasts. It implements kyc.Notifier.
type Notification struct {
	store  *db.Store
	logger *logging.Logger
}

func NewNotificationService(store *db.Store, logger *logging.Logger) *Notification {
	return &Notification{
		store:  store,
		logger: logger,
	}
}

// Notify is fire-and-forget: a failed write is logged, never surfaced,
// so notification problems cannot break the verification flow.
func (n *Notification) Notify(ownerID string, outcome kyc.Outcome, message string) {
	_, err := n.store.CreateNotification(context.Background(), db.CreateNotificationParams{
		OwnerID: ownerID,
		Outcome: string(outcome),
		Message: message,
	})
	if err != nil {
		n.logger.Error(fmt.Sprintf("could not store notification for %v: %v", ownerID, err))
	}
}

func (n *Notification) Get(ctx context.Context, ownerID string) ([]db.Notification, error) {
	nots, err := n.store.ListNotificationsByOwner(ctx, ownerID)

	if err != nil {
		return nil, err
	}
	return nots, nil
}

// PruneOld drops notifications older than the retention window. Run
// from the task scheduler.
func (n *Notification) PruneOld(ctx context.Context) error {
	removed, err := n.store.PruneNotifications(ctx, "30 days")
	if err != nil {
		return err
	}
	if removed > 0 {
		n.logger.Info(fmt.Sprintf("pruned %v stale notifications", removed))
	}
	return nil
}

func (n *Notification) Delete(ctx context.Context, ownerID string, id int64) error {
	err := n.store.DeleteNotification(ctx, db.DeleteNotificationParams{
		OwnerID: ownerID,
		ID:      id,
	})

	if err != nil {
		return err
	}
	return nil
}
