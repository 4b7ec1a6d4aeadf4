package kyc

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	db "github.com/MartPlace/MartPlace-Backend/db/sqlc"
	"github.com/MartPlace/MartPlace-Backend/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sqlc-dev/pqtype"
)

// SQLProgressStore persists progress records through the sqlc query
// layer. It implements ProgressStore.
type SQLProgressStore struct {
	store  *db.Store
	logger *logging.Logger
}

func NewSQLProgressStore(store *db.Store, logger *logging.Logger) *SQLProgressStore {
	return &SQLProgressStore{
		store:  store,
		logger: logger,
	}
}

func nullRaw(v interface{}) (pqtype.NullRawMessage, error) {
	if v == nil {
		return pqtype.NullRawMessage{}, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return pqtype.NullRawMessage{}, err
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}, nil
}

// SaveProgress is the idempotent upsert for a subject's progress record.
// A blank KYCID creates the record; a prior KYCID updates it in place,
// leaving omitted payloads untouched.
func (s *SQLProgressStore) SaveProgress(ctx context.Context, ownerID string, update ProgressUpdate) (string, error) {
	var bankData, bvnData pqtype.NullRawMessage
	var err error

	if update.BankData != nil {
		if bankData, err = nullRaw(update.BankData); err != nil {
			return "", fmt.Errorf("could not encode bank data: %w", err)
		}
	}
	if update.BVNData != nil {
		if bvnData, err = nullRaw(update.BVNData); err != nil {
			return "", fmt.Errorf("could not encode bvn data: %w", err)
		}
	}

	metadata, err := json.Marshal(update.Metadata)
	if err != nil {
		return "", fmt.Errorf("could not encode metadata: %w", err)
	}

	if update.KYCID == "" {
		created, err := s.store.CreateKYCProgress(ctx, db.CreateKYCProgressParams{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			Status:    string(update.Status),
			BankData:  bankData,
			BvnData:   bvnData,
			Metadata:  metadata,
			Completed: update.Completed,
		})
		if err == nil {
			return created.ID.String(), nil
		}

		// A concurrent or resumed session may already hold a record for
		// this owner; fall through to an update against it.
		var pqErr *pq.Error
		if !errors.As(err, &pqErr) || pqErr.Code != db.DuplicateEntry {
			return "", err
		}
		existing, getErr := s.store.GetKYCProgressByOwnerID(ctx, ownerID)
		if getErr != nil {
			return "", getErr
		}
		update.KYCID = existing.ID.String()
	}

	id, err := uuid.Parse(update.KYCID)
	if err != nil {
		return "", fmt.Errorf("invalid kyc id %q: %w", update.KYCID, err)
	}

	updated, err := s.store.UpdateKYCProgress(ctx, db.UpdateKYCProgressParams{
		ID:        id,
		Status:    string(update.Status),
		BankData:  bankData,
		BvnData:   bvnData,
		Metadata:  metadata,
		Completed: update.Completed,
	})
	if err != nil {
		return "", err
	}

	return updated.ID.String(), nil
}

func (s *SQLProgressStore) GetProgressByOwner(ctx context.Context, ownerID string) (*Progress, error) {
	row, err := s.store.GetKYCProgressByOwnerID(ctx, ownerID)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	progress := &Progress{
		KYCID:     row.ID.String(),
		OwnerID:   row.OwnerID,
		Status:    Status(row.Status),
		Completed: row.Completed,
	}

	if row.BankData.Valid {
		var bank BankData
		if err := json.Unmarshal(row.BankData.RawMessage, &bank); err != nil {
			return nil, fmt.Errorf("could not decode bank data: %w", err)
		}
		progress.BankData = &bank
	}
	if row.BvnData.Valid {
		var bvn BVNData
		if err := json.Unmarshal(row.BvnData.RawMessage, &bvn); err != nil {
			return nil, fmt.Errorf("could not decode bvn data: %w", err)
		}
		progress.BVNData = &bvn
	}
	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &progress.Metadata); err != nil {
			return nil, fmt.Errorf("could not decode metadata: %w", err)
		}
	}

	return progress, nil
}

func (s *SQLProgressStore) SetTenantKYCStatus(ctx context.Context, ownerID string, status Status) error {
	progress, err := s.store.GetKYCProgressByOwnerID(ctx, ownerID)

	storeID := sql.NullString{}
	if err == nil && len(progress.Metadata) > 0 {
		var metadata Metadata
		if jsonErr := json.Unmarshal(progress.Metadata, &metadata); jsonErr == nil && metadata.VendorStoreID != "" {
			storeID = sql.NullString{String: metadata.VendorStoreID, Valid: true}
		}
	}

	_, err = s.store.SetTenantKYCStatus(ctx, db.SetTenantKYCStatusParams{
		OwnerID:   ownerID,
		StoreID:   storeID,
		KycStatus: string(status),
	})
	return err
}
