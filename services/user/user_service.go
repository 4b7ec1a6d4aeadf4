package user_service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	db "github.com/MartPlace/MartPlace-Backend/db/sqlc"
	"github.com/MartPlace/MartPlace-Backend/services/monitoring/logging"
	"github.com/lib/pq"
)

type UserService struct {
	store  *db.Store
	logger *logging.Logger
}

func NewUserService(store *db.Store, logger *logging.Logger) *UserService {
	return &UserService{
		store:  store,
		logger: logger,
	}
}

// CreateVendorWithTenant creates the vendor account and its tenant
// record in one transaction, so a vendor never exists without a tenant
// row to hang KYC state off.
func (u *UserService) CreateVendorWithTenant(ctx context.Context, arg *db.CreateUserParams, storeID string) (*db.User, error) {
	var newUser db.User

	err := u.store.ExecTx(ctx, func(q *db.Queries) error {
		var err error
		newUser, err = q.CreateUser(ctx, *arg)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				if pqErr.Code == db.DuplicateEntry {
					// 23505 --> Violated Unique Constraints
					return NewUserError(ErrUserAlreadyExists, "", err)
				}
			}
			return err
		}

		_, err = q.SetTenantKYCStatus(ctx, db.SetTenantKYCStatusParams{
			OwnerID:   strconv.FormatInt(newUser.ID, 10),
			StoreID:   sql.NullString{String: storeID, Valid: storeID != ""},
			KycStatus: "pending",
		})
		if err != nil {
			return fmt.Errorf("failed to create tenant for user %v: %w", newUser.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &newUser, nil
}

func (u *UserService) FetchUserByEmail(ctx context.Context, email string) (*db.User, error) {
	user, err := u.store.GetUserByEmail(ctx, email)
	if err == sql.ErrNoRows {
		return nil, NewUserError(ErrUserNotFound, email)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserService) FetchUserByID(ctx context.Context, userID int64) (*db.User, error) {
	user, err := u.store.GetUserByID(ctx, userID)
	if err == sql.ErrNoRows {
		return nil, NewUserError(ErrUserNotFound, strconv.FormatInt(userID, 10))
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// MarkVerified flips the flag baked into newly issued tokens once
// identity verification completes.
func (u *UserService) MarkVerified(ctx context.Context, userID int64) error {
	_, err := u.store.SetUserVerified(ctx, db.SetUserVerifiedParams{
		ID:       userID,
		Verified: true,
	})
	return err
}
