package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/folderforge/folderforge/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `uid, email, display_name, photo_url, role, stripe_customer_id,
	 subscription_status, plan_id, current_period_end, created_at`

func (r *PostgresRepository) Get(ctx context.Context, uid string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uid = $1`

	return r.scanRow(r.db.QueryRowContext(ctx, query, uid))
}

func (r *PostgresRepository) List(ctx context.Context) ([]*User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*User
	for rows.Next() {
		u := &User{}
		var role string
		if err := rows.Scan(&u.UID, &u.Email, &u.DisplayName, &u.PhotoURL, &role, &u.StripeCustomerID,
			&u.SubscriptionStatus, &u.PlanID, &u.CurrentPeriodEnd, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Role = ParseRole(role)
		result = append(result, u)
	}

	return result, rows.Err()
}

func (r *PostgresRepository) Upsert(ctx context.Context, user *User) (*User, error) {
	if user.Role == "" {
		user.Role = RoleFree
	}

	query :=
		`INSERT INTO users (uid, email, display_name, photo_url, role, stripe_customer_id,
		                    subscription_status, plan_id, current_period_end)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (uid) DO UPDATE SET
		   email = EXCLUDED.email,
		   display_name = COALESCE(NULLIF(EXCLUDED.display_name, ''), users.display_name),
		   photo_url = COALESCE(NULLIF(EXCLUDED.photo_url, ''), users.photo_url),
		   role = EXCLUDED.role,
		   stripe_customer_id = COALESCE(NULLIF(EXCLUDED.stripe_customer_id, ''), users.stripe_customer_id),
		   subscription_status = EXCLUDED.subscription_status,
		   plan_id = EXCLUDED.plan_id,
		   current_period_end = EXCLUDED.current_period_end
		 RETURNING ` + userColumns

	return r.scanRow(r.db.QueryRowContext(ctx, query,
		user.UID, user.Email, user.DisplayName, user.PhotoURL, string(user.Role),
		user.StripeCustomerID, user.SubscriptionStatus, user.PlanID, user.CurrentPeriodEnd))
}

func (r *PostgresRepository) SetStripeCustomerID(ctx context.Context, uid, customerID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET stripe_customer_id = $2 WHERE uid = $1`, uid, customerID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) scanRow(row *sql.Row) (*User, error) {
	u := &User{}
	var role string
	err := row.Scan(&u.UID, &u.Email, &u.DisplayName, &u.PhotoURL, &role, &u.StripeCustomerID,
		&u.SubscriptionStatus, &u.PlanID, &u.CurrentPeriodEnd, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	u.Role = ParseRole(role)
	return u, nil
}
