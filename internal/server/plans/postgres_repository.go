package plans

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

const planColumns = `id, name, description, amount, currency, interval, stripe_price_id,
	 active, max_quantity, sold_count`

func (r *PostgresRepository) Create(ctx context.Context, p *Plan) (*Plan, error) {
	query :=
		`INSERT INTO plans (id, name, description, amount, currency, interval, stripe_price_id,
		                    active, max_quantity, sold_count)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0)
		 `

	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Description, p.Amount, p.Currency,
		p.Interval, p.StripePriceID, p.Active, p.MaxQuantity)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	p.SoldCount = 0

	return p, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE id = $1`
	return r.scanRow(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByStripePriceID(ctx context.Context, priceID string) (*Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE stripe_price_id = $1`
	return r.scanRow(r.db.QueryRowContext(ctx, query, priceID))
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Plan, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+planColumns+` FROM plans ORDER BY amount`)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*Plan
	for rows.Next() {
		p := &Plan{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Amount, &p.Currency, &p.Interval,
			&p.StripePriceID, &p.Active, &p.MaxQuantity, &p.SoldCount); err != nil {
			return nil, err
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, id string, patch *PlanPatch) (*Plan, error) {
	query :=
		`UPDATE plans SET
		   name = COALESCE($2, name),
		   description = COALESCE($3, description),
		   amount = COALESCE($4, amount),
		   currency = COALESCE($5, currency),
		   interval = COALESCE($6, interval),
		   stripe_price_id = COALESCE($7, stripe_price_id),
		   active = COALESCE($8, active),
		   max_quantity = COALESCE($9, max_quantity)
		 WHERE id = $1
		 RETURNING ` + planColumns

	return r.scanRow(r.db.QueryRowContext(ctx, query, id, patch.Name, patch.Description,
		patch.Amount, patch.Currency, patch.Interval, patch.StripePriceID, patch.Active, patch.MaxQuantity))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) IncrementSoldCount(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE plans SET sold_count = sold_count + 1 WHERE id = $1`, id)
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

func (r *PostgresRepository) scanRow(row *sql.Row) (*Plan, error) {
	p := &Plan{}
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Amount, &p.Currency, &p.Interval,
		&p.StripePriceID, &p.Active, &p.MaxQuantity, &p.SoldCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return p, nil
}
