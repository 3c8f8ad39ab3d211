package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/antigravity/Trading-Journal-Backend/internal/apperrors"
	"github.com/antigravity/Trading-Journal-Backend/internal/model"
)

// tradeColumns is the canonical column list shared by every trade query.
const tradeColumns = `
	id, opened_at, symbol, isin, category, currency, status,
	quantity, entry_price, avg_cost_basis, exit_price, current_price,
	opening_cost, closing_cost, annual_holding_rate, notes,
	gross_invested, net_invested, current_value, gross_profit_loss,
	tax_due, net_profit, return_pct, created_at
`

// TradeRepository provides data access methods for the trade table.
// The ledger is always returned ordered by opening date ascending, which
// is the order the time-series aggregators expect.
type TradeRepository struct {
	db *sql.DB
}

// NewTradeRepository creates a new TradeRepository with the provided database connection.
func NewTradeRepository(db *sql.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// ListTrades returns the full ledger snapshot, ordered by opening date ascending.
func (r *TradeRepository) ListTrades() ([]model.Trade, error) {
	return r.list("")
}

// ListOpenTrades returns only OPEN trades, ordered by opening date ascending.
func (r *TradeRepository) ListOpenTrades() ([]model.Trade, error) {
	return r.list(string(model.StatusOpen))
}

func (r *TradeRepository) list(status string) ([]model.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trade`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY opened_at ASC, created_at ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade table: %w", err)
	}
	defer rows.Close()

	trades := []model.Trade{}
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade table: %w", err)
	}

	return trades, nil
}

// GetTrade retrieves a single trade by ID.
// Returns apperrors.ErrTradeNotFound when no row matches.
func (r *TradeRepository) GetTrade(id string) (model.Trade, error) {
	row := r.db.QueryRow(`SELECT `+tradeColumns+` FROM trade WHERE id = ?`, id)

	t, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return model.Trade{}, apperrors.ErrTradeNotFound
	}
	if err != nil {
		return model.Trade{}, err
	}
	return t, nil
}

// InsertTrade inserts a new trade row.
func (r *TradeRepository) InsertTrade(t model.Trade) error {
	return insertTrade(r.db, t)
}

// InsertTradeTx inserts a new trade row inside the caller's transaction.
func (r *TradeRepository) InsertTradeTx(tx *sql.Tx, t model.Trade) error {
	return insertTrade(tx, t)
}

// UpdateTrade overwrites all mutable columns of an existing trade.
func (r *TradeRepository) UpdateTrade(t model.Trade) error {
	return updateTrade(r.db, t)
}

// UpdateTradeTx overwrites all mutable columns inside the caller's transaction.
func (r *TradeRepository) UpdateTradeTx(tx *sql.Tx, t model.Trade) error {
	return updateTrade(tx, t)
}

// DeleteTrade removes a trade by ID.
// Returns apperrors.ErrTradeNotFound when no row was deleted.
func (r *TradeRepository) DeleteTrade(id string) error {
	result, err := r.db.Exec(`DELETE FROM trade WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTradeNotFound
	}
	return nil
}

func insertTrade(db execer, t model.Trade) error {
	query := `
		INSERT INTO trade (` + tradeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, tradeArgs(t)...)
	if err != nil {
		return fmt.Errorf("failed to insert trade: %w", err)
	}
	return nil
}

func updateTrade(db execer, t model.Trade) error {
	query := `
		UPDATE trade SET
			opened_at = ?, symbol = ?, isin = ?, category = ?, currency = ?,
			status = ?, quantity = ?, entry_price = ?, avg_cost_basis = ?,
			exit_price = ?, current_price = ?, opening_cost = ?, closing_cost = ?,
			annual_holding_rate = ?, notes = ?, gross_invested = ?, net_invested = ?,
			current_value = ?, gross_profit_loss = ?, tax_due = ?, net_profit = ?,
			return_pct = ?
		WHERE id = ?
	`

	result, err := db.Exec(query,
		t.OpenedAt.UTC().Format(time.RFC3339),
		t.Symbol,
		nullString(t.ISIN),
		t.Category,
		t.Currency,
		string(t.Status),
		t.Quantity,
		t.EntryPrice,
		nullFloat(t.AvgCostBasis),
		nullFloat(t.ExitPrice),
		nullFloat(t.CurrentPrice),
		t.OpeningCost,
		t.ClosingCost,
		t.AnnualHoldingRate,
		nullString(t.Notes),
		t.GrossInvested,
		t.NetInvested,
		t.CurrentValue,
		t.GrossProfitLoss,
		t.TaxDue,
		t.NetProfit,
		t.ReturnPct,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trade: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTradeNotFound
	}
	return nil
}

func tradeArgs(t model.Trade) []any {
	return []any{
		t.ID,
		t.OpenedAt.UTC().Format(time.RFC3339),
		t.Symbol,
		nullString(t.ISIN),
		t.Category,
		t.Currency,
		string(t.Status),
		t.Quantity,
		t.EntryPrice,
		nullFloat(t.AvgCostBasis),
		nullFloat(t.ExitPrice),
		nullFloat(t.CurrentPrice),
		t.OpeningCost,
		t.ClosingCost,
		t.AnnualHoldingRate,
		nullString(t.Notes),
		t.GrossInvested,
		t.NetInvested,
		t.CurrentValue,
		t.GrossProfitLoss,
		t.TaxDue,
		t.NetProfit,
		t.ReturnPct,
		t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(row scanner) (model.Trade, error) {
	var t model.Trade
	var openedAtStr, createdAtStr string
	var status string
	var isin, notes sql.NullString
	var avgCostBasis, exitPrice, currentPrice sql.NullFloat64
	var grossInvested, netInvested, currentValue sql.NullFloat64
	var grossPL, taxDue, netProfit, returnPct sql.NullFloat64

	err := row.Scan(
		&t.ID,
		&openedAtStr,
		&t.Symbol,
		&isin,
		&t.Category,
		&t.Currency,
		&status,
		&t.Quantity,
		&t.EntryPrice,
		&avgCostBasis,
		&exitPrice,
		&currentPrice,
		&t.OpeningCost,
		&t.ClosingCost,
		&t.AnnualHoldingRate,
		&notes,
		&grossInvested,
		&netInvested,
		&currentValue,
		&grossPL,
		&taxDue,
		&netProfit,
		&returnPct,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Trade{}, err
	}
	if err != nil {
		return model.Trade{}, fmt.Errorf("failed to scan trade table results: %w", err)
	}

	t.OpenedAt, err = ParseTime(openedAtStr)
	if err != nil || t.OpenedAt.IsZero() {
		return model.Trade{}, fmt.Errorf("failed to parse date: %w", err)
	}
	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Trade{}, fmt.Errorf("failed to parse date: %w", err)
	}

	t.Status = model.TradeStatus(status)
	t.ISIN = isin.String
	t.Notes = notes.String
	t.AvgCostBasis = avgCostBasis.Float64
	t.ExitPrice = exitPrice.Float64
	t.CurrentPrice = currentPrice.Float64
	t.GrossInvested = grossInvested.Float64
	t.NetInvested = netInvested.Float64
	t.CurrentValue = currentValue.Float64
	t.GrossProfitLoss = grossPL.Float64
	t.TaxDue = taxDue.Float64
	t.NetProfit = netProfit.Float64
	t.ReturnPct = returnPct.Float64

	return t, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullFloat(f float64) any {
	if f == 0 {
		return nil
	}
	return f
}
