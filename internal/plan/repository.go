package plan

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitforge/fitforge/internal/sqlite"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"

// ErrNotFound is returned when a plan with the requested ID does not exist.
var ErrNotFound = errors.New("plan not found")

const (
	settingCurrentPlan = "current_plan"
	settingTheme       = "theme"
)

// sqliteRepository persists fitness plans and settings. Plans are stored as a
// JSON document plus a few promoted columns for ordering and starring.
type sqliteRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newSQLiteRepository(db *sqlite.Database, logger *slog.Logger) *sqliteRepository {
	return &sqliteRepository{
		db:     db,
		logger: logger,
	}
}

// savePlan inserts the plan and marks it current. Saving a plan whose ID is
// already stored replaces the stored copy.
func (r *sqliteRepository) savePlan(ctx context.Context, fitnessPlan FitnessPlan) error {
	document, err := json.Marshal(fitnessPlan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO plans (id, created_at, starred, document)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			starred = excluded.starred,
			document = excluded.document`,
		fitnessPlan.ID,
		fitnessPlan.CreatedAt.UTC().Format(timestampFormat),
		fitnessPlan.Starred,
		// Bind as string: the document column is TEXT in a STRICT table,
		// which rejects BLOB values.
		string(document),
	)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}

	if err = upsertSetting(ctx, tx, settingCurrentPlan, fitnessPlan.ID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// listPlans returns all stored plans, newest first. Rows whose document no
// longer parses are skipped and logged rather than failing the whole listing.
func (r *sqliteRepository) listPlans(ctx context.Context) ([]FitnessPlan, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, starred, document
		FROM plans
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close()

	plans := make([]FitnessPlan, 0)
	for rows.Next() {
		var (
			id       string
			starred  bool
			document []byte
		)
		if err = rows.Scan(&id, &starred, &document); err != nil {
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		fitnessPlan, err := decodePlanDocument(id, starred, document)
		if err != nil {
			r.logger.WarnContext(ctx, "skipping corrupt plan document",
				"plan_id", id, "error", err)
			continue
		}
		plans = append(plans, fitnessPlan)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plan rows: %w", err)
	}
	return plans, nil
}

// getPlan fetches a single plan by ID.
func (r *sqliteRepository) getPlan(ctx context.Context, id string) (FitnessPlan, error) {
	var (
		starred  bool
		document []byte
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT starred, document
		FROM plans
		WHERE id = ?`, id).Scan(&starred, &document)
	if errors.Is(err, sql.ErrNoRows) {
		return FitnessPlan{}, ErrNotFound
	}
	if err != nil {
		return FitnessPlan{}, fmt.Errorf("query plan: %w", err)
	}
	return decodePlanDocument(id, starred, document)
}

// currentPlan resolves the current plan pointer. A dangling or missing pointer
// reports ErrNotFound.
func (r *sqliteRepository) currentPlan(ctx context.Context) (FitnessPlan, error) {
	var id string
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT value FROM settings WHERE key = ?`, settingCurrentPlan).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return FitnessPlan{}, ErrNotFound
	}
	if err != nil {
		return FitnessPlan{}, fmt.Errorf("query current plan setting: %w", err)
	}
	return r.getPlan(ctx, id)
}

// deletePlan removes the plan and clears the current pointer when it pointed
// at the deleted plan. Deleting an unknown ID is not an error.
func (r *sqliteRepository) deletePlan(ctx context.Context, id string) error {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		DELETE FROM settings WHERE key = ? AND value = ?`, settingCurrentPlan, id)
	if err != nil {
		return fmt.Errorf("clear current plan setting: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// setStarred toggles the starred flag both on the column and inside the
// document so listings and the document stay consistent.
func (r *sqliteRepository) setStarred(ctx context.Context, id string, starred bool) error {
	fitnessPlan, err := r.getPlan(ctx, id)
	if err != nil {
		return err
	}
	fitnessPlan.Starred = starred
	document, err := json.Marshal(fitnessPlan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	_, err = r.db.ReadWrite.ExecContext(ctx, `
		UPDATE plans SET starred = ?, document = ? WHERE id = ?`,
		starred, string(document), id)
	if err != nil {
		return fmt.Errorf("update starred flag: %w", err)
	}
	return nil
}

// theme returns the stored theme preference, defaulting to "system".
func (r *sqliteRepository) theme(ctx context.Context) (string, error) {
	var theme string
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT value FROM settings WHERE key = ?`, settingTheme).Scan(&theme)
	if errors.Is(err, sql.ErrNoRows) {
		return "system", nil
	}
	if err != nil {
		return "", fmt.Errorf("query theme setting: %w", err)
	}
	return theme, nil
}

func (r *sqliteRepository) setTheme(ctx context.Context, theme string) error {
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		settingTheme, theme)
	if err != nil {
		return fmt.Errorf("save theme setting: %w", err)
	}
	return nil
}

func upsertSetting(ctx context.Context, tx *sql.Tx, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("save %s setting: %w", key, err)
	}
	return nil
}

// decodePlanDocument unmarshals a stored document. The id and starred columns
// are authoritative over whatever the document claims.
func decodePlanDocument(id string, starred bool, document []byte) (FitnessPlan, error) {
	var fitnessPlan FitnessPlan
	if err := json.Unmarshal(document, &fitnessPlan); err != nil {
		return FitnessPlan{}, fmt.Errorf("unmarshal plan document: %w", err)
	}
	fitnessPlan.ID = id
	fitnessPlan.Starred = starred
	fitnessPlan.CreatedAt = fitnessPlan.CreatedAt.UTC()
	return fitnessPlan, nil
}

// newPlanID derives a plan identifier from its creation time, millisecond
// precision matching the timestamp column.
func newPlanID(createdAt time.Time) string {
	return fmt.Sprintf("%d", createdAt.UnixMilli())
}
