package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	domainErrors "github.com/polkiloo/accounts/internal/domain/errors"
	"github.com/polkiloo/accounts/internal/domain/model"
	"github.com/polkiloo/accounts/internal/domain/repository"
	"github.com/polkiloo/accounts/internal/storage/sqlite/migrations"
)

const busyTimeout = 5 * time.Second

// goose keeps dialect, filesystem and logger in package state.
var migrateMu sync.Mutex

// Storage is an account store backed by a single SQLite database file.
type Storage struct {
	db     *sql.DB
	logger *slog.Logger
}

type accountRepository struct {
	storage *Storage
}

// Open opens the database at path and applies embedded migrations.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Storage, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// SQLite serializes writers; one connection also keeps :memory: databases alive.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds()),
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("configure sqlite db: %w", err)
		}
	}

	if err := migrate(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	logger.Info("sqlite storage ready", slog.String("path", path))
	return &Storage{db: db, logger: logger}, nil
}

func migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{logger: logger.With(slog.String("migrator", "goose"))})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Close closes the SQLite handle.
func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Accounts returns the account repository.
func (s *Storage) Accounts() repository.AccountRepository {
	return &accountRepository{storage: s}
}

// HealthCheck verifies the database handle is usable.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.db.PingContext(ctx)
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}

func (r *accountRepository) Create(ctx context.Context, email, passwordHash string) (*model.Account, error) {
	now := time.Now().UTC()
	res, err := r.storage.db.ExecContext(ctx,
		`INSERT INTO accounts (email, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		email, passwordHash, toMillis(now), toMillis(now),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert account id: %w", err)
	}

	created := fromMillis(toMillis(now))
	return &model.Account{ID: id, Email: email, PasswordHash: passwordHash, CreatedAt: created, UpdatedAt: created}, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	return r.scanOne(ctx, `SELECT id, email, password_hash, created_at, updated_at FROM accounts WHERE email = ?`, email)
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	return r.scanOne(ctx, `SELECT id, email, password_hash, created_at, updated_at FROM accounts WHERE id = ?`, id)
}

func (r *accountRepository) scanOne(ctx context.Context, query string, arg any) (*model.Account, error) {
	var (
		acc       model.Account
		createdAt int64
		updatedAt int64
	)
	err := r.storage.db.QueryRowContext(ctx, query, arg).Scan(&acc.ID, &acc.Email, &acc.PasswordHash, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("select account: %w", err)
	}
	acc.CreatedAt = fromMillis(createdAt)
	acc.UpdatedAt = fromMillis(updatedAt)
	return &acc, nil
}

func (r *accountRepository) Update(ctx context.Context, id int64, update model.AccountUpdate) error {
	if update.Empty() {
		_, err := r.GetByID(ctx, id)
		return err
	}

	var (
		sets []string
		args []any
	)
	if update.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *update.Email)
	}
	if update.PasswordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *update.PasswordHash)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, toMillis(time.Now()), id)

	res, err := r.storage.db.ExecContext(ctx, "UPDATE accounts SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return fmt.Errorf("update account: %w", err)
	}
	return requireRow(res)
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.storage.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

var _ repository.AccountRepository = (*accountRepository)(nil)
