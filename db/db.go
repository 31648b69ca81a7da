package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "github.com/lib/pq" // Import postgres driver
)

const maxLoggedQueryLen = 120

// Pool оборачивает database/sql и является единственным долгоживущим
// разделяемым ресурсом процесса. Создаётся явно в main и передаётся
// в репозитории через конструкторы.
type Pool struct {
	db     *sql.DB
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

type PoolConfig struct {
	DSN            string
	MaxConns       int
	MinConns       int
	IdleTimeout    time.Duration
	ConnectTimeout time.Duration
}

// New открывает пул соединений и проверяет его пингом с таймаутом.
func New(cfg PoolConfig, logger *slog.Logger) (*Pool, error) {
	handle, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to create database handle: %w", err)
	}

	// Configure connection pool
	handle.SetMaxOpenConns(cfg.MaxConns)
	handle.SetMaxIdleConns(cfg.MinConns)
	handle.SetConnMaxIdleTime(cfg.IdleTimeout)

	// Verify the connection with a timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	if err = handle.PingContext(ctx); err != nil {
		if closeErr := handle.Close(); closeErr != nil {
			logger.Error("failed to close database handle after ping error", slog.Any("error", closeErr))
		}
		return nil, fmt.Errorf("failed to ping database within %v: %w", cfg.ConnectTimeout, err)
	}

	return &Pool{db: handle, logger: logger}, nil
}

// Query выполняет параметризованный запрос, замеряя длительность.
// При ошибке логируется усечённый текст запроса, но никогда не параметры.
func (p *Pool) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		p.logger.Error("database query failed",
			slog.String("query", truncateQuery(query)),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("database query failed: %w", err)
	}
	return rows, nil
}

// Row оборачивает sql.Row: ошибка запроса становится видна только в Scan,
// поэтому и логируется она там же — усечённый текст запроса и длительность,
// но никогда не параметры. sql.ErrNoRows — ожидаемый исход, не сбой.
type Row struct {
	row    *sql.Row
	logger *slog.Logger
	query  string
	start  time.Time
}

func (r *Row) Scan(dest ...interface{}) error {
	err := r.row.Scan(dest...)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		r.logger.Error("database query failed",
			slog.String("query", truncateQuery(r.query)),
			slog.Duration("duration", time.Since(r.start)),
			slog.Any("error", err),
		)
	}
	return err
}

func (p *Pool) QueryRow(ctx context.Context, query string, args ...interface{}) *Row {
	return &Row{
		row:    p.db.QueryRowContext(ctx, query, args...),
		logger: p.logger,
		query:  query,
		start:  time.Now(),
	}
}

func (p *Pool) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		p.logger.Error("database exec failed",
			slog.String("query", truncateQuery(query)),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("database exec failed: %w", err)
	}
	return result, nil
}

// CheckHealth выполняет тривиальный запрос и возвращает false вместо
// ошибки при любом сбое. Не имеет побочных эффектов для данных.
func (p *Pool) CheckHealth(ctx context.Context) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	p.mu.Unlock()

	var one int
	if err := p.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		p.logger.Warn("database health check failed", slog.Any("error", err))
		return false
	}
	return one == 1
}

// Stats возвращает статистику пула (открытые/занятые/простаивающие соединения).
func (p *Pool) Stats() sql.DBStats {
	return p.db.Stats()
}

// Close закрывает пул. Повторные вызовы безопасны.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.db.Close()
}

func truncateQuery(query string) string {
	if len(query) <= maxLoggedQueryLen {
		return query
	}
	return query[:maxLoggedQueryLen] + "..."
}
