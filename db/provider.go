package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	ModePool = "pool"
	ModeDial = "dial"
)

var ErrConnectionUnavailable = errors.New("database connection unavailable")

// Provider hands out database sessions. The session passed to fn is only
// valid until fn returns; its connection is released on every exit path.
type Provider interface {
	Session(ctx context.Context, fn func(tx *gorm.DB) error) error
	Ping(ctx context.Context) error
	Close() error
}

type Options struct {
	Mode           string
	ConnectTimeout time.Duration
	// Pool tunes the shared pool. Dial mode only honors MaxOpenConns, as the
	// cap on connections open at the same time.
	Pool PoolOptions
}

// NewProvider builds the provider selected by opts.Mode.
func NewProvider(dsn string, opts Options, log *slog.Logger) (Provider, error) {
	gormLog := NewGormLogger(log)

	switch opts.Mode {
	case ModePool, "":
		sqlDB, err := Connect(dsn, opts.ConnectTimeout, opts.Pool)
		if err != nil {
			return nil, err
		}
		provider, err := NewPoolProvider(sqlDB, gormLog)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		return provider, nil
	case ModeDial:
		return NewDialProvider(dsn, opts.ConnectTimeout, opts.Pool.MaxOpenConns, gormLog), nil
	default:
		return nil, fmt.Errorf("unknown connection mode %q", opts.Mode)
	}
}

func openORM(sqlDB *sql.DB, gormLog logger.Interface) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormLog,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
}

type poolProvider struct {
	sqlDB *sql.DB
	orm   *gorm.DB
}

// NewPoolProvider shares one pool across all sessions. Every session pins a
// single pooled connection for its lifetime.
func NewPoolProvider(sqlDB *sql.DB, gormLog logger.Interface) (Provider, error) {
	orm, err := openORM(sqlDB, gormLog)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}
	return &poolProvider{sqlDB: sqlDB, orm: orm}, nil
}

func (p *poolProvider) Session(ctx context.Context, fn func(tx *gorm.DB) error) (err error) {
	conn, err := p.sqlDB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionUnavailable, err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to release connection: %w", closeErr)
		}
	}()

	tx := p.orm.Session(&gorm.Session{NewDB: true, Context: ctx})
	tx.Statement.ConnPool = conn

	return fn(tx)
}

func (p *poolProvider) Ping(ctx context.Context) error {
	if err := p.sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionUnavailable, err)
	}
	return nil
}

func (p *poolProvider) Close() error {
	return p.sqlDB.Close()
}

type dialProvider struct {
	open    func() (*sql.DB, error)
	timeout time.Duration
	gormLog logger.Interface
	slots   chan struct{}
}

// NewDialProvider establishes a fresh connection for every session and closes
// it afterwards. Nothing is shared between sessions. When maxConns is positive
// at most maxConns sessions hold a connection at once; the rest wait for a
// slot until their context ends.
func NewDialProvider(dsn string, timeout time.Duration, maxConns int, gormLog logger.Interface) Provider {
	return newDialProvider(func() (*sql.DB, error) {
		return sql.Open(driverName, dsn)
	}, timeout, maxConns, gormLog)
}

func newDialProvider(open func() (*sql.DB, error), timeout time.Duration, maxConns int, gormLog logger.Interface) *dialProvider {
	p := &dialProvider{open: open, timeout: timeout, gormLog: gormLog}
	if maxConns > 0 {
		p.slots = make(chan struct{}, maxConns)
	}
	return p
}

func (p *dialProvider) Session(ctx context.Context, fn func(tx *gorm.DB) error) (err error) {
	if p.slots != nil {
		select {
		case p.slots <- struct{}{}:
			defer func() { <-p.slots }()
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrConnectionUnavailable, ctx.Err())
		}
	}

	sqlDB, err := p.open()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionUnavailable, err)
	}
	defer func() {
		if closeErr := sqlDB.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close connection: %w", closeErr)
		}
	}()
	sqlDB.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionUnavailable, err)
	}

	orm, err := openORM(sqlDB, p.gormLog)
	if err != nil {
		return fmt.Errorf("failed to initialize orm: %w", err)
	}

	return fn(orm.WithContext(ctx))
}

func (p *dialProvider) Ping(ctx context.Context) error {
	return p.Session(ctx, func(*gorm.DB) error { return nil })
}

func (p *dialProvider) Close() error {
	return nil
}
