package migrate

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config describes a Postgres connection for the migration runner.
type Config struct {
	Host           string            `json:"host" yaml:"host"`
	Port           int               `json:"port" yaml:"port"`
	Database       string            `json:"database" yaml:"database"`
	Username       string            `json:"username" yaml:"username"`
	Password       string            `json:"password" yaml:"password"`
	SSLMode        string            `json:"ssl_mode" yaml:"ssl_mode"`
	Params         map[string]string `json:"params" yaml:"params"`
	ConnectTimeout time.Duration     `json:"connect_timeout" yaml:"connect_timeout"`
}

func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

// DSN builds the postgres:// connection string.
func (c Config) DSN() string {
	var dsn strings.Builder
	dsn.WriteString("postgres://")

	if c.Username != "" {
		dsn.WriteString(url.QueryEscape(c.Username))
		if c.Password != "" {
			dsn.WriteString(":")
			dsn.WriteString(url.QueryEscape(c.Password))
		}
		dsn.WriteString("@")
	}

	dsn.WriteString(c.Host)
	if c.Port > 0 {
		dsn.WriteString(":")
		dsn.WriteString(strconv.Itoa(c.Port))
	}
	if c.Database != "" {
		dsn.WriteString("/")
		dsn.WriteString(url.PathEscape(c.Database))
	}

	params := make([]string, 0, len(c.Params)+1)
	if c.SSLMode != "" {
		params = append(params, "sslmode="+url.QueryEscape(c.SSLMode))
	}
	for k, v := range c.Params {
		if v != "" {
			params = append(params, url.QueryEscape(k)+"="+url.QueryEscape(v))
		}
	}
	if len(params) > 0 {
		dsn.WriteString("?")
		dsn.WriteString(strings.Join(params, "&"))
	}

	return dsn.String()
}

// Connect opens a pgx pool suitable for passing to NewRunner.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}
