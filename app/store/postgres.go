package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// PostgresConfig holds connection settings for the backing database.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Postgres keeps every collection in a single documents table with a
// jsonb fields column, so the store stays schemaless like the backend it
// stands in for.
type Postgres struct {
	db *sql.DB
}

var _ Store = (*Postgres)(nil)

func OpenPostgres(cfg PostgresConfig) (*Postgres, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return &Postgres{db: db}, nil
}

// RunMigrations applies the embedded goose migrations.
func (p *Postgres) RunMigrations() error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(p.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (p *Postgres) Close() error { return p.db.Close() }

func (p *Postgres) List(ctx context.Context, collection string, filters ...Filter) ([]Record, error) {
	query := `SELECT id, fields FROM documents WHERE collection = $1`
	args := []any{collection}
	for _, f := range filters {
		args = append(args, f.Field, stringify(f.Value))
		query += fmt.Sprintf(" AND fields ->> $%d = $%d", len(args)-1, len(args))
	}
	query += ` ORDER BY created_at`

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, collabErr("list "+collection, err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, collabErr("list "+collection, err)
		}
		fields := map[string]any{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, collabErr("list "+collection, err)
		}
		out = append(out, Record{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, collabErr("list "+collection, err)
	}
	return out, nil
}

func (p *Postgres) Get(ctx context.Context, collection, id string) (Record, error) {
	var raw []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT fields FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return Record{}, notFound(collection, id)
	}
	if err != nil {
		return Record{}, collabErr("get "+collection, err)
	}

	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Record{}, collabErr("get "+collection, err)
	}
	return Record{ID: id, Fields: fields}, nil
}

func (p *Postgres) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", collabErr("add "+collection, err)
	}

	var id string
	err = p.db.QueryRowContext(ctx,
		`INSERT INTO documents (collection, fields) VALUES ($1, $2) RETURNING id`,
		collection, raw,
	).Scan(&id)
	if err != nil {
		return "", collabErr("add "+collection, err)
	}
	return id, nil
}

func (p *Postgres) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return collabErr("set "+collection, err)
	}

	res, err := p.db.ExecContext(ctx,
		`UPDATE documents SET fields = fields || $3, updated_at = NOW()
		 WHERE collection = $1 AND id = $2`,
		collection, id, raw,
	)
	if err != nil {
		return collabErr("set "+collection, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return collabErr("set "+collection, err)
	}
	if n == 0 {
		return notFound(collection, id)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, collection, id string) error {
	res, err := p.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	)
	if err != nil {
		return collabErr("delete "+collection, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return collabErr("delete "+collection, err)
	}
	if n == 0 {
		return notFound(collection, id)
	}
	return nil
}
