// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// PostgresStore keeps every collection in a single JSONB table created by
// the documents migration.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open connection pool. The caller owns the pool
// lifetime only if it does not call Close.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// buildSelect renders the SQL and arguments for a validated query.
func buildSelect(q Query) (string, []any, error) {
	if err := q.Validate(); err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	args := []any{q.Collection}
	sb.WriteString(`SELECT id::text, data FROM documents WHERE collection = $1`)

	for _, f := range q.Where {
		payload, err := json.Marshal(map[string]any{f.Field: f.Value})
		if err != nil {
			return "", nil, fmt.Errorf("%w: filter value for %q: %v", ErrInvalidQuery, f.Field, err)
		}
		args = append(args, string(payload))
		fmt.Fprintf(&sb, ` AND data @> $%d::jsonb`, len(args))
	}

	if q.OrderBy != "" {
		dir := "ASC"
		if q.Direction == Desc {
			dir = "DESC"
		}
		// Numbers sort numerically, everything else by its text form.
		// The field name is safe to inline: Validate restricts it to [A-Za-z0-9_].
		fmt.Fprintf(&sb,
			` ORDER BY CASE WHEN jsonb_typeof(data->'%[1]s') = 'number' THEN (data->>'%[1]s')::numeric END %[2]s NULLS LAST, data->>'%[1]s' %[2]s NULLS LAST, created_at ASC`,
			q.OrderBy, dir)
	} else {
		sb.WriteString(` ORDER BY created_at ASC`)
	}

	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&sb, ` LIMIT $%d`, len(args))
	}

	return sb.String(), args, nil
}

// Find runs the query against the documents table.
func (s *PostgresStore) Find(ctx context.Context, q Query) ([]Document, error) {
	query, args, err := buildSelect(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", q.Collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan %s document: %w", q.Collection, err)
		}
		data := make(map[string]any)
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decode %s document %s: %w", q.Collection, id, err)
		}
		docs = append(docs, Document{ID: id, Data: data})
	}
	return docs, rows.Err()
}

// Insert stores a new document. The ID comes from the table default.
func (s *PostgresStore) Insert(ctx context.Context, collection string, data map[string]any) (string, error) {
	if collection == "" {
		return "", fmt.Errorf("%w: empty collection", ErrInvalidQuery)
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", collection, err)
	}

	var id string
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO documents (collection, data) VALUES ($1, $2::jsonb) RETURNING id::text`,
		collection, string(payload),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert %s document: %w", collection, err)
	}
	return id, nil
}

// Close closes the underlying pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
