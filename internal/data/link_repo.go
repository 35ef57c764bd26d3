package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shortlink/internal/domain"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

const (
	linksTable = "links"

	pqUniqueViolation = "23505"
)

var linkColumns = []string{
	"id",
	"code",
	"original_url",
	"created_at",
	"expires_at",
	"click_count",
	"deleted_at",
}

// Compile-time interface check
var _ domain.LinkRepository = (*LinkRepo)(nil)

// LinkRepo is the SQL link store.
type LinkRepo struct {
	data *Data
	log  *log.Helper
}

// NewLinkRepo creates a new SQL link store.
func NewLinkRepo(data *Data, logger log.Logger) *LinkRepo {
	return &LinkRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *LinkRepo) builder() *entsql.DialectBuilder {
	return entsql.Dialect(r.data.dialect)
}

// Insert stores a new link and sets its ID. A code already present, deleted
// or not, yields domain.ErrCodeTaken.
func (r *LinkRepo) Insert(ctx context.Context, link *domain.Link) error {
	insert := r.builder().
		Insert(linksTable).
		Columns("code", "original_url", "created_at", "expires_at", "click_count").
		Values(link.Code, link.OriginalURL, link.CreatedAt.UTC(), nullTime(link.ExpiresAt), link.ClickCount)

	if r.data.dialect == dialect.Postgres {
		query, args := insert.Returning("id").Query()
		if err := r.data.db.QueryRowContext(ctx, query, args...).Scan(&link.ID); err != nil {
			return insertError(err)
		}
		return nil
	}

	query, args := insert.Query()
	res, err := r.data.db.ExecContext(ctx, query, args...)
	if err != nil {
		return insertError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read inserted id: %w", err)
	}
	link.ID = id
	return nil
}

// FindByCode returns the link stored under code, deleted or not.
func (r *LinkRepo) FindByCode(ctx context.Context, code string) (*domain.Link, error) {
	t := r.builder().Table(linksTable)
	query, args := r.builder().
		Select(columnsOf(t)...).
		From(t).
		Where(entsql.EQ(t.C("code"), code)).
		Query()

	link, err := scanLink(r.data.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return link, nil
}

// IncrementClickCount adds one to the click counter in a single statement.
func (r *LinkRepo) IncrementClickCount(ctx context.Context, code string) error {
	query, args := r.builder().
		Update(linksTable).
		Add("click_count", 1).
		Where(entsql.EQ("code", code)).
		Query()

	res, err := r.data.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}

// SoftDelete sets deleted_at on an active link and returns the number of
// rows it changed.
func (r *LinkRepo) SoftDelete(ctx context.Context, code string, at time.Time) (int64, error) {
	query, args := r.builder().
		Update(linksTable).
		Set("deleted_at", at.UTC()).
		Where(entsql.And(
			entsql.EQ("code", code),
			entsql.IsNull("deleted_at"),
		)).
		Query()

	res, err := r.data.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListActive returns links that are not deleted, newest first.
func (r *LinkRepo) ListActive(ctx context.Context) ([]*domain.Link, error) {
	t := r.builder().Table(linksTable)
	return r.list(ctx, t, entsql.IsNull(t.C("deleted_at")))
}

// ListAll returns every link, newest first.
func (r *LinkRepo) ListAll(ctx context.Context) ([]*domain.Link, error) {
	return r.list(ctx, r.builder().Table(linksTable), nil)
}

func (r *LinkRepo) list(ctx context.Context, t *entsql.SelectTable, where *entsql.Predicate) ([]*domain.Link, error) {
	selector := r.builder().
		Select(columnsOf(t)...).
		From(t).
		OrderBy(entsql.Desc(t.C("created_at")), entsql.Desc(t.C("id")))
	if where != nil {
		selector.Where(where)
	}
	query, args := selector.Query()

	rows, err := r.data.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]*domain.Link, 0)
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return links, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLink(row rowScanner) (*domain.Link, error) {
	var (
		link      domain.Link
		expiresAt sql.NullTime
		deletedAt sql.NullTime
	)
	if err := row.Scan(
		&link.ID,
		&link.Code,
		&link.OriginalURL,
		&link.CreatedAt,
		&expiresAt,
		&link.ClickCount,
		&deletedAt,
	); err != nil {
		return nil, err
	}
	link.CreatedAt = link.CreatedAt.UTC()
	link.ExpiresAt = timePtr(expiresAt)
	link.DeletedAt = timePtr(deletedAt)
	return &link, nil
}

func columnsOf(t *entsql.SelectTable) []string {
	cols := make([]string, len(linkColumns))
	for i, c := range linkColumns {
		cols[i] = t.C(c)
	}
	return cols
}

func insertError(err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %w", domain.ErrCodeTaken, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return false
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
