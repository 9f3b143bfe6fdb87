package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-social/internal/domain/entity"
	"github.com/oksasatya/go-ddd-social/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, body, created_at, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, p.Title, p.Body, p.CreatedAt, p.AuthorID)

	return mapError(row.Scan(&p.ID))
}

func (r *PostRepository) Find(ctx context.Context, c repository.PostCriteria) ([]entity.Post, error) {
	query, args := buildPostQuery(c)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Post, 0)
	for rows.Next() {
		var p entity.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.CreatedAt, &p.AuthorID); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM posts WHERE author_id = $1`, authorID).Scan(&n)
	return n, err
}

// buildPostQuery renders criteria into SQL with positional arguments.
func buildPostQuery(c repository.PostCriteria) (string, []any) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if c.ID != "" {
		where = append(where, "id = "+arg(c.ID))
	}
	if len(c.IDs) > 0 {
		where = append(where, "id = ANY("+arg(c.IDs)+"::uuid[])")
	}
	if c.AuthorID != "" {
		where = append(where, "author_id = "+arg(c.AuthorID))
	}

	var b strings.Builder
	b.WriteString("SELECT id, title, body, created_at, author_id FROM posts")
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	if c.NewestFirst {
		b.WriteString(" ORDER BY created_at DESC, id DESC")
	}
	if c.Limit > 0 {
		b.WriteString(" LIMIT " + arg(c.Limit))
	}
	return b.String(), args
}

var _ repository.PostRepository = (*PostRepository)(nil)
