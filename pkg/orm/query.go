// Package orm is a thin fluent wrapper over GORM. It keeps repositories free
// of *gorm.DB plumbing and owns the paginator used by every listing endpoint.
package orm

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vitrinehq/vitrine/pkg/database"
	"github.com/vitrinehq/vitrine/pkg/metrics"
)

type Query struct {
	db *gorm.DB
}

func DB() *Query {
	return &Query{db: database.DB}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

// WhereLike adds a case-insensitive substring condition over the given
// columns, OR-combined. The term is matched literally: LIKE wildcards inside
// it are escaped so user input can never change the shape of the query.
func (q *Query) WhereLike(term string, columns ...string) *Query {
	if term == "" || len(columns) == 0 {
		return q
	}

	pattern := "%" + EscapeLike(strings.ToLower(term)) + "%"

	var sb strings.Builder
	args := make([]interface{}, 0, len(columns))
	for i, col := range columns {
		if i > 0 {
			sb.WriteString(" OR ")
		}
		sb.WriteString("LOWER(" + col + ") LIKE ? ESCAPE '\\'")
		args = append(args, pattern)
	}

	return &Query{db: q.db.Where(sb.String(), args...)}
}

// EscapeLike escapes LIKE metacharacters so term is treated as a literal.
func EscapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

func (q *Query) Count(n *int64) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Session(&gorm.Session{}).Count(n).Error
}

func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

func (q *Query) Create(v interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(v).Error
}

func (q *Query) Save(v interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Save(v).Error
}

func (q *Query) Delete(v interface{}) (int64, error) {
	defer metrics.ObserveDBQuery("delete", time.Now())
	res := q.db.Delete(v)
	return res.RowsAffected, res.Error
}

// GetWithPagination runs the query twice: once for the filtered count, once
// for the requested page. perPage == PerPageAll returns every matching row on
// a single page.
func (q *Query) GetWithPagination(dest interface{}, page, perPage int) (Pagination, error) {
	var total int64
	if err := q.Count(&total); err != nil {
		return Pagination{}, err
	}

	p := NewPagination(page, perPage, total)

	tx := q.db
	if !p.all() {
		tx = tx.Offset(p.offset()).Limit(p.PerPage)
	}

	defer metrics.ObserveDBQuery("select", time.Now())
	if err := tx.Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	return p, nil
}
