package storage

import (
	"context"
	"strings"
	"time"

	"github.com/darkkaiser/tracking-server/internal/service/contract"
	applog "github.com/darkkaiser/tracking-server/pkg/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteDriverName = "sqlite3"

// createdDayLayout created_day 컬럼에 저장하는 로컬 날짜 형식
const createdDayLayout = "2006-01-02"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tracking_records (
	tracking_id         TEXT PRIMARY KEY,
	origin_country      TEXT NOT NULL,
	destination_country TEXT NOT NULL,
	weight_grams        INTEGER NOT NULL,
	customer_id         TEXT NOT NULL,
	customer_name       TEXT NOT NULL,
	customer_slug       TEXT NOT NULL,
	created_at          TIMESTAMP NOT NULL,
	created_day         TEXT NOT NULL,
	updated_at          TIMESTAMP NULL
);
CREATE INDEX IF NOT EXISTS idx_tracking_records_customer_id ON tracking_records (customer_id);
CREATE INDEX IF NOT EXISTS idx_tracking_records_created_day ON tracking_records (created_day);
`

const sqliteSelectColumns = `tracking_id, origin_country, destination_country, weight_grams,
	customer_id, customer_name, customer_slug, created_at, updated_at`

// sqliteRow created_day처럼 조회 전용으로 계산해 두는 컬럼을 함께 저장하기 위한 행 표현입니다.
type sqliteRow struct {
	contract.TrackingRecord
	CreatedDay string `db:"created_day"`
}

// SQLiteStore SQLite 데이터베이스에 레코드를 보관하는 저장소입니다.
type SQLiteStore struct {
	db *sqlx.DB
}

var _ contract.RecordStore = (*SQLiteStore)(nil)

// NewSQLiteStore dsn으로 SQLite 데이터베이스를 열고 스키마를 준비합니다.
//
//	NewSQLiteStore(ctx, "file:tracking.db?_journal_mode=WAL")
//	NewSQLiteStore(ctx, ":memory:")
func NewSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, NewErrDatabaseFailed(err, "연결")
	}

	// SQLite는 단일 writer이며 :memory: 데이터베이스는 커넥션마다 분리되므로 커넥션을 하나만 사용한다.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, NewErrDatabaseFailed(err, "연결 확인")
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, NewErrDatabaseFailed(err, "스키마 생성")
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"driver": sqliteDriverName,
		"dsn":    dsn,
	}).Debug("SQLite 저장소 초기화 완료")

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, r *contract.TrackingRecord) (*contract.TrackingRecord, error) {
	if err := validateRecord(r); err != nil {
		return nil, err
	}

	row := sqliteRow{
		TrackingRecord: *r.Clone(),
		CreatedDay:     r.CreatedAt.In(time.Local).Format(createdDayLayout),
	}

	const query = `INSERT OR REPLACE INTO tracking_records (
		tracking_id, origin_country, destination_country, weight_grams,
		customer_id, customer_name, customer_slug, created_at, created_day, updated_at
	) VALUES (
		:tracking_id, :origin_country, :destination_country, :weight_grams,
		:customer_id, :customer_name, :customer_slug, :created_at, :created_day, :updated_at
	)`
	if _, err := s.db.NamedExecContext(ctx, query, row); err != nil {
		return nil, NewErrDatabaseFailed(err, "레코드 저장")
	}

	return r.Clone(), nil
}

func (s *SQLiteStore) FindAll(ctx context.Context) ([]*contract.TrackingRecord, error) {
	return s.FindByFilters(ctx, contract.RecordFilter{})
}

// FindByFilters 정확히 일치하는 조건은 SQL로 거르고, 고객 이름 부분 일치는 조회 후 RecordFilter.Match로 검사합니다.
//
// SQLite의 LIKE는 ASCII 범위에서만 대소문자를 무시하므로 이름 조건은 SQL에 넣지 않는다.
func (s *SQLiteStore) FindByFilters(ctx context.Context, f contract.RecordFilter) ([]*contract.TrackingRecord, error) {
	var (
		where []string
		args  []any
	)

	if f.Origin != nil {
		where = append(where, "origin_country = ?")
		args = append(args, string(*f.Origin))
	}
	if f.Destination != nil {
		where = append(where, "destination_country = ?")
		args = append(args, string(*f.Destination))
	}
	if f.WeightGrams != nil {
		where = append(where, "weight_grams = ?")
		args = append(args, *f.WeightGrams)
	}
	if f.CreatedOn != nil {
		where = append(where, "created_day = ?")
		args = append(args, f.CreatedOn.In(time.Local).Format(createdDayLayout))
	}
	if f.CustomerID != nil {
		where = append(where, "customer_id = ?")
		args = append(args, f.CustomerID.String())
	}
	if f.CustomerSlug != nil {
		where = append(where, "customer_slug = ?")
		args = append(args, *f.CustomerSlug)
	}

	query := "SELECT " + sqliteSelectColumns + " FROM tracking_records"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY tracking_id"

	var rows []*contract.TrackingRecord
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, NewErrDatabaseFailed(err, "레코드 조회")
	}

	result := make([]*contract.TrackingRecord, 0, len(rows))
	for _, r := range rows {
		if f.Match(r) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM tracking_records"); err != nil {
		return 0, NewErrDatabaseFailed(err, "레코드 수 조회")
	}
	return n, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
