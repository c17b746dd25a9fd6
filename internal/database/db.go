package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB 是 store.Postgres 所需的最小 pgx 介面，*pgxpool.Pool 直接實作
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// FakeDB 以函式欄位替代連線池；未設定的查詢方法會 panic，Close 為 no-op
type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func()
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn == nil {
		panic("FakeDB: unexpected Exec " + sql)
	}
	return f.ExecFn(ctx, sql, args...)
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn == nil {
		panic("FakeDB: unexpected Query " + sql)
	}
	return f.QueryFn(ctx, sql, args...)
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn == nil {
		panic("FakeDB: unexpected QueryRow " + sql)
	}
	return f.QueryRowFn(ctx, sql, args...)
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn == nil {
		panic("FakeDB: unexpected Ping")
	}
	return f.PingFn(ctx)
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}

// FakeRow 模擬單列結果，例如 INSERT ... RETURNING id
type FakeRow struct {
	Values []any
	Err    error
}

func (r FakeRow) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return scanInto(r.Values, dest)
}

// FakeRows 以記憶體資料實作 pgx.Rows；ScanErr 於 Scan 回傳，IterErr 由 Err() 回傳
type FakeRows struct {
	Data    [][]any
	ScanErr error
	IterErr error
	Closed  bool

	idx int
}

func (r *FakeRows) Close()                                       { r.Closed = true }
func (r *FakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *FakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *FakeRows) RawValues() [][]byte                          { return nil }
func (r *FakeRows) Conn() *pgx.Conn                              { return nil }

func (r *FakeRows) Err() error {
	return r.IterErr
}

func (r *FakeRows) Next() bool {
	if r.idx < len(r.Data) {
		r.idx++
		return true
	}
	r.Closed = true
	return false
}

func (r *FakeRows) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	return scanInto(r.Data[r.idx-1], dest)
}

func (r *FakeRows) Values() ([]any, error) {
	return r.Data[r.idx-1], nil
}

// scanInto 只支援 users 表用到的欄位型別
func scanInto(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d destinations", len(values), len(dest))
	}
	for i, v := range values {
		switch d := dest[i].(type) {
		case *int64:
			n, ok := v.(int64)
			if !ok {
				return fmt.Errorf("scan: column %d: %T is not int64", i, v)
			}
			*d = n
		case *string:
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("scan: column %d: %T is not string", i, v)
			}
			*d = s
		default:
			return fmt.Errorf("scan: column %d: unsupported destination %T", i, dest[i])
		}
	}
	return nil
}
