package database

import (
	"errors"
	"fmt"
	"strings"
)

// 支援的儲存後端
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

var ErrUnsupportedURL = errors.New("unsupported database url")

// ParseURL 依 DATABASE_URL 的 scheme 判斷後端，並回傳交給 driver 的 DSN
//
//	postgres://... / postgresql://...  → postgres，DSN 原樣保留
//	sqlite://<dsn>                     → sqlite，去掉 scheme
//	file:<dsn>                         → sqlite，原樣保留（mattn/go-sqlite3 URI）
func ParseURL(raw string) (backend string, dsn string, err error) {
	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return BackendPostgres, raw, nil
	case strings.HasPrefix(raw, "sqlite://"):
		dsn = strings.TrimPrefix(raw, "sqlite://")
		if dsn == "" {
			return "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedURL)
		}
		return BackendSQLite, dsn, nil
	case strings.HasPrefix(raw, "file:"):
		return BackendSQLite, raw, nil
	}
	return "", "", fmt.Errorf("%w: %q", ErrUnsupportedURL, raw)
}
