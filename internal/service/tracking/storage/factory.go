package storage

import (
	"context"
	"strings"

	"github.com/darkkaiser/tracking-server/internal/service/contract"
)

// 지원하는 저장소 드라이버
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Options 저장소 생성 옵션입니다.
type Options struct {
	// Driver memory, file, sqlite 중 하나
	Driver string

	// DSN sqlite 드라이버의 데이터 소스 이름
	DSN string

	// Dir file 드라이버의 데이터 디렉토리
	Dir string
}

// New Options.Driver에 해당하는 저장소를 생성합니다. Driver가 비어 있으면 memory를 사용합니다.
func New(ctx context.Context, opts Options) (contract.RecordStore, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverMemory:
		return NewMemoryStore(), nil

	case DriverFile:
		return NewFileStore(opts.Dir)

	case DriverSQLite:
		dsn := opts.DSN
		if dsn == "" {
			dsn = ":memory:"
		}
		return NewSQLiteStore(ctx, dsn)

	default:
		return nil, NewErrUnsupportedDriver(opts.Driver)
	}
}
