package storage

import (
	"fmt"

	apperrors "github.com/darkkaiser/tracking-server/internal/pkg/errors"
)

var (
	// ErrPathTraversalDetected 레코드 파일 경로가 저장소 디렉토리를 벗어날 때 반환합니다.
	ErrPathTraversalDetected = apperrors.New(apperrors.Internal, "보안 정책 위반: 허용되지 않은 경로 접근 시도로 인해 요청이 차단되었습니다")

	// ErrNilRecord nil 레코드를 저장하려 할 때 반환합니다.
	ErrNilRecord = apperrors.New(apperrors.InvalidInput, "저장할 송장 레코드가 비어 있습니다")

	// ErrEmptyTrackingID 송장번호가 비어 있는 레코드를 저장하려 할 때 반환합니다.
	ErrEmptyTrackingID = apperrors.New(apperrors.InvalidInput, "송장번호가 비어 있는 레코드는 저장할 수 없습니다")

	// ErrStoreClosed 닫힌 저장소를 사용하려 할 때 반환합니다.
	ErrStoreClosed = apperrors.New(apperrors.Unavailable, "저장소가 이미 닫혔습니다")
)

// NewErrUnsupportedDriver 알 수 없는 저장소 드라이버가 설정되었을 때 반환하는 에러를 생성합니다.
func NewErrUnsupportedDriver(driver string) error {
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지원하지 않는 저장소 드라이버입니다: '%s' (memory, file, sqlite 중 선택)", driver))
}

// NewErrDirectoryAccessFailed 저장소 디렉토리 생성 또는 접근에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrDirectoryAccessFailed(err error, dir string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("저장소 초기화 실패: 디렉토리 접근 불가 (%s)", dir))
}

// NewErrJSONMarshalFailed 레코드를 JSON으로 직렬화하지 못했을 때 반환하는 에러를 생성합니다.
func NewErrJSONMarshalFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "송장 레코드 직렬화(JSON Marshal) 중 오류가 발생했습니다")
}

// NewErrJSONUnmarshalFailed 레코드 파일을 역직렬화하지 못했을 때 반환하는 에러를 생성합니다.
func NewErrJSONUnmarshalFailed(err error, filename string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("송장 레코드 파일(%s)을 해석할 수 없습니다", filename))
}

// NewErrFileReadFailed 레코드 파일 또는 디렉토리를 읽지 못했을 때 반환하는 에러를 생성합니다.
func NewErrFileReadFailed(err error) error {
	return apperrors.Wrap(err, apperrors.System, "송장 레코드 조회 실패: 파일 읽기 중 오류가 발생했습니다")
}

// NewErrFileWriteFailed 레코드 파일 쓰기 단계(임시 파일 생성, 쓰기, 동기화, 이름 변경)에서 실패했을 때 반환하는 에러를 생성합니다.
func NewErrFileWriteFailed(err error, step string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("송장 레코드 저장 실패: %s 중 오류가 발생했습니다", step))
}

// NewErrDatabaseFailed 데이터베이스 작업에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrDatabaseFailed(err error, op string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("데이터베이스 %s 실패", op))
}
