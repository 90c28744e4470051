package idgen

import apperrors "github.com/darkkaiser/tracking-server/internal/pkg/errors"

// ErrExhaustedRange 설정된 시퀀스 범위를 모두 사용했을 때 반환됩니다.
// 프로세스를 새로운 범위로 재시작하기 전까지 해소되지 않으므로 재시도해서는 안 됩니다.
var ErrExhaustedRange = apperrors.New(apperrors.Exhausted, "설정된 송장번호 시퀀스 범위가 모두 소진되었습니다")
