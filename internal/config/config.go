// Package config 설정 파일, 환경 변수, 기본값을 병합하여 애플리케이션 설정을 로드합니다.
//
// 우선순위는 환경 변수 > 설정 파일 > 기본값 순이며, 로드 직후 모든 항목을 검증합니다.
// 검증에 실패하면 서버는 기동하지 않습니다.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	apperrors "github.com/darkkaiser/tracking-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "tracking-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 읽는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: TRACKING_TRACKING__INSTANCE_ID -> tracking.instance_id
	EnvPrefix = "TRACKING_"
)

// 기본값
const (
	DefaultPattern       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	DefaultIDLength      = 10
	DefaultInstanceID    = "01"
	DefaultStartRange    = 1000
	DefaultEndRange      = 9999
	DefaultPadding       = 4
	DefaultPrefix        = "MY"
	DefaultStoreDriver   = "memory"
	DefaultStoreDir      = "data"
	DefaultListenPort    = 8080
	DefaultMonitorSpec   = "0 */5 * * * *"
	DefaultWarnThreshold = 0.1
	DefaultRatePerSecond = 20
	DefaultRateBurst     = 40
)

// defaultValues 설정 파일과 환경 변수가 비어 있을 때 사용할 값입니다.
func defaultValues() map[string]any {
	return map[string]any{
		"debug": false,

		"tracking.pattern":        DefaultPattern,
		"tracking.id_length":      DefaultIDLength,
		"tracking.instance_id":    DefaultInstanceID,
		"tracking.start_range":    DefaultStartRange,
		"tracking.end_range":      DefaultEndRange,
		"tracking.padding":        DefaultPadding,
		"tracking.default_prefix": DefaultPrefix,

		"store.driver":           DefaultStoreDriver,
		"store.dir":              DefaultStoreDir,
		"store.seed_sample_data": false,

		"monitor.enabled":           true,
		"monitor.time_spec":         DefaultMonitorSpec,
		"monitor.warning_threshold": DefaultWarnThreshold,

		"tracking_api.ws.listen_port":                 DefaultListenPort,
		"tracking_api.cors.allow_origins":             []string{"*"},
		"tracking_api.rate_limit.requests_per_second": DefaultRatePerSecond,
		"tracking_api.rate_limit.burst":               DefaultRateBurst,
	}
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다. 기본 설정 파일이 없으면 기본값과 환경 변수만 사용합니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, true)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 애플리케이션 설정을 로드합니다. 파일이 없으면 에러를 반환합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, false)
}

func load(filename string, optional bool) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값
	if err := k.Load(confmap.Provider(defaultValues(), "."), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist) && optional:
			// 기본 설정 파일이 없으면 기본값으로 기동한다.
		case errors.Is(err, fs.ErrNotExist):
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		default:
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (정의되지 않은 키는 에러)
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수 이름을 설정 키로 변환합니다.
// 접두사를 제거하고 소문자로 바꾼 뒤 이중 언더스코어(__)를 계층 구분자(.)로 바꿉니다.
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
