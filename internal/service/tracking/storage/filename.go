package storage

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/iancoleman/strcase"
)

const (
	recordFilePrefix = "record-"
	recordFileExt    = ".json"

	// maxReadableNameBytes 파일명에 포함되는 송장번호 부분의 최대 길이
	maxReadableNameBytes = 64
)

var filenameReplacer = strings.NewReplacer(
	"..", "--",
	"/", "-",
	"\\", "-",
	"|", "-",
	"<", "-",
	">", "-",
	":", "-",
	"\"", "-",
	"?", "-",
	"*", "-",
	" ", "-",
)

// recordFilename 송장번호로 레코드 파일명을 만듭니다.
//
// "record-{kebab-case 송장번호}-{16자리 FNV-64a 해시}.json"
//
// 대소문자를 구분하지 않는 파일 시스템에서도 충돌하지 않도록 원본 송장번호의 해시를 붙입니다.
func recordFilename(trackingID string) string {
	readable := filenameReplacer.Replace(strcase.ToKebab(trackingID))
	if len(readable) > maxReadableNameBytes {
		readable = readable[:maxReadableNameBytes]
	}
	readable = strings.Trim(readable, "-.")
	if readable == "" {
		readable = "unnamed"
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(trackingID))

	return fmt.Sprintf("%s%s-%016x%s", recordFilePrefix, readable, h.Sum64(), recordFileExt)
}

func isRecordFilename(name string) bool {
	return strings.HasPrefix(name, recordFilePrefix) && strings.HasSuffix(name, recordFileExt)
}
