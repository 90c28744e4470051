package contract

import (
	"strings"

	apperrors "github.com/darkkaiser/tracking-server/internal/pkg/errors"
)

// Country 송장 발급이 지원되는 국가 코드입니다.
type Country string

// 지원 국가 목록
const (
	CountryMalaysia  Country = "MY"
	CountrySingapore Country = "SG"
	CountryIndonesia Country = "ID"
	CountryThailand  Country = "TH"
	CountryUSA       Country = "US"
	CountryBrazil    Country = "BR"
	CountryIndia     Country = "IN"
	CountryChina     Country = "CN"
	CountryVietnam   Country = "VN"
)

var supportedCountries = []Country{
	CountryMalaysia,
	CountrySingapore,
	CountryIndonesia,
	CountryThailand,
	CountryUSA,
	CountryBrazil,
	CountryIndia,
	CountryChina,
	CountryVietnam,
}

// Countries 지원되는 국가 코드 목록을 반환합니다.
func Countries() []Country {
	return append([]Country(nil), supportedCountries...)
}

// ParseCountry 국가 코드를 Country로 변환합니다. 대소문자를 구분합니다.
func ParseCountry(code string) (Country, error) {
	c := Country(code)
	if !c.IsValid() {
		codes := make([]string, 0, len(supportedCountries))
		for _, s := range Countries() {
			codes = append(codes, s.String())
		}
		return "", apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 국가 코드입니다: %q (지원: %s)", code, strings.Join(codes, ", "))
	}
	return c, nil
}

func (c Country) IsValid() bool {
	for _, s := range supportedCountries {
		if c == s {
			return true
		}
	}
	return false
}

func (c Country) String() string {
	return string(c)
}
