package service

import (
	"regexp"
	"strings"
	"time"
)

// Paper codes are stamped in Indian Standard Time whatever the server zone is.
var paperCodeZone = time.FixedZone("IST", 5*60*60+30*60)

var paperCodePattern = regexp.MustCompile(`^[A-Z]{3}\d{8}\d{4}[A-Z]{2}$`)

// tradePrefix takes the first three ASCII letters of the trade name,
// upper-cased and padded with X.
func tradePrefix(tradeName string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(tradeName) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() == 3 {
				break
			}
		}
	}
	for b.Len() < 3 {
		b.WriteByte('X')
	}
	return b.String()
}

// newPaperCode builds <prefix><yyyyMMdd><HHmm><two random letters>.
func newPaperCode(tradeName string, now time.Time, rng randSource) string {
	suffix := []byte{byte('A' + rng.IntN(26)), byte('A' + rng.IntN(26))}
	return tradePrefix(tradeName) + now.In(paperCodeZone).Format("200601021504") + string(suffix)
}

// normalizePaperCode trims and upper-cases a code and checks its shape.
func normalizePaperCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !paperCodePattern.MatchString(code) {
		return "", ErrInvalidPaperCode
	}
	return code, nil
}
