package lib

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"strings"
)

const couponPrefix = "BIGODE"

// GenerateCouponCode produces a wheel coupon in the format BIGODEXXXX where
// XXXX is a random alphanumeric suffix.
func GenerateCouponCode() string {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 4

	suffix := make([]byte, length)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			// crypto/rand failing means the platform is broken; fall back
			// to a constant so the coupon is still usable.
			suffix[i] = 'X'
			continue
		}
		suffix[i] = chars[n.Int64()]
	}

	return couponPrefix + string(suffix)
}

// IsCouponCode reports whether a string looks like a wheel coupon.
func IsCouponCode(code string) bool {
	if len(code) != len(couponPrefix)+4 {
		return false
	}
	if !strings.HasPrefix(code, couponPrefix) {
		return false
	}
	for _, c := range code[len(couponPrefix):] {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// ClientIP returns the caller's address. chi's RealIP middleware has already
// folded X-Forwarded-For / X-Real-IP into RemoteAddr by the time handlers
// run, so only the port needs stripping here.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// FormatSpinKey builds the cache key that fast-paths wheel eligibility:
// one entry per IP per UTC day.
func FormatSpinKey(ip, day string) string {
	return fmt.Sprintf("wheel:spin:%s:%s", ip, day)
}
