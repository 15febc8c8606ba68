package resilience

import (
	"errors"
	"net"
	"net/http"
	"strings"
	"syscall"
)

// transient is implemented by errors that know whether they are worth
// retrying, such as HTTP status errors from API clients.
type transient interface {
	Transient() bool
}

// TransientStatus reports whether an HTTP status signals a temporary
// condition: timeouts, throttling and gateway or server failures.
func TransientStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

var transientMessages = []string{
	"connection reset by peer",
	"broken pipe",
	"no such host",
	"i/o timeout",
	"tls handshake timeout",
	"timeout exceeded",
	"server closed idle connection",
}

// IsTransient reports whether err, or anything it wraps, is a temporary
// failure. Errors that classify themselves via a Transient method decide for
// themselves; otherwise network timeouts and dropped connections count.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var te transient
	if errors.As(err, &te) {
		return te.Transient()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNABORTED) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, p := range transientMessages {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
