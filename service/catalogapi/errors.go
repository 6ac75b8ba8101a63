package catalogapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
)

// Kind classifies a failed call for display.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindNotFound     Kind = "not-found"
	KindRateLimited  Kind = "rate-limited"
	KindServerError  Kind = "server-error"
	KindTimeout      Kind = "timeout"
	KindOffline      Kind = "offline"
	KindUnknown      Kind = "unknown"
)

var messages = map[Kind]string{
	KindUnauthorized: "Bu işlem için yetkiniz yok. Lütfen tekrar giriş yapın.",
	KindNotFound:     "Aradığınız ürün bulunamadı.",
	KindRateLimited:  "Çok fazla istek gönderildi. Lütfen biraz sonra tekrar deneyin.",
	KindServerError:  "Sunucuda bir hata oluştu. Lütfen daha sonra tekrar deneyin.",
	KindTimeout:      "İstek zaman aşımına uğradı. Lütfen tekrar deneyin.",
	KindOffline:      "İnternet bağlantınızı kontrol edin.",
	KindUnknown:      "Beklenmeyen bir hata oluştu.",
}

// APIError is a non-2xx response from the search API.
type APIError struct {
	Status int
	Path   string
	Body   string
	Err    error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalogapi: %s: status %d: %v", e.Path, e.Status, e.Err)
	}
	return fmt.Sprintf("catalogapi: %s: status %d", e.Path, e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// Classify maps err to a Kind. A nil error yields "".
func Classify(err error) Kind {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return kindForStatus(apiErr.Status)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return KindTimeout
		}
		return KindOffline
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) || errors.Is(err, syscall.ECONNRESET) {
		return KindOffline
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return KindOffline
	}
	return KindUnknown
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= 500:
		return KindServerError
	}
	return KindUnknown
}

// Message is the user-facing text for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return KindMessage(Classify(err))
}

func KindMessage(k Kind) string {
	if m, ok := messages[k]; ok {
		return m
	}
	return messages[KindUnknown]
}

// HTTPStatus is the status a gateway should answer with for k.
func HTTPStatus(k Kind) int {
	switch k {
	case KindUnauthorized, KindServerError, KindUnknown:
		return http.StatusBadGateway
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindTimeout, KindOffline:
		return http.StatusGatewayTimeout
	}
	return http.StatusOK
}
