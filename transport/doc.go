// Package transport provides the HTTP transports used by bridges.
//
// A Transport sends a fully composed Call and returns a Reply whose body is
// still unread. Two implementations are available:
//
//   - HTTP: net/http with optional TLS and HTTP/2
//   - Resty: github.com/go-resty/resty/v2
//
// Transports are long-lived and shared by every request issued through a
// bridge; create them once:
//
//	t, err := transport.New(transport.KindHTTP, transport.Config{
//	    Timeout: 10 * time.Second,
//	    TLS:     &transport.TLSConfig{CAFile: "/etc/ssl/internal-ca.pem"},
//	})
//
// Deadlines belong to the transport (Config.Timeout) or to the caller's
// context. Transports never retry.
package transport
