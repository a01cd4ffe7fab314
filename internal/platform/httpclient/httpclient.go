package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultTimeout  = 10 * time.Second
	DefaultMaxBytes = 20 << 20 // 20MB, suficiente para planillas e imágenes
)

var ErrTooLarge = errors.New("httpclient: response too large")

// Client envuelve *http.Client con helpers para descargar archivos (planillas, imágenes).
type Client struct {
	HTTP     *http.Client
	MaxBytes int64
}

// New crea un Client con timeout razonable.
func New(timeout time.Duration) *Client {
	return NewWithTransport(timeout, nil)
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	return &Client{
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
		MaxBytes: DefaultMaxBytes,
	}
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d url=%s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("http error: status=%d url=%s body=%s", e.StatusCode, e.URL, e.Body)
}

// IsRemote indica si ref es una URL http(s).
func IsRemote(ref string) bool {
	ref = strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Download hace GET y devuelve el body completo y su Content-Type.
// - error *HTTPError si status no es 2xx
// - ErrTooLarge si el body supera MaxBytes
func (c *Client) Download(ctx context.Context, url string) ([]byte, string, error) {
	if c == nil || c.HTTP == nil {
		return nil, "", errors.New("httpclient: nil client")
	}

	url = strings.TrimSpace(url)
	if !IsRemote(url) {
		return nil, "", fmt.Errorf("httpclient: not an http(s) url: %q", url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "*/*")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Leer body (limitado) solo para el mensaje
		raw, _ := readAtMost(resp.Body, 1<<10)
		return nil, "", &HTTPError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	max := c.MaxBytes
	if max <= 0 {
		max = DefaultMaxBytes
	}
	raw, err := readAtMost(resp.Body, max+1)
	if err != nil {
		return nil, "", fmt.Errorf("httpclient: read body: %w", err)
	}
	if int64(len(raw)) > max {
		return nil, "", ErrTooLarge
	}

	return raw, resp.Header.Get("Content-Type"), nil
}

func readAtMost(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = 1 << 20
	}
	lr := io.LimitReader(r, max)
	return io.ReadAll(lr)
}
