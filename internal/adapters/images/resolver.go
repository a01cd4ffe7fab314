package images

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"pet-care-info/internal/platform/httpclient"
	ports "pet-care-info/internal/ports/images"
)

const DefaultTimeout = 5 * time.Second

// Resolver implementa ports.Resolver para paths locales y URLs http(s).
type Resolver struct {
	client   *httpclient.Client
	timeout  time.Duration
	readFile func(name string) ([]byte, error)
}

// NewResolver crea un resolver. timeout acota cada descarga remota (0 => DefaultTimeout).
func NewResolver(client *httpclient.Client, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if client == nil {
		client = httpclient.New(timeout)
	}
	return &Resolver{
		client:   client,
		timeout:  timeout,
		readFile: os.ReadFile,
	}
}

func (r *Resolver) Resolve(ctx context.Context, ref string) (ports.Image, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ports.Image{}, unavailable(ref, ports.CauseNotFound, errors.New("empty image reference"))
	}

	var (
		data []byte
		err  error
	)
	if httpclient.IsRemote(ref) {
		data, err = r.fetch(ctx, ref)
	} else {
		data, err = r.open(ref)
	}
	if err != nil {
		return ports.Image{}, err
	}

	return decode(ref, data)
}

func (r *Resolver) fetch(ctx context.Context, ref string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	data, _, err := r.client.Download(ctx, ref)
	if err == nil {
		return data, nil
	}

	var he *httpclient.HTTPError
	switch {
	case isTimeout(err):
		return nil, unavailable(ref, ports.CauseTimeout, err)
	case errors.As(err, &he) && (he.StatusCode == http.StatusNotFound || he.StatusCode == http.StatusGone):
		return nil, unavailable(ref, ports.CauseNotFound, err)
	default:
		return nil, unavailable(ref, ports.CauseNetwork, err)
	}
}

func (r *Resolver) open(ref string) ([]byte, error) {
	data, err := r.readFile(ref)
	if err != nil {
		// no existe, sin permisos o es un directorio: para la UI es lo mismo
		return nil, unavailable(ref, ports.CauseNotFound, err)
	}
	return data, nil
}

// decode valida que los bytes sean una imagen mostrable (png, jpeg, gif).
func decode(ref string, data []byte) (ports.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return ports.Image{}, unavailable(ref, ports.CauseDecode, err)
	}
	b := img.Bounds()
	return ports.Image{
		Ref:         ref,
		Format:      format,
		ContentType: "image/" + format,
		Width:       b.Dx(),
		Height:      b.Dy(),
		Data:        data,
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func unavailable(ref string, cause ports.Cause, err error) error {
	return &ports.UnavailableError{Ref: ref, Cause: cause, Err: err}
}
