package datasource

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"pet-care-info/internal/adapters/storage/postgres"
	"pet-care-info/internal/domain/dataset"
	"pet-care-info/internal/platform/httpclient"
	"pet-care-info/internal/platform/logger"
)

const DefaultTimeout = 10 * time.Second

// Opener abre una conexión para refs postgres://. Inyectable para tests.
type Opener func(ctx context.Context, dsn string) (*sql.DB, error)

type Options struct {
	HTTP    *httpclient.Client // descargas de planillas remotas
	Open    Opener             // nil => postgres.Open
	Timeout time.Duration      // por carga
	Logger  logger.Logger
}

// Loader implementa dataset.Loader despachando por tipo de referencia:
// - postgres:// | postgresql://  => tabla (SELECT *)
// - http:// | https://           => descarga + csv/xlsx según extensión
// - cualquier otro string         => path local csv/xlsx
type Loader struct {
	http    *httpclient.Client
	open    Opener
	timeout time.Duration
	log     logger.Logger
}

func New(opts Options) *Loader {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := opts.HTTP
	if client == nil {
		client = httpclient.New(timeout)
	}
	open := opts.Open
	if open == nil {
		open = postgres.Open
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &Loader{
		http:    client,
		open:    open,
		timeout: timeout,
		log:     log,
	}
}

func (l *Loader) Load(ctx context.Context, ref string) (dataset.Sheet, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return dataset.Sheet{}, dataset.NotFound(ref, errors.New("empty dataset reference"))
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	start := time.Now()
	var (
		s   dataset.Sheet
		err error
	)
	switch {
	case postgres.IsRef(ref):
		s, err = l.loadTable(ctx, ref)
	case httpclient.IsRemote(ref):
		s, err = l.loadRemote(ctx, ref)
	default:
		s, err = l.loadFile(ref)
	}
	if err != nil {
		l.log.Warn("dataset load failed", map[string]any{"ref": Redact(ref), "error": err.Error()})
		return dataset.Sheet{}, err
	}

	l.log.Debug("dataset loaded", map[string]any{
		"ref":     Redact(ref),
		"columns": len(s.Headers),
		"rows":    len(s.Rows),
		"ms":      time.Since(start).Milliseconds(),
	})
	return s, nil
}

func (l *Loader) loadFile(ref string) (dataset.Sheet, error) {
	f, err := os.Open(ref)
	if err != nil {
		return dataset.Sheet{}, dataset.NotFound(ref, err)
	}
	defer f.Close()

	if st, err := f.Stat(); err != nil || st.IsDir() {
		return dataset.Sheet{}, dataset.NotFound(ref, errors.New("not a regular file"))
	}

	return parse(ref, strings.ToLower(filepath.Ext(ref)), f)
}

func (l *Loader) loadRemote(ctx context.Context, ref string) (dataset.Sheet, error) {
	data, _, err := l.http.Download(ctx, ref)
	if err != nil {
		return dataset.Sheet{}, dataset.NotFound(ref, err)
	}

	ext := ""
	if u, err := url.Parse(ref); err == nil {
		ext = strings.ToLower(path.Ext(u.Path))
	}
	return parse(ref, ext, bytes.NewReader(data))
}

func (l *Loader) loadTable(ctx context.Context, ref string) (dataset.Sheet, error) {
	dsn, table, err := postgres.SplitRef(ref)
	if err != nil {
		return dataset.Sheet{}, dataset.NotFound(Redact(ref), err)
	}

	db, err := l.open(ctx, dsn)
	if err != nil {
		return dataset.Sheet{}, dataset.NotFound(Redact(ref), err)
	}
	defer db.Close()

	headers, rows, err := postgres.ReadTable(ctx, db, table)
	if err != nil {
		return dataset.Sheet{}, dataset.NotFound(Redact(ref), err)
	}
	return build(Redact(ref), headers, rows), nil
}

func parse(ref, ext string, r io.Reader) (dataset.Sheet, error) {
	var (
		rows [][]string
		err  error
	)
	if ext == ".csv" {
		rows, err = readCSV(r)
	} else {
		rows, err = readWorkbook(r)
	}
	if err != nil {
		// archivo existe pero no se puede leer como tabla
		return dataset.Sheet{}, dataset.NotFound(ref, err)
	}
	if len(rows) == 0 {
		return dataset.Sheet{Ref: ref}, nil
	}
	return build(ref, rows[0], rows[1:]), nil
}

// build arma el Sheet: filas como mapa encabezado -> celda.
// Los encabezados se comparan tal cual (sin recortar). Celdas de más (sin encabezado)
// se ignoran; celdas de menos quedan ausentes.
func build(ref string, headerRow []string, data [][]string) dataset.Sheet {
	headers := append([]string(nil), headerRow...)

	rows := make([]dataset.Row, 0, len(data))
	for _, rec := range data {
		if isBlank(rec) {
			continue
		}
		row := make(dataset.Row, len(headers))
		for j, cell := range rec {
			if j >= len(headers) || headers[j] == "" {
				continue
			}
			// primera aparición gana si hay encabezados repetidos
			if _, dup := row[headers[j]]; dup {
				continue
			}
			row[headers[j]] = cell
		}
		rows = append(rows, row)
	}

	return dataset.Sheet{Ref: ref, Headers: headers, Rows: rows}
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Redact quita la password de un DSN antes de loguearlo o mostrarlo.
func Redact(ref string) string {
	if !postgres.IsRef(ref) {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "postgres://"
	}
	return u.Redacted()
}
