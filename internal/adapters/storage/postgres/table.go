package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

var ErrTableRequired = errors.New("postgres ref requires a table query parameter")

// IsRef indica si ref apunta a Postgres (postgres:// o postgresql://).
func IsRef(ref string) bool {
	ref = strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(ref, "postgres://") || strings.HasPrefix(ref, "postgresql://")
}

// SplitRef separa "postgres://u@h/db?sslmode=disable&table=pet_care" en DSN sin `table` y nombre de tabla.
// pgx mandaría `table` como runtime param, por eso se quita.
func SplitRef(ref string) (dsn string, table string, err error) {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", "", fmt.Errorf("invalid postgres ref: %w", err)
	}
	q := u.Query()
	table = strings.TrimSpace(q.Get("table"))
	if table == "" {
		return "", "", ErrTableRequired
	}
	q.Del("table")
	u.RawQuery = q.Encode()
	return u.String(), table, nil
}

// ReadTable hace SELECT * sobre table y devuelve encabezados (nombres de columna) y filas como texto.
// table puede venir calificada con schema ("public.pet_care").
func ReadTable(ctx context.Context, db *sql.DB, table string) ([]string, [][]string, error) {
	ident := pgx.Identifier(strings.Split(table, "."))
	query := "SELECT * FROM " + ident.Sanitize()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	out := make([][]string, 0)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}

		rec := make([]string, len(cols))
		for i, v := range vals {
			rec[i] = cellText(v)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return cols, out, nil
}

// cellText convierte un valor de driver a texto como lo mostraría una planilla.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
