package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// setBuilder arma el SET dinámico de los UPDATE parciales: solo los campos
// presentes del PATCH entran a la sentencia.
type setBuilder struct {
	sets []string
	args []any
}

func (b *setBuilder) add(col string, v any) {
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", col, len(b.args)+1))
	b.args = append(b.args, v)
}

func (b *setBuilder) empty() bool {
	return len(b.sets) == 0
}

// query cierra la sentencia con el WHERE id = $n final.
func (b *setBuilder) query(table string, id int64) (string, []any) {
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(b.sets, ", "), len(b.args)+1)
	return q, append(b.args, id)
}
