package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica se o erro é violação de constraint única (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// nextPrefixedID gera o próximo ID sequencial "P001", "C001", "V001"... para a
// tabela indicada. Roda dentro da mesma transação da escrita quando chamado
// via TxRunner, o que evita corrida entre duas criações simultâneas.
func nextPrefixedID(q Querier, table, prefix string) (string, error) {
	query := fmt.Sprintf(
		`SELECT COALESCE(MAX(CAST(SUBSTRING(id FROM 2) AS INTEGER)), 0) + 1 FROM %s WHERE id ~ '^%s[0-9]+$'`,
		table, prefix,
	)
	var next int
	if err := q.QueryRow(context.Background(), query).Scan(&next); err != nil {
		return "", fmt.Errorf("next id de %s: %w", table, err)
	}
	return fmt.Sprintf("%s%03d", prefix, next), nil
}
