package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"perfumaria/internal/domain"
	"perfumaria/internal/domain/entity"
	"perfumaria/internal/domain/repository"
)

var _ repository.InstallmentRepository = (*InstallmentRepo)(nil)

const installmentColumns = `id, sale_id, installment_number, total_installments,
	value, due_date, payment_date, status, created_at, updated_at`

// InstallmentRepo implementação de InstallmentRepository sobre PostgreSQL.
type InstallmentRepo struct {
	q Querier
}

// NewInstallmentRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewInstallmentRepository(q Querier) *InstallmentRepo {
	return &InstallmentRepo{q: q}
}

// CreateBatch persiste o lote completo de parcelas de uma venda.
func (r *InstallmentRepo) CreateBatch(installments []*entity.Installment) error {
	query := `
		INSERT INTO installments (` + installmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, inst := range installments {
		_, err := r.q.Exec(context.Background(), query,
			inst.ID, inst.SaleID, inst.InstallmentNumber, inst.TotalInstallments,
			inst.Value, inst.DueDate, inst.PaymentDate, inst.Status,
			inst.CreatedAt, inst.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert installment %s: %w", inst.ID, err)
		}
	}
	return nil
}

// GetByID busca uma parcela por ID. Devolve nil sem erro quando não existe.
func (r *InstallmentRepo) GetByID(id string) (*entity.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments WHERE id = $1`
	inst, err := scanInstallment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get installment: %w", err)
	}
	return inst, nil
}

// ListBySale lista as parcelas da venda na ordem de vencimento.
func (r *InstallmentRepo) ListBySale(saleID string) ([]*entity.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments WHERE sale_id = $1 ORDER BY installment_number`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list installments: %w", err)
	}
	defer rows.Close()

	var installments []*entity.Installment
	for rows.Next() {
		inst, err := scanInstallment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		installments = append(installments, inst)
	}
	return installments, rows.Err()
}

// Update atualiza status e data de pagamento da parcela.
func (r *InstallmentRepo) Update(inst *entity.Installment) error {
	query := `
		UPDATE installments
		SET value = $2, due_date = $3, payment_date = $4, status = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		inst.ID, inst.Value, inst.DueDate, inst.PaymentDate, inst.Status, inst.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update installment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteBySale remove o lote de parcelas da venda.
func (r *InstallmentRepo) DeleteBySale(saleID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM installments WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete installments: %w", err)
	}
	return nil
}

func scanInstallment(row pgx.Row) (*entity.Installment, error) {
	var inst entity.Installment
	err := row.Scan(
		&inst.ID, &inst.SaleID, &inst.InstallmentNumber, &inst.TotalInstallments,
		&inst.Value, &inst.DueDate, &inst.PaymentDate, &inst.Status,
		&inst.CreatedAt, &inst.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inst, nil
}
