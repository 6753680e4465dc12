package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"perfumaria/internal/domain"
	"perfumaria/internal/domain/entity"
	"perfumaria/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, date, client_id, product_id, quantity, unit_price, discount,
	delivery_type, shipping_cost, final_product_price, adjusted_price, total_value,
	payment_method, fee, net_profit, status, num_installments, installment_value,
	created_at, updated_at`

// SaleRepo implementação de SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// NextID gera o próximo ID sequencial ("V001", "V002", ...).
func (r *SaleRepo) NextID() (string, error) {
	return nextPrefixedID(r.q, "sales", "V")
}

// Create persiste uma nova venda.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Date, sale.ClientID, sale.ProductID, sale.Quantity,
		sale.UnitPrice, sale.Discount, sale.DeliveryType, sale.ShippingCost,
		sale.FinalProductPrice, sale.AdjustedPrice, sale.TotalValue,
		sale.PaymentMethod, sale.Fee, sale.NetProfit, sale.Status,
		sale.NumInstallments, sale.InstallmentValue, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID busca uma venda por ID. Devolve nil sem erro quando não existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// List lista vendas filtradas com paginação, da mais recente para a mais antiga.
func (r *SaleRepo) List(filter repository.SaleFilter, limit, offset int) ([]*entity.Sale, error) {
	where, args := buildSaleWhere(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM sales %s ORDER BY date DESC, id DESC LIMIT $%d OFFSET $%d`,
		saleColumns, where, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// ListAll devolve todas as vendas do filtro, sem paginação (dashboard).
func (r *SaleRepo) ListAll(filter repository.SaleFilter) ([]*entity.Sale, error) {
	where, args := buildSaleWhere(filter)
	query := fmt.Sprintf(`SELECT %s FROM sales %s ORDER BY date, id`, saleColumns, where)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list all sales: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// Update substitui o registro completo da venda.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales
		SET date = $2, client_id = $3, product_id = $4, quantity = $5,
		    unit_price = $6, discount = $7, delivery_type = $8, shipping_cost = $9,
		    final_product_price = $10, adjusted_price = $11, total_value = $12,
		    payment_method = $13, fee = $14, net_profit = $15, status = $16,
		    num_installments = $17, installment_value = $18, updated_at = $19
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Date, sale.ClientID, sale.ProductID, sale.Quantity,
		sale.UnitPrice, sale.Discount, sale.DeliveryType, sale.ShippingCost,
		sale.FinalProductPrice, sale.AdjustedPrice, sale.TotalValue,
		sale.PaymentMethod, sale.Fee, sale.NetProfit, sale.Status,
		sale.NumInstallments, sale.InstallmentValue, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove a venda.
func (r *SaleRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetRevenueAndCosts soma a receita e os custos reais (compra*quantidade +
// frete) das vendas do período, para o simulador de carnê-leão.
func (r *SaleRepo) GetRevenueAndCosts(start, end time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(s.total_value), 0),
		       COALESCE(SUM(p.purchase_price * s.quantity + s.shipping_cost), 0)
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.date >= $1 AND s.date <= $2`
	var revenue, costs decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, start, end).Scan(&revenue, &costs)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("revenue and costs: %w", err)
	}
	return revenue, costs, nil
}

// buildSaleWhere monta a cláusula WHERE do filtro com placeholders sequenciais.
func buildSaleWhere(filter repository.SaleFilter) (string, []any) {
	var conditions []string
	var args []any

	add := func(cond string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if !filter.StartDate.IsZero() {
		add("date >= $%d", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		add("date <= $%d", filter.EndDate)
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.PaymentMethod != "" {
		add("payment_method = $%d", filter.PaymentMethod)
	}
	if filter.ProductID != "" {
		add("product_id = $%d", filter.ProductID)
	}
	if filter.ClientID != "" {
		add("client_id = $%d", filter.ClientID)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	where := "WHERE " + conditions[0]
	for _, c := range conditions[1:] {
		where += " AND " + c
	}
	return where, args
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.Date, &s.ClientID, &s.ProductID, &s.Quantity,
		&s.UnitPrice, &s.Discount, &s.DeliveryType, &s.ShippingCost,
		&s.FinalProductPrice, &s.AdjustedPrice, &s.TotalValue,
		&s.PaymentMethod, &s.Fee, &s.NetProfit, &s.Status,
		&s.NumInstallments, &s.InstallmentValue, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func collectSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var sales []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
