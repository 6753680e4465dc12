package sales

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"perfumaria/internal/application/dto"
	"perfumaria/internal/domain"
	"perfumaria/internal/domain/catalog"
	"perfumaria/internal/domain/entity"
	"perfumaria/internal/domain/repository"
	"perfumaria/internal/domain/validation"
)

// SaleUseCase orquestra o ciclo de vida da venda: validação contra o estoque,
// recálculo dos campos derivados, decremento de estoque e lote de parcelas —
// tudo dentro de uma única transação.
type SaleUseCase struct {
	txRunner TxRunner
	sales    repository.SaleRepository
	clients  repository.ClientRepository
	logger   zerolog.Logger
}

// NewSaleUseCase constrói o caso de uso.
func NewSaleUseCase(txRunner TxRunner, sales repository.SaleRepository, clients repository.ClientRepository, logger zerolog.Logger) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, sales: sales, clients: clients, logger: logger}
}

// Create registra uma venda. O estoque é decrementado somente quando o status
// de criação é Pago ou Entregue; edições posteriores de status não reavaliam
// o estoque. Para Pix Parcelado o lote de parcelas nasce junto com a venda.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	client, err := uc.clients.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewValidationError(map[string]string{"clientId": "Cliente não encontrado"})
	}

	sale := saleFromRequest(in)
	now := time.Now()
	sale.CreatedAt = now
	sale.UpdatedAt = now

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		installmentRepo repository.InstallmentRepository,
	) error {
		product, err := productRepo.GetByID(sale.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NewValidationError(map[string]string{"productId": "Produto não encontrado"})
		}

		if result := validation.ValidateSale(sale, product.Stock); !result.IsValid {
			return domain.NewValidationError(result.Errors)
		}

		id, err := saleRepo.NextID()
		if err != nil {
			return err
		}
		sale.ID = id
		applyPricing(sale, product.PurchasePrice)

		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		if sale.Status == entity.SaleStatusPago || sale.Status == entity.SaleStatusEntregue {
			if err := productRepo.UpdateStock(product.ID, product.Stock-sale.Quantity); err != nil {
				return err
			}
		}

		if batch := buildInstallments(sale, in.FirstDueDate); batch != nil {
			if err := installmentRepo.CreateBatch(batch); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("sale_id", sale.ID).
		Str("payment_method", sale.PaymentMethod).
		Str("total", sale.TotalValue.String()).
		Msg("venda registrada")

	return toSaleResponse(sale), nil
}

// GetByID busca uma venda por ID.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List lista vendas com filtros e paginação.
func (uc *SaleUseCase) List(filter repository.SaleFilter, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	sales, err := uc.sales.List(filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update substitui o registro da venda e recalcula os derivados. O estoque não
// é reavaliado. O lote de parcelas só é recriado quando o plano muda (forma de
// pagamento, número de parcelas ou total); baixas já feitas em um plano
// inalterado são preservadas.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	client, err := uc.clients.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewValidationError(map[string]string{"clientId": "Cliente não encontrado"})
	}

	var updated *entity.Sale
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		installmentRepo repository.InstallmentRepository,
	) error {
		current, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}

		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NewValidationError(map[string]string{"productId": "Produto não encontrado"})
		}

		sale := saleFromRequest(in)
		sale.ID = current.ID
		sale.CreatedAt = current.CreatedAt
		sale.UpdatedAt = time.Now()

		// Edição não mexe no estoque, então a quantidade é validada contra o
		// estoque atual somado ao que esta venda já reservou.
		available := product.Stock
		if current.ProductID == product.ID {
			available += current.Quantity
		}
		if result := validation.ValidateSale(sale, available); !result.IsValid {
			return domain.NewValidationError(result.Errors)
		}

		applyPricing(sale, product.PurchasePrice)

		if err := saleRepo.Update(sale); err != nil {
			return err
		}

		planChanged := current.PaymentMethod != sale.PaymentMethod ||
			current.NumInstallments != sale.NumInstallments ||
			!current.TotalValue.Equal(sale.TotalValue)
		if planChanged {
			if err := installmentRepo.DeleteBySale(sale.ID); err != nil {
				return err
			}
			if batch := buildInstallments(sale, in.FirstDueDate); batch != nil {
				if err := installmentRepo.CreateBatch(batch); err != nil {
					return err
				}
			}
		}

		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(updated), nil
}

// Delete remove a venda e o lote de parcelas dela. O estoque não é devolvido
// (exclusão não é estorno).
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		saleRepo repository.SaleRepository,
		installmentRepo repository.InstallmentRepository,
	) error {
		sale, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if err := installmentRepo.DeleteBySale(id); err != nil {
			return err
		}
		return saleRepo.Delete(id)
	})
}

func saleFromRequest(in dto.CreateSaleRequest) *entity.Sale {
	numInstallments := in.NumInstallments
	if in.PaymentMethod != catalog.PixInstallment {
		numInstallments = 0
	}
	return &entity.Sale{
		Date:              in.Date,
		ClientID:          in.ClientID,
		ProductID:         in.ProductID,
		Quantity:          in.Quantity,
		UnitPrice:         in.UnitPrice,
		Discount:          in.Discount,
		DeliveryType:      in.DeliveryType,
		ShippingCost:      in.ShippingCost,
		FinalProductPrice: in.FinalProductPrice,
		PaymentMethod:     in.PaymentMethod,
		Status:            in.Status,
		NumInstallments:   numInstallments,
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:                s.ID,
		Date:              s.Date,
		ClientID:          s.ClientID,
		ProductID:         s.ProductID,
		Quantity:          s.Quantity,
		UnitPrice:         s.UnitPrice,
		Discount:          s.Discount,
		DeliveryType:      s.DeliveryType,
		ShippingCost:      s.ShippingCost,
		FinalProductPrice: s.FinalProductPrice,
		AdjustedPrice:     s.AdjustedPrice,
		TotalValue:        s.TotalValue,
		PaymentMethod:     s.PaymentMethod,
		Fee:               s.Fee,
		NetProfit:         s.NetProfit,
		Status:            s.Status,
		NumInstallments:   s.NumInstallments,
		InstallmentValue:  s.InstallmentValue,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
