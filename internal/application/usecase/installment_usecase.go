package usecase

import (
	"time"

	"perfumaria/internal/application/dto"
	"perfumaria/internal/domain"
	"perfumaria/internal/domain/entity"
	"perfumaria/internal/domain/repository"
)

// InstallmentUseCase gerencia o recebimento das parcelas do Pix Parcelado.
// O lote é criado pelo fluxo de venda; aqui só há consulta e baixa.
type InstallmentUseCase struct {
	installments repository.InstallmentRepository
	sales        repository.SaleRepository
	now          func() time.Time
}

// NewInstallmentUseCase constrói o caso de uso. now é injetável para os testes.
func NewInstallmentUseCase(installments repository.InstallmentRepository, sales repository.SaleRepository) *InstallmentUseCase {
	return &InstallmentUseCase{installments: installments, sales: sales, now: time.Now}
}

// ListBySale lista as parcelas de uma venda na ordem de vencimento. Parcelas
// pendentes com vencimento no passado aparecem como Atrasada — o status é
// derivado na leitura, não gravado (a baixa posterior volta a valer).
func (uc *InstallmentUseCase) ListBySale(saleID string) (*dto.InstallmentListResponse, error) {
	sale, err := uc.sales.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	installments, err := uc.installments.ListBySale(saleID)
	if err != nil {
		return nil, err
	}

	today := uc.now()
	items := make([]dto.InstallmentResponse, 0, len(installments))
	for _, inst := range installments {
		items = append(items, toInstallmentResponse(inst, today))
	}
	return &dto.InstallmentListResponse{SaleID: saleID, Items: items}, nil
}

// Receive dá baixa em uma parcela: status Recebida e data de pagamento
// (omitida -> agora). Receber parcela já recebida é idempotente.
func (uc *InstallmentUseCase) Receive(id string, in dto.ReceiveInstallmentRequest) (*dto.InstallmentResponse, error) {
	inst, err := uc.installments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, domain.ErrNotFound
	}

	paymentDate := uc.now()
	if in.PaymentDate != nil {
		paymentDate = *in.PaymentDate
	}
	inst.Status = entity.InstallmentStatusRecebida
	inst.PaymentDate = &paymentDate
	inst.UpdatedAt = uc.now()

	if err := uc.installments.Update(inst); err != nil {
		return nil, err
	}
	resp := toInstallmentResponse(inst, uc.now())
	return &resp, nil
}

// Update ajusta vencimento e/ou status de uma parcela. Status aceita apenas
// Pendente e Recebida; mudar para Recebida sem data de pagamento assume agora,
// voltar a Pendente limpa a data.
func (uc *InstallmentUseCase) Update(id string, in dto.UpdateInstallmentRequest) (*dto.InstallmentResponse, error) {
	inst, err := uc.installments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, domain.ErrNotFound
	}

	if in.DueDate != nil {
		inst.DueDate = in.DueDate
	}
	switch in.Status {
	case "":
		// mantém o status atual
	case entity.InstallmentStatusPendente:
		inst.Status = entity.InstallmentStatusPendente
		inst.PaymentDate = nil
	case entity.InstallmentStatusRecebida:
		inst.Status = entity.InstallmentStatusRecebida
		if in.PaymentDate != nil {
			inst.PaymentDate = in.PaymentDate
		} else if inst.PaymentDate == nil {
			paid := uc.now()
			inst.PaymentDate = &paid
		}
	default:
		return nil, domain.NewValidationError(map[string]string{"status": "Status deve ser Pendente ou Recebida"})
	}
	inst.UpdatedAt = uc.now()

	if err := uc.installments.Update(inst); err != nil {
		return nil, err
	}
	resp := toInstallmentResponse(inst, uc.now())
	return &resp, nil
}

// Reopen desfaz a baixa de uma parcela (volta a Pendente, sem data de pagamento).
func (uc *InstallmentUseCase) Reopen(id string) (*dto.InstallmentResponse, error) {
	inst, err := uc.installments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, domain.ErrNotFound
	}

	inst.Status = entity.InstallmentStatusPendente
	inst.PaymentDate = nil
	inst.UpdatedAt = uc.now()

	if err := uc.installments.Update(inst); err != nil {
		return nil, err
	}
	resp := toInstallmentResponse(inst, uc.now())
	return &resp, nil
}

func toInstallmentResponse(inst *entity.Installment, today time.Time) dto.InstallmentResponse {
	status := inst.Status
	if status == entity.InstallmentStatusPendente && inst.DueDate != nil && inst.DueDate.Before(today) {
		status = entity.InstallmentStatusAtrasada
	}
	return dto.InstallmentResponse{
		ID:                inst.ID,
		SaleID:            inst.SaleID,
		InstallmentNumber: inst.InstallmentNumber,
		TotalInstallments: inst.TotalInstallments,
		Value:             inst.Value,
		DueDate:           inst.DueDate,
		PaymentDate:       inst.PaymentDate,
		Status:            status,
	}
}
