package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfumaria/internal/application/dto"
	"perfumaria/internal/domain"
	"perfumaria/internal/domain/entity"
	"perfumaria/internal/domain/repository"
)

// stubInstallmentRepo porta de parcelas em memória, indexada por ID.
type stubInstallmentRepo struct {
	byID    map[string]*entity.Installment
	bySale  map[string][]*entity.Installment
	updated *entity.Installment
}

func (s *stubInstallmentRepo) CreateBatch([]*entity.Installment) error { return nil }
func (s *stubInstallmentRepo) GetByID(id string) (*entity.Installment, error) {
	return s.byID[id], nil
}
func (s *stubInstallmentRepo) ListBySale(saleID string) ([]*entity.Installment, error) {
	return s.bySale[saleID], nil
}
func (s *stubInstallmentRepo) Update(inst *entity.Installment) error {
	s.updated = inst
	return nil
}
func (s *stubInstallmentRepo) DeleteBySale(string) error { return nil }

// stubSaleRepo só precisa responder GetByID nos testes de parcela.
type stubSaleRepo struct {
	sale *entity.Sale
}

func (s *stubSaleRepo) NextID() (string, error)              { return "V001", nil }
func (s *stubSaleRepo) Create(*entity.Sale) error            { return nil }
func (s *stubSaleRepo) GetByID(string) (*entity.Sale, error) { return s.sale, nil }
func (s *stubSaleRepo) List(repository.SaleFilter, int, int) ([]*entity.Sale, error) {
	return nil, nil
}
func (s *stubSaleRepo) ListAll(repository.SaleFilter) ([]*entity.Sale, error) { return nil, nil }
func (s *stubSaleRepo) Update(*entity.Sale) error                             { return nil }
func (s *stubSaleRepo) Delete(string) error                                   { return nil }
func (s *stubSaleRepo) GetRevenueAndCosts(time.Time, time.Time) (decimal.Decimal, decimal.Decimal, error) {
	return decimal.Zero, decimal.Zero, nil
}

var fixedNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func newTestUC(installments *stubInstallmentRepo, sales *stubSaleRepo) *InstallmentUseCase {
	uc := NewInstallmentUseCase(installments, sales)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestListBySale_DerivaAtrasadaNaLeitura(t *testing.T) {
	installments := &stubInstallmentRepo{
		bySale: map[string][]*entity.Installment{
			"V001": {
				{ID: "V001-P1", SaleID: "V001", InstallmentNumber: 1, TotalInstallments: 2,
					Status: entity.InstallmentStatusPendente, DueDate: datePtr(2026, 7, 1)},
				{ID: "V001-P2", SaleID: "V001", InstallmentNumber: 2, TotalInstallments: 2,
					Status: entity.InstallmentStatusPendente, DueDate: datePtr(2026, 12, 1)},
			},
		},
	}
	uc := newTestUC(installments, &stubSaleRepo{sale: &entity.Sale{ID: "V001"}})

	out, err := uc.ListBySale("V001")
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	assert.Equal(t, entity.InstallmentStatusAtrasada, out.Items[0].Status,
		"parcela pendente vencida aparece como Atrasada")
	assert.Equal(t, entity.InstallmentStatusPendente, out.Items[1].Status,
		"parcela com vencimento futuro segue Pendente")
}

func TestListBySale_VendaInexistente(t *testing.T) {
	uc := newTestUC(&stubInstallmentRepo{}, &stubSaleRepo{sale: nil})

	_, err := uc.ListBySale("V999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceive_MarcaRecebidaComDataDefault(t *testing.T) {
	installments := &stubInstallmentRepo{
		byID: map[string]*entity.Installment{
			"V001-P1": {ID: "V001-P1", SaleID: "V001", Status: entity.InstallmentStatusPendente,
				DueDate: datePtr(2026, 7, 1)},
		},
	}
	uc := newTestUC(installments, &stubSaleRepo{})

	out, err := uc.Receive("V001-P1", dto.ReceiveInstallmentRequest{})
	require.NoError(t, err)

	assert.Equal(t, entity.InstallmentStatusRecebida, out.Status)
	require.NotNil(t, out.PaymentDate)
	assert.Equal(t, fixedNow, *out.PaymentDate, "data de pagamento omitida assume o agora")
	require.NotNil(t, installments.updated)
	assert.Equal(t, entity.InstallmentStatusRecebida, installments.updated.Status)
}

func TestReceive_ComDataInformada(t *testing.T) {
	installments := &stubInstallmentRepo{
		byID: map[string]*entity.Installment{
			"V001-P1": {ID: "V001-P1", Status: entity.InstallmentStatusPendente},
		},
	}
	uc := newTestUC(installments, &stubSaleRepo{})

	paid := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	out, err := uc.Receive("V001-P1", dto.ReceiveInstallmentRequest{PaymentDate: &paid})
	require.NoError(t, err)
	require.NotNil(t, out.PaymentDate)
	assert.Equal(t, paid, *out.PaymentDate)
}

func TestReceive_Idempotente(t *testing.T) {
	already := datePtr(2026, 8, 1)
	installments := &stubInstallmentRepo{
		byID: map[string]*entity.Installment{
			"V001-P1": {ID: "V001-P1", Status: entity.InstallmentStatusRecebida, PaymentDate: already},
		},
	}
	uc := newTestUC(installments, &stubSaleRepo{})

	out, err := uc.Receive("V001-P1", dto.ReceiveInstallmentRequest{})
	require.NoError(t, err, "receber parcela já recebida não é erro")
	assert.Equal(t, entity.InstallmentStatusRecebida, out.Status)
}

func TestReceive_ParcelaInexistente(t *testing.T) {
	uc := newTestUC(&stubInstallmentRepo{byID: map[string]*entity.Installment{}}, &stubSaleRepo{})

	_, err := uc.Receive("V999-P1", dto.ReceiveInstallmentRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_AjustaVencimento(t *testing.T) {
	installments := &stubInstallmentRepo{
		byID: map[string]*entity.Installment{
			"V001-P1": {ID: "V001-P1", Status: entity.InstallmentStatusPendente,
				DueDate: datePtr(2026, 9, 1)},
		},
	}
	uc := newTestUC(installments, &stubSaleRepo{})

	newDue := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	out, err := uc.Update("V001-P1", dto.UpdateInstallmentRequest{DueDate: &newDue})
	require.NoError(t, err)
	require.NotNil(t, out.DueDate)
	assert.Equal(t, newDue, *out.DueDate)
	assert.Equal(t, entity.InstallmentStatusPendente, out.Status, "status omitido permanece")
}

func TestUpdate_StatusInvalido(t *testing.T) {
	installments := &stubInstallmentRepo{
		byID: map[string]*entity.Installment{
			"V001-P1": {ID: "V001-P1", Status: entity.InstallmentStatusPendente},
		},
	}
	uc := newTestUC(installments, &stubSaleRepo{})

	_, err := uc.Update("V001-P1", dto.UpdateInstallmentRequest{Status: entity.InstallmentStatusAtrasada})
	require.Error(t, err, "Atrasada é derivada, não aceita na escrita")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestReopen_VoltaAPendenteSemDataDePagamento(t *testing.T) {
	installments := &stubInstallmentRepo{
		byID: map[string]*entity.Installment{
			"V001-P1": {ID: "V001-P1", Status: entity.InstallmentStatusRecebida,
				PaymentDate: datePtr(2026, 8, 1), DueDate: datePtr(2026, 12, 1)},
		},
	}
	uc := newTestUC(installments, &stubSaleRepo{})

	out, err := uc.Reopen("V001-P1")
	require.NoError(t, err)
	assert.Equal(t, entity.InstallmentStatusPendente, out.Status)
	assert.Nil(t, out.PaymentDate)
}

func TestReopen_ParcelaVencidaReapareceAtrasada(t *testing.T) {
	installments := &stubInstallmentRepo{
		byID: map[string]*entity.Installment{
			"V001-P1": {ID: "V001-P1", Status: entity.InstallmentStatusRecebida,
				PaymentDate: datePtr(2026, 8, 1), DueDate: datePtr(2026, 7, 1)},
		},
	}
	uc := newTestUC(installments, &stubSaleRepo{})

	out, err := uc.Reopen("V001-P1")
	require.NoError(t, err)
	assert.Equal(t, entity.InstallmentStatusAtrasada, out.Status,
		"reabrir parcela vencida a devolve como Atrasada na resposta")
}
