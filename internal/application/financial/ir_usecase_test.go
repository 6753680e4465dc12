package financial

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

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// stubSaleRepo devolve receita/custos fixos e registra o período consultado.
type stubSaleRepo struct {
	revenue, costs decimal.Decimal
	start, end     time.Time
}

func (s *stubSaleRepo) NextID() (string, error)              { return "V001", nil }
func (s *stubSaleRepo) Create(*entity.Sale) error            { return nil }
func (s *stubSaleRepo) GetByID(string) (*entity.Sale, error) { return nil, nil }
func (s *stubSaleRepo) List(repository.SaleFilter, int, int) ([]*entity.Sale, error) {
	return nil, nil
}
func (s *stubSaleRepo) ListAll(repository.SaleFilter) ([]*entity.Sale, error) { return nil, nil }
func (s *stubSaleRepo) Update(*entity.Sale) error                             { return nil }
func (s *stubSaleRepo) Delete(string) error                                   { return nil }
func (s *stubSaleRepo) GetRevenueAndCosts(start, end time.Time) (decimal.Decimal, decimal.Decimal, error) {
	s.start, s.end = start, end
	return s.revenue, s.costs, nil
}

func TestSimulate_EntradaManual(t *testing.T) {
	uc := NewIRUseCase(&stubSaleRepo{})

	out, err := uc.Simulate(dto.IRSimulationRequest{
		MonthlyRevenue: dec("5000.00"),
		RealCosts:      dec("3000.00"),
	})
	require.NoError(t, err)

	assert.True(t, dec("4000.00").Equal(out.CalculationBase), "base = 80%% da receita, obtido %s", out.CalculationBase)
	assert.True(t, dec("218.56").Equal(out.IRDue), "IR de 5000, obtido %s", out.IRDue)
	assert.True(t, dec("15").Equal(out.AppliedRate))
	assert.True(t, dec("4.37").Equal(out.EffectiveRate))
	assert.True(t, dec("2000.00").Equal(out.RealProfit))
	assert.True(t, dec("1781.44").Equal(out.ProfitAfterIR))
	assert.True(t, dec("10.93").Equal(out.IRPercentageOnProfit))
	assert.Equal(t, "R$ 218,56", out.IRDueBRL)

	assert.True(t, dec("60000.00").Equal(out.Annual.AnnualRevenue), "projeção anual linear x12")
	assert.True(t, dec("2622.72").Equal(out.Annual.AnnualIRDue))

	require.Len(t, out.Brackets, 5, "a resposta ecoa a tabela de faixas")
	assert.True(t, out.Brackets[4].NoLimit)
}

func TestSimulate_ReceitaIsenta(t *testing.T) {
	uc := NewIRUseCase(&stubSaleRepo{})

	out, err := uc.Simulate(dto.IRSimulationRequest{MonthlyRevenue: dec("2824.00")})
	require.NoError(t, err)
	assert.True(t, out.IRDue.IsZero(), "base 2259.20 cai na faixa isenta, obtido %s", out.IRDue)
}

func TestSimulate_DadosReais_UsaUltimos30Dias(t *testing.T) {
	repo := &stubSaleRepo{revenue: dec("5000.00"), costs: dec("3000.00")}
	uc := NewIRUseCase(repo)
	fixedNow := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixedNow }

	out, err := uc.Simulate(dto.IRSimulationRequest{
		UseRealData: true,
		// entrada manual deve ser ignorada neste modo
		MonthlyRevenue: dec("1.00"),
		RealCosts:      dec("1.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, fixedNow, repo.end)
	assert.Equal(t, fixedNow.AddDate(0, 0, -30), repo.start)
	assert.True(t, dec("218.56").Equal(out.IRDue))
	assert.True(t, dec("2000.00").Equal(out.RealProfit))
}

func TestSimulate_EntradaNegativa(t *testing.T) {
	uc := NewIRUseCase(&stubSaleRepo{})

	_, err := uc.Simulate(dto.IRSimulationRequest{MonthlyRevenue: dec("-10.00")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBrackets_TabelaVigente(t *testing.T) {
	uc := NewIRUseCase(&stubSaleRepo{})

	brackets := uc.Brackets()
	require.Len(t, brackets, 5)
	assert.True(t, brackets[0].Rate.IsZero(), "primeira faixa isenta")
	assert.True(t, brackets[len(brackets)-1].NoLimit, "última faixa sem teto")
}
