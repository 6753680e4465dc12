package pricing

import "github.com/shopspring/decimal"

// InstallmentPlan resultado da divisão do total em parcelas iguais.
type InstallmentPlan struct {
	NumInstallments  int
	InstallmentValue decimal.Decimal
}

// SplitInstallments divide o total em n parcelas de valor igual, arredondado
// a 2 casas. Sem redistribuição de resto: a soma das parcelas pode divergir
// do total em até (n-1) centavos — ex.: 1000/3 -> 3x 333,33 = 999,99. A
// camada de persistência compensa o resto na última parcela ao materializar
// o lote; o contrato desta função preserva o valor "de vitrine" da parcela.
// n <= 0 -> parcela 0 (a validação rejeita antes).
func SplitInstallments(totalValue decimal.Decimal, numInstallments int) InstallmentPlan {
	if numInstallments <= 0 {
		return InstallmentPlan{NumInstallments: numInstallments, InstallmentValue: decimal.Zero}
	}
	value := totalValue.Div(decimal.NewFromInt(int64(numInstallments))).Round(2)
	return InstallmentPlan{
		NumInstallments:  numInstallments,
		InstallmentValue: value,
	}
}
