// Package pdf implementa a geração do carnê de parcelas do Pix Parcelado.
//
// Layout da página A4: um cabeçalho com os dados da venda e, abaixo, um
// canhoto por parcela (número, valor, vencimento, status e espaço para
// assinatura), separados por linha tracejável de recorte.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"perfumaria/internal/application/sales"
	"perfumaria/internal/domain/entity"
	"perfumaria/pkg/brdoc"
	"perfumaria/pkg/moeda"
)

var (
	colorPrimary = &props.Color{Red: 120, Green: 50, Blue: 120}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ sales.CarneGenerator = (*MarotoCarneGenerator)(nil)

// MarotoCarneGenerator implementa sales.CarneGenerator usando Maroto v2.
type MarotoCarneGenerator struct{}

// NewMarotoCarneGenerator constrói o gerador.
func NewMarotoCarneGenerator() *MarotoCarneGenerator { return &MarotoCarneGenerator{} }

// Generate gera o PDF do carnê e devolve os bytes.
func (g *MarotoCarneGenerator) Generate(
	sale *entity.Sale,
	client *entity.Client,
	product *entity.Product,
	installments []*entity.Installment,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Carnê de Parcelas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, client, product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, inst := range installments {
		m.AddRows(installmentRow(inst))
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	m.AddRows(footerRow(sale, len(installments)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar carnê: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: venda + cliente (esq) e produto + total (dir).
func headerRow(sale *entity.Sale, client *entity.Client, product *entity.Product) core.Row {
	clientName := ""
	clientCPF := ""
	if client != nil {
		clientName = client.Name
		clientCPF = "CPF: " + brdoc.FormatCPF(client.CPF)
	}
	productName := ""
	if product != nil {
		productName = product.Name
	}

	return row.New(20).Add(
		col.New(7).Add(
			text.New("Carnê de Parcelas — Venda "+sale.ID, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(clientName, props.Text{Size: 9, Top: 9}),
			text.New(clientCPF, props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(productName, props.Text{Size: 9, Top: 1, Align: align.Right}),
			text.New("Total: "+moeda.Format(sale.TotalValue), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 8, Align: align.Right,
			}),
			text.New(fmt.Sprintf("%d parcelas", sale.NumInstallments), props.Text{
				Size: 8, Top: 15, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// installmentRow: um canhoto por parcela.
func installmentRow(inst *entity.Installment) core.Row {
	due := "a combinar"
	if inst.DueDate != nil {
		due = inst.DueDate.Format("02/01/2006")
	}
	status := inst.Status
	if inst.PaymentDate != nil {
		status = fmt.Sprintf("%s em %s", inst.Status, inst.PaymentDate.Format("02/01/2006"))
	}

	return row.New(16).Add(
		col.New(2).Add(
			text.New(fmt.Sprintf("Parcela %d/%d", inst.InstallmentNumber, inst.TotalInstallments), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2,
			}),
		),
		col.New(3).Add(
			text.New(moeda.Format(inst.Value), props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 2, Color: colorPrimary,
			}),
		),
		col.New(3).Add(
			text.New("Vencimento: "+due, props.Text{Size: 9, Top: 2}),
			text.New("Status: "+status, props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Assinatura: _______________________", props.Text{
				Size: 9, Top: 6, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// footerRow: observação sobre a soma do lote.
func footerRow(sale *entity.Sale, count int) core.Row {
	note := fmt.Sprintf("A soma das %d parcelas corresponde ao total de %s da venda %s.",
		count, moeda.Format(sale.TotalValue), sale.ID)
	return row.New(10).Add(
		col.New(12).Add(
			text.New(note, props.Text{Size: 8, Top: 3, Color: colorGray}),
		),
	)
}
