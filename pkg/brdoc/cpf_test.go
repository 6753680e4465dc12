package brdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"perfumaria/pkg/brdoc"
)

// CPFs de teste com dígitos verificadores calculados pelo algoritmo oficial
// (módulo 11 da Receita Federal).
func TestValidateCPF_Validos(t *testing.T) {
	valid := []string{
		"529.982.247-25",
		"52998224725",
		"111.444.777-35",
	}
	for _, cpf := range valid {
		assert.NoError(t, brdoc.ValidateCPF(cpf), "CPF %s deve ser válido", cpf)
	}
}

func TestValidateCPF_DigitoVerificadorErrado(t *testing.T) {
	invalid := []string{
		"529.982.247-26", // segundo DV alterado
		"529.982.247-15", // primeiro DV alterado
		"111.444.777-34",
	}
	for _, cpf := range invalid {
		assert.Error(t, brdoc.ValidateCPF(cpf), "CPF %s deve ser inválido", cpf)
	}
}

func TestValidateCPF_TodosDigitosIguais(t *testing.T) {
	// Sequências repetidas passam no módulo 11 mas são rejeitadas pela Receita.
	for _, cpf := range []string{"000.000.000-00", "111.111.111-11", "99999999999"} {
		assert.Error(t, brdoc.ValidateCPF(cpf))
	}
}

func TestValidateCPF_TamanhoErrado(t *testing.T) {
	assert.Error(t, brdoc.ValidateCPF("123"))
	assert.Error(t, brdoc.ValidateCPF(""))
	assert.Error(t, brdoc.ValidateCPF("529.982.247-256"))
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "529.982.247-25", brdoc.FormatCPF("52998224725"))
	assert.Equal(t, "529.982.247-25", brdoc.FormatCPF("529.982.247-25"))
	// Sem 11 dígitos: devolve apenas os dígitos extraídos
	assert.Equal(t, "123", brdoc.FormatCPF("1-2-3"))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(11) 98765-4321", brdoc.FormatPhone("11987654321"))
	assert.Equal(t, "(11) 3456-7890", brdoc.FormatPhone("1134567890"))
	// Tamanho fora do padrão: sem máscara
	assert.Equal(t, "123456", brdoc.FormatPhone("123456"))
}
