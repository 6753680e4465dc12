// Package brdoc valida e formata documentos e contatos brasileiros (CPF, telefone).
package brdoc

import (
	"fmt"
	"unicode"
)

// ValidateCPF valida o CPF (com ou sem pontos/traço) pelos dois dígitos
// verificadores módulo 11 da Receita Federal. Aceita "123.456.789-09" ou
// "12345678909".
func ValidateCPF(cpf string) error {
	digits := extractDigits(cpf)
	if len(digits) != 11 {
		return fmt.Errorf("brdoc: CPF deve ter 11 dígitos, encontrados %d", len(digits))
	}
	if allEqual(digits) {
		return fmt.Errorf("brdoc: CPF com todos os dígitos iguais é inválido")
	}
	if digits[9] != checkDigit(digits[:9], 10) {
		return fmt.Errorf("brdoc: primeiro dígito verificador do CPF inválido")
	}
	if digits[10] != checkDigit(digits[:10], 11) {
		return fmt.Errorf("brdoc: segundo dígito verificador do CPF inválido")
	}
	return nil
}

// checkDigit calcula um dígito verificador do CPF: soma ponderada com pesos
// decrescentes a partir de firstWeight, resto = (soma*10) mod 11, 10 e 11 viram 0.
func checkDigit(base []byte, firstWeight int) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * (firstWeight - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	return byte('0' + remainder)
}

// FormatCPF aplica a máscara de exibição 000.000.000-00.
// Entradas sem 11 dígitos são devolvidas apenas com os dígitos extraídos.
func FormatCPF(cpf string) string {
	digits := extractDigits(cpf)
	if len(digits) != 11 {
		return string(digits)
	}
	return fmt.Sprintf("%s.%s.%s-%s", digits[0:3], digits[3:6], digits[6:9], digits[9:11])
}

// FormatPhone aplica a máscara (DD) 00000-0000 para celulares (11 dígitos) e
// (DD) 0000-0000 para fixos (10 dígitos). Outros tamanhos voltam sem máscara.
func FormatPhone(phone string) string {
	digits := extractDigits(phone)
	switch len(digits) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:7], digits[7:11])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:6], digits[6:10])
	default:
		return string(digits)
	}
}

// Digits devolve apenas os dígitos da entrada ("529.982.247-25" -> "52998224725").
// É a forma canônica de armazenamento de CPF e telefone.
func Digits(s string) string {
	return string(extractDigits(s))
}

func allEqual(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
