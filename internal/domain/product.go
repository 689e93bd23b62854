package domain

import (
	"fmt"
	"strings"
)

// Size é o tamanho de uma variante. Valores válidos: s, m, l.
type Size string

const (
	SizeS Size = "s"
	SizeM Size = "m"
	SizeL Size = "l"
)

// Valid verifica se o tamanho é um dos valores permitidos.
func (s Size) Valid() bool {
	switch s {
	case SizeS, SizeM, SizeL:
		return true
	}
	return false
}

// Color é a cor de uma variante. O catálogo trabalha com quatro cores fixas.
type Color string

const (
	ColorBiru   Color = "biru"
	ColorCoklat Color = "coklat"
	ColorHijau  Color = "hijau"
	ColorPink   Color = "pink"
)

// Valid verifica se a cor é um dos valores permitidos.
func (c Color) Valid() bool {
	switch c {
	case ColorBiru, ColorCoklat, ColorHijau, ColorPink:
		return true
	}
	return false
}

// Variant representa uma combinação tamanho/cor/preço/estoque de um Produto.
// O controle de estoque é feito a nível de Variant.
type Variant struct {
	SKU   string  `json:"sku"` // Stock Keeping Unit (código único, derivado)
	Size  Size    `json:"size"`
	Color Color   `json:"color"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// Product representa o item principal do catálogo (a Entidade).
type Product struct {
	ID          int       `json:"id"` // Sequencial, atribuído pelo Catalog Store
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Variants    []Variant `json:"variants"`
}

// VariantInput é o payload de criação de uma variante (o SKU é derivado,
// nunca informado pelo cliente).
type VariantInput struct {
	Size  Size    `json:"size"`
	Color Color   `json:"color"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// ProductCreate é o payload esperado para a criação de um produto.
type ProductCreate struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Variants    []VariantInput `json:"variants"`
}

// ProductUpdate é o payload de atualização parcial de um produto.
// Campos nil são preservados; Variants não-nil substitui a lista INTEIRA.
type ProductUpdate struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Variants    []VariantInput `json:"variants"`
}

// MakeSKU deriva o SKU determinístico de uma variante: P<id>-<SIZE>-<COLOR>
// em maiúsculas. A mesma tripla (produto, tamanho, cor) produz sempre o
// mesmo SKU, e nenhuma variante do sistema pode repetir um SKU.
func MakeSKU(productID int, size Size, color Color) string {
	return fmt.Sprintf("P%d-%s-%s", productID, strings.ToUpper(string(size)), strings.ToUpper(string(color)))
}
