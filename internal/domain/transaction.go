package domain

import "time"

// PurchasedItem é o snapshot congelado de uma linha comprada. Depois de
// gravado, NÃO muda, mesmo que o produto/variante subjacente seja alterado
// ou removido do catálogo.
type PurchasedItem struct {
	SKU                    string  `json:"sku"`
	Name                   string  `json:"name"`
	Size                   Size    `json:"size"`
	Color                  Color   `json:"color"`
	UnitPrice              float64 `json:"unit_price"`
	Quantity               int     `json:"quantity"`
	SubtotalBeforeDiscount float64 `json:"subtotal_before_discount"`
	DiscountApplied        float64 `json:"discount_applied"`
	SubtotalAfterDiscount  float64 `json:"subtotal_after_discount"`
}

// Transaction é o registro imutável de um checkout bem-sucedido,
// anexado ao histórico do usuário.
type Transaction struct {
	ID                     int             `json:"id"` // Sequencial, atribuído pelo Transaction Log
	UserID                 string          `json:"user_id"`
	Items                  []PurchasedItem `json:"items"`
	SubtotalBeforeDiscount float64         `json:"subtotal_before_discount"`
	DiscountTotal          float64         `json:"discount_total"`
	TotalPaid              float64         `json:"total_paid"`
	PromoCode              string          `json:"promo_code,omitempty"`
	Timestamp              time.Time       `json:"timestamp"` // UTC
}
