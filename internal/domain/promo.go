package domain

// Promo representa um código de desconto percentual, opcionalmente restrito
// a um conjunto de SKUs. Imutável após a criação (não existe update).
type Promo struct {
	Code            string   `json:"code"` // Normalizado para maiúsculas
	DiscountPercent float64  `json:"discount_percent"`
	AppliesToSKUs   []string `json:"applies_to_skus"`
}

// AppliesTo implementa a regra de elegibilidade usada no checkout:
// lista vazia significa que o desconto vale para todos os SKUs.
func (p Promo) AppliesTo(sku string) bool {
	if len(p.AppliesToSKUs) == 0 {
		return true
	}
	for _, s := range p.AppliesToSKUs {
		if s == sku {
			return true
		}
	}
	return false
}

// PromoCreate é o payload esperado para a criação de um código promocional.
type PromoCreate struct {
	Code            string   `json:"code"`
	DiscountPercent float64  `json:"discount_percent"`
	AppliesToSKUs   []string `json:"applies_to_skus"`
}
