package domain

// CartItemRequest é o payload de adição de um item ao carrinho.
type CartItemRequest struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// QuantityUpdate é o payload de alteração de quantidade de um item.
type QuantityUpdate struct {
	Quantity int `json:"quantity"`
}

// CartItemView é uma linha do carrinho já juntada com os dados atuais
// do catálogo (nome, preço unitário).
type CartItemView struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Size         Size    `json:"size"`
	Color        Color   `json:"color"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
	LineSubtotal float64 `json:"line_subtotal"`
}

// CartView é a visão completa do carrinho de um usuário.
type CartView struct {
	UserID   string         `json:"user_id"`
	Items    []CartItemView `json:"items"`
	Subtotal float64        `json:"subtotal"`
}

// CheckoutRequest é o payload do checkout.
type CheckoutRequest struct {
	PromoCode string `json:"promo_code"`
}
