package cartrepo

// Repository é o Cart Store em memória: por usuário, um mapeamento
// SKU -> quantidade positiva. A ordem de inserção dos SKUs é preservada
// para que a visão do carrinho seja determinística (o equivalente da
// iteração de um dict ordenado). Sem lock próprio: ver memstore.Guard.
type Repository struct {
	items map[string]map[string]int
	order map[string][]string
}

// Entry é um item do carrinho na ordem em que foi adicionado.
type Entry struct {
	SKU      string
	Quantity int
}

// NewRepository cria e retorna um Cart Store vazio.
func NewRepository() *Repository {
	return &Repository{
		items: make(map[string]map[string]int),
		order: make(map[string][]string),
	}
}

// Get retorna uma cópia do mapeamento SKU -> quantidade do usuário.
// Usuário nunca visto resulta em mapa vazio, não em erro.
func (r *Repository) Get(userID string) map[string]int {
	out := make(map[string]int, len(r.items[userID]))
	for sku, qty := range r.items[userID] {
		out[sku] = qty
	}
	return out
}

// Entries retorna os itens do usuário em ordem de inserção.
func (r *Repository) Entries(userID string) []Entry {
	skus := r.order[userID]
	out := make([]Entry, 0, len(skus))
	for _, sku := range skus {
		out = append(out, Entry{SKU: sku, Quantity: r.items[userID][sku]})
	}
	return out
}

// Len retorna a quantidade de entradas no carrinho do usuário.
func (r *Repository) Len(userID string) int {
	return len(r.items[userID])
}

// Set grava a quantidade de um SKU, criando o carrinho implicitamente
// no primeiro acesso. Quantidade <= 0 remove a entrada (o carrinho nunca
// armazena quantidade não-positiva).
func (r *Repository) Set(userID, sku string, quantity int) {
	if quantity <= 0 {
		r.Remove(userID, sku)
		return
	}
	cart, ok := r.items[userID]
	if !ok {
		cart = make(map[string]int)
		r.items[userID] = cart
	}
	if _, exists := cart[sku]; !exists {
		r.order[userID] = append(r.order[userID], sku)
	}
	cart[sku] = quantity
}

// Remove apaga a entrada de um SKU. Idempotente: ausência não é erro.
func (r *Repository) Remove(userID, sku string) {
	cart, ok := r.items[userID]
	if !ok {
		return
	}
	if _, exists := cart[sku]; !exists {
		return
	}
	delete(cart, sku)
	skus := r.order[userID]
	for i, s := range skus {
		if s == sku {
			r.order[userID] = append(skus[:i], skus[i+1:]...)
			break
		}
	}
}

// Clear esvazia o carrinho do usuário.
func (r *Repository) Clear(userID string) {
	delete(r.items, userID)
	delete(r.order, userID)
}

// Sweep remove, de TODOS os carrinhos, as entradas cujo SKU não passa no
// predicado. Usado quando um produto é deletado e seus SKUs deixam de
// ser válidos.
func (r *Repository) Sweep(keep func(sku string) bool) {
	for userID, cart := range r.items {
		for sku := range cart {
			if !keep(sku) {
				r.Remove(userID, sku)
			}
		}
	}
}
