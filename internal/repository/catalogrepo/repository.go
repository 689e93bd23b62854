package catalogrepo

import (
	"gocart/internal/domain"
)

// skuRef localiza uma variante: índice secundário SKU -> (produto, posição).
type skuRef struct {
	productID  int
	variantIdx int
}

// Repository é o Catalog Store em memória: produtos em ordem de inserção,
// gerador sequencial de ids e o índice secundário de SKUs. A estrutura
// NÃO tem lock próprio: a serialização é responsabilidade dos serviços,
// que seguram o memstore.Guard durante a operação inteira (o papel que a
// transação de banco cumpriria em um repositório SQL).
//
// Invariante: o índice de SKUs é estritamente consistente com o conteúdo
// dos produtos; toda mutação de variantes atualiza os dois juntos.
type Repository struct {
	products map[int]*domain.Product
	order    []int
	skuIndex map[string]skuRef
	nextID   int
}

// NewRepository cria e retorna um Catalog Store vazio.
func NewRepository() *Repository {
	return &Repository{
		products: make(map[int]*domain.Product),
		skuIndex: make(map[string]skuRef),
		nextID:   1,
	}
}

// NextID consome e retorna o próximo id sequencial de produto.
func (r *Repository) NextID() int {
	id := r.nextID
	r.nextID++
	return id
}

// HasSKU verifica se um SKU já está registrado no índice global.
func (r *Repository) HasSKU(sku string) bool {
	_, ok := r.skuIndex[sku]
	return ok
}

// SKUOwnedByOther verifica se um SKU pertence ao índice E a um produto
// diferente do informado. Usado na substituição de lista de variantes,
// onde colisão com os próprios SKUs do produto não é conflito.
func (r *Repository) SKUOwnedByOther(sku string, productID int) bool {
	ref, ok := r.skuIndex[sku]
	return ok && ref.productID != productID
}

// Save armazena um produto novo e registra cada SKU no índice.
// Pressupõe que os SKUs já foram validados contra o índice.
func (r *Repository) Save(p domain.Product) {
	stored := cloneProduct(p)
	r.products[p.ID] = &stored
	r.order = append(r.order, p.ID)
	for idx, v := range stored.Variants {
		r.skuIndex[v.SKU] = skuRef{productID: p.ID, variantIdx: idx}
	}
}

// FindByID retorna uma cópia do produto, ou false se desconhecido.
func (r *Repository) FindByID(id int) (domain.Product, bool) {
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, false
	}
	return cloneProduct(*p), true
}

// All retorna cópias de todos os produtos, em ordem de inserção.
func (r *Repository) All() []domain.Product {
	out := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneProduct(*r.products[id]))
	}
	return out
}

// Empty informa se o catálogo não tem nenhum produto.
func (r *Repository) Empty() bool {
	return len(r.products) == 0
}

// UpdateInfo substitui nome e/ou descrição quando informados (nil preserva).
func (r *Repository) UpdateInfo(id int, name, description *string) bool {
	p, ok := r.products[id]
	if !ok {
		return false
	}
	if name != nil {
		p.Name = *name
	}
	if description != nil {
		p.Description = *description
	}
	return true
}

// ReplaceVariants troca a lista INTEIRA de variantes de um produto,
// removendo os SKUs antigos do índice e registrando os novos na mesma
// operação. Pressupõe que os novos SKUs já foram validados.
func (r *Repository) ReplaceVariants(id int, variants []domain.Variant) bool {
	p, ok := r.products[id]
	if !ok {
		return false
	}
	for _, v := range p.Variants {
		delete(r.skuIndex, v.SKU)
	}
	p.Variants = append([]domain.Variant(nil), variants...)
	for idx, v := range p.Variants {
		r.skuIndex[v.SKU] = skuRef{productID: id, variantIdx: idx}
	}
	return true
}

// Remove apaga um produto e desregistra seus SKUs do índice.
// Retorna uma cópia do produto removido.
func (r *Repository) Remove(id int) (domain.Product, bool) {
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, false
	}
	removed := cloneProduct(*p)
	for _, v := range p.Variants {
		delete(r.skuIndex, v.SKU)
	}
	delete(r.products, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return removed, true
}

// FindVariant resolve um SKU via índice e retorna (id do produto, cópia
// da variante).
func (r *Repository) FindVariant(sku string) (int, domain.Variant, bool) {
	ref, ok := r.skuIndex[sku]
	if !ok {
		return 0, domain.Variant{}, false
	}
	return ref.productID, r.products[ref.productID].Variants[ref.variantIdx], true
}

// SetStock grava o novo estoque de uma variante. A checagem de estoque
// não-negativo é feita pelo serviço, dentro da mesma seção crítica.
func (r *Repository) SetStock(sku string, stock int) bool {
	ref, ok := r.skuIndex[sku]
	if !ok {
		return false
	}
	r.products[ref.productID].Variants[ref.variantIdx].Stock = stock
	return true
}

// cloneProduct copia o produto com a slice de variantes, para que
// chamadores nunca compartilhem memória com o store.
func cloneProduct(p domain.Product) domain.Product {
	p.Variants = append([]domain.Variant(nil), p.Variants...)
	return p
}
