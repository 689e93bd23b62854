package memstore

import "sync"

// Guard é o limite transacional dos stores em memória: um único RWMutex
// compartilhado, injetado em todos os serviços da mesma forma que um
// handle *sql.DB seria. Operações que tocam mais de um store (checkout,
// varredura de carrinhos no delete de produto) executam inteiras sob o
// write lock, então nenhum estado parcial é observável.
//
// Regra de uso: serviços chamam apenas repositórios (estruturas de dados
// sem lock próprio) enquanto seguram o Guard; serviços nunca chamam
// métodos bloqueantes de outros serviços.
type Guard struct {
	mu sync.RWMutex
}

// NewGuard cria o guard compartilhado. Deve existir exatamente um por
// conjunto de stores (criado no main.go).
func NewGuard() *Guard {
	return &Guard{}
}

// Lock adquire o lock exclusivo (operações de mutação).
func (g *Guard) Lock() { g.mu.Lock() }

// Unlock libera o lock exclusivo.
func (g *Guard) Unlock() { g.mu.Unlock() }

// RLock adquire o lock compartilhado (operações de leitura pura).
func (g *Guard) RLock() { g.mu.RLock() }

// RUnlock libera o lock compartilhado.
func (g *Guard) RUnlock() { g.mu.RUnlock() }
