package debounce

import (
	"context"
	"sync"
	"time"
)

// Debouncer coalesce chamadas rápidas sobre a mesma chave em uma única
// execução após uma janela de silêncio. Cada chamada incrementa a geração
// da chave; ao fim da espera, só a chamada da geração mais recente segue
// adiante, as demais são descartadas como superadas.
type Debouncer struct {
	window time.Duration

	mu          sync.Mutex
	generations map[string]uint64
}

func New(window time.Duration) *Debouncer {
	return &Debouncer{
		window:      window,
		generations: map[string]uint64{},
	}
}

// Wait bloqueia pela janela de silêncio e informa se a chamada ainda é a
// mais recente para a chave. Retorna falso quando a chamada foi superada
// por outra mais nova ou quando o contexto foi cancelado.
func (d *Debouncer) Wait(ctx context.Context, key string) bool {
	d.mu.Lock()
	d.generations[key]++
	generation := d.generations[key]
	d.mu.Unlock()

	if d.window <= 0 {
		return true
	}

	timer := time.NewTimer(d.window)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
	}

	d.mu.Lock()
	current := d.generations[key]
	d.mu.Unlock()

	return current == generation
}
