package debounce

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitChamadaUnicaSegueAdiante(t *testing.T) {
	debouncer := New(10 * time.Millisecond)

	assert.True(t, debouncer.Wait(context.Background(), "orders:q=tv"))
}

func TestWaitChamadasRapidasSaoCoalescidas(t *testing.T) {
	debouncer := New(30 * time.Millisecond)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		proceeded int
	)

	// Três digitações rápidas sobre a mesma chave: só a última executa
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if debouncer.Wait(context.Background(), "orders:q=tv") {
				mu.Lock()
				proceeded++
				mu.Unlock()
			}
		}()
		time.Sleep(5 * time.Millisecond)
	}

	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, proceeded)
}

func TestWaitChavesDiferentesNaoInterferem(t *testing.T) {
	debouncer := New(20 * time.Millisecond)

	var wg sync.WaitGroup
	results := make([]bool, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		results[0] = debouncer.Wait(context.Background(), "orders:q=tv")
	}()
	go func() {
		defer wg.Done()
		results[1] = debouncer.Wait(context.Background(), "customers:q=ana")
	}()
	wg.Wait()

	assert.True(t, results[0])
	assert.True(t, results[1])
}

func TestWaitContextoCanceladoDescartaAChamada(t *testing.T) {
	debouncer := New(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, debouncer.Wait(ctx, "orders:q=tv"))
}
