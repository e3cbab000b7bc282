package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	kl := newKeyLock()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := kl.Lock("timecard:1")
			defer unlock()
			v := counter
			v++
			counter = v
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, kl.len(), "idle keys are released")
}

func TestKeyLock_IndependentKeys(t *testing.T) {
	kl := newKeyLock()
	unlockA := kl.Lock("a")
	// A different key must not block while "a" is held.
	unlockB := kl.Lock("b")
	assert.Equal(t, 2, kl.len())
	unlockB()
	unlockA()
	assert.Equal(t, 0, kl.len())
}
