package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	keyed := NewKeyedMutex()

	const workers = 20
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := keyed.Lock("shared")
			defer unlock()

			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestKeyedMutex_IndependentKeysDoNotBlock(t *testing.T) {
	keyed := NewKeyedMutex()

	unlockA := keyed.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := keyed.Lock("b")
		unlockB()
		close(done)
	}()

	<-done
}
