package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_keyedMutex_SerializesSameKey(t *testing.T) {
	km := newKeyedMutex()

	const goroutines = 50
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("user|topic")
			defer km.Unlock("user|topic")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func Test_keyedMutex_IndependentKeys(t *testing.T) {
	km := newKeyedMutex()

	// 別キーのロックを保持したままでもブロックしない
	km.Lock("key-a")
	done := make(chan struct{})
	go func() {
		km.Lock("key-b")
		km.Unlock("key-b")
		close(done)
	}()
	<-done
	km.Unlock("key-a")
}

func Test_keyedMutex_ReleasesEntries(t *testing.T) {
	km := newKeyedMutex()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				km.Lock("shared")
				km.Unlock("shared")
			}
		}()
	}
	wg.Wait()

	// 待機者がいなくなったエントリは破棄される
	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks)
}
