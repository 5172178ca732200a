package keylock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockSerializesSameKey(t *testing.T) {
	km := New()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("acct:1")
			defer unlock()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, km.Len(), "locks should be released once idle")
}

func TestLockAllOverlappingSetsDoNotDeadlock(t *testing.T) {
	km := New()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := km.LockAll("a", "b", "c")
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := km.LockAll("c", "b", "a")
			unlock()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("LockAll deadlocked")
	}
	assert.Equal(t, 0, km.Len())
}

func TestLockAllIgnoresDuplicatesAndEmpty(t *testing.T) {
	km := New()
	unlock := km.LockAll("x", "", "x", "y")
	assert.Equal(t, 2, km.Len())
	unlock()
	assert.Equal(t, 0, km.Len())
}
