package kafka

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPublishAfterCloseIsDropped(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "shop.test", 4, zap.NewNop())

	p.Publish([]byte("k"), []byte("before"))
	p.Close()
	assert.NotPanics(t, func() { p.Publish([]byte("k"), []byte("after")) })
	assert.NotPanics(t, p.Close)

	var got []string
	for m := range p.inbox {
		got = append(got, string(m.Value))
	}
	require.Equal(t, []string{"before"}, got)
}

func TestConcurrentPublishAndClose(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "shop.test", 1000, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				p.Publish([]byte("k"), []byte("v"))
			}
		}()
	}
	p.Close()
	wg.Wait()

	n := 0
	for range p.inbox {
		n++
	}
	assert.LessOrEqual(t, n, 100)
}
