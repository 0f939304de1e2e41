package countstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemCountStoreBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	cs := NewMemCountStore()

	c, err := cs.GetCount(ctx, "submission", "corp1", PeriodTotal)
	assert.NoError(err)
	assert.Equal(0, c)
	assert.NoError(cs.Increment(ctx, "submission", "corp1"))
	assert.NoError(cs.Increment(ctx, "submission", "corp1"))

	for _, period := range []string{PeriodTotal, PeriodDay, PeriodHour} {
		c, err = cs.GetCount(ctx, "submission", "corp1", period)
		assert.NoError(err)
		assert.Equal(2, c)
	}
}

func TestMemCountStoreConcurrent(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	cs := NewMemCountStore()

	// interleave writes and reads from several goroutines; run with `-race`
	var wg sync.WaitGroup
	fnInc := func(name, val string, times int) {
		for i := 0; i < times; i++ {
			assert.NoError(cs.Increment(ctx, name, val))
			time.Sleep(time.Nanosecond)
		}
		wg.Done()
	}
	fnRead := func(name, val string, times int) {
		for i := 0; i < times; i++ {
			_, err := cs.GetCount(ctx, name, val, PeriodTotal)
			assert.NoError(err)
			time.Sleep(time.Nanosecond)
		}
	}
	wg.Add(4)
	go fnInc("submission", "corp1", 10)
	go fnInc("submission", "corp1", 10)
	go fnRead("submission", "corp1", 10)
	go fnInc("submission", "corp2", 6)
	go fnInc("submission", "corp2", 6)
	go fnRead("submission", "corp2", 6)
	wg.Wait()

	c, err := cs.GetCount(ctx, "submission", "corp1", PeriodTotal)
	assert.NoError(err)
	assert.Equal(20, c)
	c, err = cs.GetCount(ctx, "submission", "corp2", PeriodTotal)
	assert.NoError(err)
	assert.Equal(12, c)
}
