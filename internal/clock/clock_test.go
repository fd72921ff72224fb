package clock

import (
	"sync"
	"testing"
	"time"
)

func TestLocalAccrual(t *testing.T) {
	c := New(5 * time.Second)
	for i := 0; i < 60; i++ {
		c.Apply()
		c.Advance(0.5)
	}
	if c.Elapsed() != 30 {
		t.Fatalf("Elapsed = %v, want 30", c.Elapsed())
	}
	if c.TimeSource() != Local {
		t.Fatalf("source = %v", c.TimeSource())
	}
	c.Advance(-1)
	if c.Elapsed() != 30 {
		t.Fatal("negative dt must be ignored")
	}
}

func TestPushIsResetNotDelta(t *testing.T) {
	c := New(5 * time.Second)
	c.Advance(10)

	c.PushGameTime(12)
	if c.Elapsed() != 10 {
		t.Fatal("push must not apply before Apply")
	}
	c.Apply()
	if c.Elapsed() != 12 {
		t.Fatalf("Elapsed = %v, want 12", c.Elapsed())
	}
	if c.TimeSource() != External {
		t.Fatal("source should be external after a push")
	}

	// Повторное применение без нового значения ничего не меняет.
	c.Apply()
	c.Advance(0.1)
	if got := c.Elapsed(); got < 12.09 || got > 12.11 {
		t.Fatalf("Elapsed = %v, want 12.1", got)
	}
}

func TestFallbackToLocalWhenServerSilent(t *testing.T) {
	c := New(2 * time.Second)
	c.PushGameTime(100)
	c.PushDifficulty(3)
	c.Apply()
	if m, ok := c.ExternalMultiplier(); !ok || m != 3 {
		t.Fatalf("ExternalMultiplier = %v, %v", m, ok)
	}
	for i := 0; i < 30; i++ {
		c.Advance(0.1)
	}
	if c.TimeSource() != Local {
		t.Fatal("stale server time should fall back to local")
	}
	if _, ok := c.ExternalMultiplier(); ok {
		t.Fatal("stale multiplier should be dropped")
	}
	if got := c.Elapsed(); got < 102.9 || got > 103.1 {
		t.Fatalf("local accrual should continue from the last push, got %v", got)
	}
}

func TestInvalidPushesIgnored(t *testing.T) {
	c := New(time.Second)
	c.Advance(3)
	c.PushGameTime(-5)
	c.PushDifficulty(0)
	c.Apply()
	if c.Elapsed() != 3 || c.TimeSource() != Local {
		t.Fatal("negative time must be ignored")
	}
	if _, ok := c.ExternalMultiplier(); ok {
		t.Fatal("non-positive multiplier must be ignored")
	}
}

func TestConcurrentPushes(t *testing.T) {
	c := New(time.Second)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.PushGameTime(float64(j))
				c.PushDifficulty(1 + float64(i))
			}
		}(i)
	}
	for i := 0; i < 100; i++ {
		c.Apply()
		c.Advance(0.01)
	}
	wg.Wait()
	c.Apply()
	if c.TimeSource() != External {
		t.Fatal("expected external source after pushes")
	}
}
