// internal/clock/clock.go
package clock

import (
	"sync"
	"time"
)

// Source — откуда пришло последнее значение времени.
type Source int

const (
	Local Source = iota
	External
)

func (s Source) String() string {
	if s == External {
		return "external"
	}
	return "local"
}

// GameClock — игровое время матча. Время копится локально каждый тик; значения от
// авторитетного сервера кладутся в очередь из любой горутины и применяются в начале
// тика как сброс, а не как прибавка, поэтому двойного хода времени не бывает.
// Если сервер молчит дольше timeout, источник снова считается локальным.
type GameClock struct {
	mu          sync.Mutex
	pendingTime float64
	hasTime     bool
	pendingMult float64
	hasMult     bool

	// Поля ниже трогает только поток тика
	elapsed       float64
	timeout       float64
	sinceTimePush float64
	sinceMultPush float64
	timeExternal  bool
	multExternal  bool
	multiplier    float64
}

// New создаёт часы с нулевым временем.
func New(timeout time.Duration) *GameClock {
	return &GameClock{timeout: timeout.Seconds()}
}

// PushGameTime — авторитетное время матча в секундах. Потокобезопасно.
func (c *GameClock) PushGameTime(seconds float64) {
	c.mu.Lock()
	c.pendingTime = seconds
	c.hasTime = true
	c.mu.Unlock()
}

// PushDifficulty — авторитетный множитель сложности. Потокобезопасно.
func (c *GameClock) PushDifficulty(multiplier float64) {
	c.mu.Lock()
	c.pendingMult = multiplier
	c.hasMult = true
	c.mu.Unlock()
}

// Apply забирает накопленные значения. Вызывается один раз в начале тика,
// после чего весь тик видит один и тот же снимок.
func (c *GameClock) Apply() {
	c.mu.Lock()
	t, hasTime := c.pendingTime, c.hasTime
	m, hasMult := c.pendingMult, c.hasMult
	c.hasTime, c.hasMult = false, false
	c.mu.Unlock()

	if hasTime && t >= 0 {
		c.elapsed = t
		c.timeExternal = true
		c.sinceTimePush = 0
	}
	if hasMult && m > 0 {
		c.multiplier = m
		c.multExternal = true
		c.sinceMultPush = 0
	}
}

// Advance добавляет длительность тика.
func (c *GameClock) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	c.elapsed += dt
	c.sinceTimePush += dt
	c.sinceMultPush += dt
	if c.timeExternal && c.sinceTimePush > c.timeout {
		c.timeExternal = false
	}
	if c.multExternal && c.sinceMultPush > c.timeout {
		c.multExternal = false
	}
}

// Elapsed — игровое время в секундах.
func (c *GameClock) Elapsed() float64 {
	return c.elapsed
}

// TimeSource — источник времени на текущий тик.
func (c *GameClock) TimeSource() Source {
	if c.timeExternal {
		return External
	}
	return Local
}

// ExternalMultiplier возвращает множитель сервера, пока тот не устарел.
func (c *GameClock) ExternalMultiplier() (float64, bool) {
	return c.multiplier, c.multExternal
}
