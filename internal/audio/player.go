// Package audio озвучивает события матча. Звук — побочный эффект: если устройство
// недоступно, игра идёт молча.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"merge-towers/internal/event"
)

const (
	sampleRate = beep.SampleRate(44100)
	queueSize  = 32
)

// Player подписывается на события и проигрывает короткие звуки через общий микшер.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cues        chan Cue
	done        chan struct{}
	initialized bool
}

func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
		cues:  make(chan Cue, queueSize),
		done:  make(chan struct{}),
	}
}

// Initialize открывает звуковое устройство.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	go p.loop()
	return nil
}

// Subscribe подписывает плеер на звучащие события.
func (p *Player) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(p, event.ProjectileFired, event.EnemyKilled, event.TowerMerged, event.BarrierBreached, event.GameOver)
}

// OnEvent реализует интерфейс event.Listener. Не блокирует: при полной очереди звук пропускается.
func (p *Player) OnEvent(e event.Event) {
	cue, ok := cueFor(e)
	if !ok {
		return
	}
	select {
	case p.cues <- cue:
	default:
	}
}

// Close останавливает проигрывание.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	close(p.done)
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

func (p *Player) loop() {
	for {
		select {
		case <-p.done:
			return
		case cue := <-p.cues:
			streamer := cue.Streamer(sampleRate)
			speaker.Lock()
			p.mixer.Add(streamer)
			speaker.Unlock()
		}
	}
}
