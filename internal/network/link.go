// internal/network/link.go
package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"merge-towers/internal/config"
	"merge-towers/internal/event"
	"merge-towers/internal/interfaces"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const writeWait = 5 * time.Second

// Options — параметры соединения с сервером матча.
type Options struct {
	QueueSize    int     // Размер очереди исходящих сообщений
	DamagePerSec float64 // Сколько отчётов об уроне в секунду отправлять
}

func DefaultOptions() Options {
	return Options{QueueSize: config.OutboundQueueSize, DamagePerSec: config.DamageReportsPerSec}
}

// Link — соединение с авторитетным сервером матча. Читает game_time и difficulty
// в ClockSink, а события матча отправляет на сервер. Тик никогда не ждёт сеть:
// OnEvent только кладёт сообщение в очередь и при переполнении его выбрасывает.
type Link struct {
	conn    *websocket.Conn
	sink    interfaces.ClockSink
	matchID string
	out     chan []byte
	damage  *rate.Limiter

	writeMu   sync.Mutex
	done      chan struct{}
	closeOnce sync.Once
	dropped   atomic.Uint64

	errMu sync.Mutex
	err   error
}

// Dial подключается к серверу и запускает чтение и запись.
func Dial(ctx context.Context, url, matchID string, sink interfaces.ClockSink, opts Options) (*Link, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return NewLink(conn, matchID, sink, opts), nil
}

// NewLink оборачивает уже открытое соединение.
func NewLink(conn *websocket.Conn, matchID string, sink interfaces.ClockSink, opts Options) *Link {
	l := newLink(conn, matchID, sink, opts)
	go l.readLoop()
	go l.writeLoop()
	return l
}

func newLink(conn *websocket.Conn, matchID string, sink interfaces.ClockSink, opts Options) *Link {
	if opts.QueueSize <= 0 {
		opts.QueueSize = config.OutboundQueueSize
	}
	limit := rate.Inf
	burst := 1
	if opts.DamagePerSec > 0 {
		limit = rate.Limit(opts.DamagePerSec)
		burst = int(opts.DamagePerSec)
		if burst < 1 {
			burst = 1
		}
	}
	return &Link{
		conn:    conn,
		sink:    sink,
		matchID: matchID,
		out:     make(chan []byte, opts.QueueSize),
		damage:  rate.NewLimiter(limit, burst),
		done:    make(chan struct{}),
	}
}

// Subscribe подписывает соединение на события, которые уходят на сервер.
func (l *Link) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(l, event.EnemyDamaged, event.EnemyKilled, event.BarrierBreached, event.TowerMerged, event.GameOver)
}

// OnEvent реализует интерфейс event.Listener.
func (l *Link) OnEvent(e event.Event) {
	if e.Type == event.EnemyDamaged && !l.damage.Allow() {
		return
	}
	msg, ok := FromEvent(l.matchID, e)
	if !ok {
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("network: encode %s: %v", msg.Type, err)
		return
	}
	select {
	case <-l.done:
	case l.out <- data:
	default:
		l.dropped.Add(1)
	}
}

// Dropped — сколько сообщений выброшено из-за переполненной очереди.
func (l *Link) Dropped() uint64 {
	return l.dropped.Load()
}

// Done закрывается, когда соединение завершено.
func (l *Link) Done() <-chan struct{} {
	return l.done
}

// Err — причина разрыва, если соединение закрыл не Close.
func (l *Link) Err() error {
	l.errMu.Lock()
	defer l.errMu.Unlock()
	return l.err
}

// Close закрывает соединение. Повторный вызов ничего не делает.
func (l *Link) Close() error {
	var err error
	l.closeOnce.Do(func() {
		close(l.done)
		l.writeMu.Lock()
		_ = l.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeWait))
		l.writeMu.Unlock()
		err = l.conn.Close()
	})
	return err
}

func (l *Link) fail(err error) {
	l.errMu.Lock()
	if l.err == nil {
		l.err = err
	}
	l.errMu.Unlock()
	l.closeOnce.Do(func() {
		close(l.done)
		l.conn.Close()
	})
}

func (l *Link) readLoop() {
	for {
		_, data, err := l.conn.ReadMessage()
		if err != nil {
			select {
			case <-l.done:
			default:
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Printf("network: match %s: read: %v", l.matchID, err)
				}
				l.fail(fmt.Errorf("read: %w", err))
			}
			return
		}
		msg, err := Decode(data)
		if err != nil {
			log.Printf("network: %v", err)
			continue
		}
		if err := ApplyInbound(msg, l.sink); err != nil {
			log.Printf("network: %v", err)
		}
	}
}

func (l *Link) writeLoop() {
	for {
		select {
		case <-l.done:
			return
		case data := <-l.out:
			if err := l.write(data); err != nil {
				if !errors.Is(err, websocket.ErrCloseSent) {
					log.Printf("network: match %s: write: %v", l.matchID, err)
				}
				l.fail(fmt.Errorf("write: %w", err))
				return
			}
		}
	}
}

func (l *Link) write(data []byte) error {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	if err := l.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return l.conn.WriteMessage(websocket.TextMessage, data)
}
