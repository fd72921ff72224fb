package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchToSubscribers(t *testing.T) {
	d := NewDispatcher()
	kills := &recorder{}
	all := &recorder{}
	d.Subscribe(EnemyKilled, kills)
	d.Subscribe(EnemyKilled, all)
	d.Subscribe(GameOver, all)

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyData{ID: 7}})
	d.Dispatch(Event{Type: GameOver, Data: GameOverData{FinalScore: 40}})
	d.Dispatch(Event{Type: TowerPlaced})

	if len(kills.got) != 1 {
		t.Fatalf("kills got %d events, want 1", len(kills.got))
	}
	if data, ok := kills.got[0].Data.(EnemyData); !ok || data.ID != 7 {
		t.Errorf("unexpected payload %#v", kills.got[0].Data)
	}
	if len(all.got) != 2 {
		t.Fatalf("all got %d events, want 2", len(all.got))
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(TowerMerged, r)
	d.Unsubscribe(TowerMerged, r)
	d.Dispatch(Event{Type: TowerMerged})
	if len(r.got) != 0 {
		t.Fatalf("unsubscribed listener received %d events", len(r.got))
	}
}
