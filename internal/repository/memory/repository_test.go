package memory

import (
	"sync"
	"testing"
	"time"
)

func TestUpdateDetectsChanges(t *testing.T) {
	repo := NewRepository()
	t0 := time.Date(2016, time.February, 14, 20, 0, 0, 0, time.UTC)

	if !repo.Update("live", "CHI 25 MIA 20", t0) {
		t.Error("first update reported unchanged")
	}
	if repo.Update("live", "CHI 25 MIA 20", t0.Add(time.Minute)) {
		t.Error("identical update reported changed")
	}
	if !repo.Update("live", "CHI 49 MIA 41", t0.Add(2*time.Minute)) {
		t.Error("new output reported unchanged")
	}

	s, ok := repo.GetSnapshot("live")
	if !ok {
		t.Fatal("snapshot missing")
	}
	if s.Output != "CHI 49 MIA 41" || !s.UpdatedAt.Equal(t0.Add(2*time.Minute)) {
		t.Errorf("snapshot = %+v", s)
	}
}

func TestViewsAreIndependent(t *testing.T) {
	repo := NewRepository()
	now := time.Now()

	repo.SaveSnapshot("standings", Snapshot{Output: "x", UpdatedAt: now})
	if !repo.Update("live", "x", now) {
		t.Error("update on a different view reported unchanged")
	}
	if _, ok := repo.GetSnapshot("missing"); ok {
		t.Error("GetSnapshot found a view that was never saved")
	}
}

func TestConcurrentUpdates(t *testing.T) {
	repo := NewRepository()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Update("live", "same", time.Now())
			repo.GetSnapshot("live")
		}()
	}
	wg.Wait()

	if s, _ := repo.GetSnapshot("live"); s.Output != "same" {
		t.Errorf("Output = %q", s.Output)
	}
}
