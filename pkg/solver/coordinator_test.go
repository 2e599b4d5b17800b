package solver

import (
	"testing"
	"time"

	"github.com/tourbound/tourbound/pkg/tour"
)

// stackOf builds a work stack holding k items.
func stackOf(k int) *tour.Stack {
	s := &tour.Stack{}
	root := tour.Start(0, k+2)
	for city := k; city >= 1; city-- {
		s.Push(root, city, city)
	}
	return s
}

// waitParked blocks until exactly want workers are parked.
func waitParked(t *testing.T, c *Coordinator, want int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for int(c.parked.Load()) != want {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d parked workers, have %d", want, c.parked.Load())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestParkSoleWorkerTerminates(t *testing.T) {
	c := NewCoordinator(1)

	if c.Park(&tour.Stack{}) {
		t.Error("sole worker parking on an empty stack should observe termination")
	}
	if !c.Terminated() {
		t.Error("Terminated should report true after the last worker parked")
	}
}

func TestDonateWithoutParkedWorker(t *testing.T) {
	c := NewCoordinator(2)
	s := stackOf(4)

	if got := c.Donate(s); got != 0 {
		t.Errorf("Donate = %d, want 0 with no parked worker", got)
	}
	if s.Len() != 4 {
		t.Errorf("donor stack len = %d, want 4 (untouched)", s.Len())
	}
	if c.NeedsWork() {
		t.Error("NeedsWork should be false with no parked worker")
	}
}

func TestDonationHandoff(t *testing.T) {
	c := NewCoordinator(2)

	adopted := make(chan int, 1)
	go func() {
		s := &tour.Stack{}
		if !c.Park(s) {
			adopted <- -1
			return
		}
		adopted <- s.Len()
	}()
	waitParked(t, c, 1)

	if !c.NeedsWork() {
		t.Fatal("NeedsWork should be true with a worker parked and nothing staged")
	}

	donor := stackOf(4)
	if got := c.Donate(donor); got != 2 {
		t.Fatalf("Donate = %d, want 2 (half of 4)", got)
	}
	if donor.Len() != 2 {
		t.Errorf("donor keeps %d items, want 2", donor.Len())
	}

	select {
	case n := <-adopted:
		if n != 2 {
			t.Errorf("recipient adopted %d items, want 2", n)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("recipient never woke up")
	}
	if c.Terminated() {
		t.Error("termination must not be declared while workers hold work")
	}
}

func TestDonateStagingSlotIsSingle(t *testing.T) {
	c := NewCoordinator(2)

	done := make(chan bool, 1)
	go func() {
		done <- c.Park(&tour.Stack{})
	}()
	waitParked(t, c, 1)

	first := stackOf(4)
	if got := c.Donate(first); got != 2 {
		t.Fatalf("first Donate = %d, want 2", got)
	}

	// Whether or not the recipient has claimed the staged half yet, a second
	// donation must be refused: either the slot is still occupied, or the
	// recipient resumed and nobody is parked anymore.
	second := stackOf(4)
	if got := c.Donate(second); got != 0 {
		t.Errorf("second Donate = %d, want 0", got)
	}
	if second.Len() != 4 {
		t.Errorf("refused donor stack len = %d, want 4 (untouched)", second.Len())
	}

	if !<-done {
		t.Error("recipient should have adopted work, not halted")
	}
}

func TestParkAdoptsPendingDonation(t *testing.T) {
	// A donation staged but not yet claimed must be drained by the next
	// worker that runs out of work, even if that worker would otherwise be
	// the last one standing. Declaring termination here would abandon the
	// staged items and the subtrees they root.
	c := NewCoordinator(1)
	c.mu.Lock()
	c.staged = stackOf(2)
	c.hasStaged.Store(true)
	c.mu.Unlock()

	s := &tour.Stack{}
	if !c.Park(s) {
		t.Fatal("Park should adopt the pending donation, not declare termination")
	}
	if s.Len() != 2 {
		t.Errorf("adopted %d items, want 2", s.Len())
	}
	if c.hasStaged.Load() {
		t.Error("staging slot should be empty after adoption")
	}
	if c.Terminated() {
		t.Error("termination must not be declared while adopted work remains")
	}
}

func TestTerminationReleasesAllWorkers(t *testing.T) {
	const workers = 4
	c := NewCoordinator(workers)

	results := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		go func() {
			results <- c.Park(&tour.Stack{})
		}()
	}

	for i := 0; i < workers; i++ {
		select {
		case got := <-results:
			if got {
				t.Error("worker resumed with work during global termination")
			}
		case <-time.After(5 * time.Second):
			t.Fatal("worker never released")
		}
	}
	if !c.Terminated() {
		t.Error("Terminated should report true once all workers parked")
	}
}
