// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Stop was called.
type mockWorker struct {
	stopCount int
	order     *[]int
	id        int
}

func (m *mockWorker) Start(context.Context, time.Duration) {}

func (m *mockWorker) Stop() {
	m.stopCount++
	if m.order != nil {
		*m.order = append(*m.order, m.id)
	}
}

func TestWorkers_StopAll_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2)
	ws.Add(w3)
	ws.StopAll()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.stopCount != 1 {
			t.Errorf("worker[%d]: expected stopCount=1, got %d", i, w.stopCount)
		}
	}
}

func TestWorkers_StopAll_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.StopAll()
}

func TestWorkers_StopAll_ReverseOrder(t *testing.T) {
	order := []int{}
	ws := NewWorkers(
		&mockWorker{id: 1, order: &order},
		&mockWorker{id: 2, order: &order},
		&mockWorker{id: 3, order: &order},
	)

	ws.StopAll()

	expected := []int{3, 2, 1}
	if len(order) != len(expected) {
		t.Fatalf("expected %d stops, got %d", len(expected), len(order))
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("order[%d]: expected %d, got %d", i, expected[i], order[i])
		}
	}
}
