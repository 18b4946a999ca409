package service

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/days-together/internal/mock"
)

// cst is the reference zone used across the service tests.
var cst = time.FixedZone("UTC-6", -6*60*60)

// sequenceGenerator returns the given values in order, then repeats the last.
type sequenceGenerator struct {
	values []string
	calls  int
}

func (g *sequenceGenerator) Generate() string {
	v := g.values[min(g.calls, len(g.values)-1)]
	g.calls++
	return v
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newMockKV(t *testing.T) *mock.MockKeyValueRepository {
	t.Helper()
	ctrl := gomock.NewController(t)
	return mock.NewMockKeyValueRepository(ctrl)
}
