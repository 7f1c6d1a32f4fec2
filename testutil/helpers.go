package testutil

import (
	"context"
	"testing"

	"github.com/kbukum/gobridge/component"
)

// StartComponent starts c and stops it when the test ends.
//
//	c := bridge.NewComponent(cfg)
//	testutil.StartComponent(t, c)
func StartComponent(t testing.TB, c component.Component) {
	t.Helper()

	ctx := context.Background()
	if err := c.Start(ctx); err != nil {
		t.Fatalf("start %s: %v", c.Name(), err)
	}
	t.Cleanup(func() {
		if err := c.Stop(ctx); err != nil {
			t.Errorf("stop %s: %v", c.Name(), err)
		}
	})
}
