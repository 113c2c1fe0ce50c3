package main_test

import (
	"testing"
	"time"

	"github.com/eric2788/ordset/internal/modules/config"
	"github.com/eric2788/ordset/internal/services/workload"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestAppLaunch(t *testing.T) {
	t.Setenv("WORKLOAD_DURATION", "100ms")
	t.Setenv("WORKLOAD_ELEMENTS", "1000")

	var svc *workload.Service
	app := fxtest.New(t,
		config.Module,
		fx.Provide(workload.NewService),
		fx.Invoke(workload.Register),
		fx.Populate(&svc),
	)
	app.RequireStart()
	defer app.RequireStop()

	select {
	case <-app.Done():
	case <-time.After(10 * time.Second):
		t.Fatal("workload did not shut the app down")
	}

	if got := len(svc.Results()); got != 2 {
		t.Fatalf("expected results for 2 strategies, got %d", got)
	}
	t.Log("✅ workload app ran both strategies")
}
