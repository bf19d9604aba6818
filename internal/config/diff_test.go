package config_test

import (
	"testing"

	"github.com/diceforge/npcdb/internal/config"
)

func TestDiff(t *testing.T) {
	t.Parallel()

	base := func() *config.Config {
		return &config.Config{
			Server: config.ServerConfig{ListenAddr: ":8080", LogLevel: config.LogInfo},
			Export: config.ExportConfig{ModuleName: "Tribute Lands"},
		}
	}

	t.Run("no changes", func(t *testing.T) {
		t.Parallel()
		d := config.Diff(base(), base())
		if !d.Empty() {
			t.Errorf("Diff() = %+v, want empty", d)
		}
	})

	t.Run("log level change", func(t *testing.T) {
		t.Parallel()
		updated := base()
		updated.Server.LogLevel = config.LogDebug
		d := config.Diff(base(), updated)
		if !d.LogLevelChanged || d.NewLogLevel != config.LogDebug {
			t.Errorf("Diff() = %+v, want log level change to debug", d)
		}
	})

	t.Run("export change", func(t *testing.T) {
		t.Parallel()
		updated := base()
		updated.Export.ModuleName = "Saltlands Gazetteer"
		d := config.Diff(base(), updated)
		if !d.ExportChanged {
			t.Errorf("Diff() = %+v, want export change", d)
		}
	})

	t.Run("listen addr change is not reloadable", func(t *testing.T) {
		t.Parallel()
		updated := base()
		updated.Server.ListenAddr = ":9090"
		d := config.Diff(base(), updated)
		if !d.Empty() {
			t.Errorf("Diff() = %+v, want empty for restart-only change", d)
		}
	})
}
