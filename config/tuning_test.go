package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTuningOverlaysOnlyGivenFields(t *testing.T) {
	Reset()
	base := CurrentTuning()

	data := []byte(`
player:
  coyote_time: 120ms
  move_speed: 200
boar:
  detect_range: 180
combat:
  hit_debounce: 250ms
`)
	got, err := ParseTuning(base, data)
	require.NoError(t, err)

	assert.Equal(t, 120*time.Millisecond, got.Player.CoyoteTime)
	assert.Equal(t, 200.0, got.Player.MoveSpeed)
	assert.Equal(t, 180.0, got.Boar.DetectRange)
	assert.Equal(t, 250*time.Millisecond, got.Combat.HitDebounce)

	// Untouched fields keep the base values.
	assert.Equal(t, base.Player.JumpForce, got.Player.JumpForce)
	assert.Equal(t, base.Boar.ChargeRange, got.Boar.ChargeRange)
	assert.Equal(t, base.Spawner, got.Spawner)
}

func TestParseTuningRejectsInvalid(t *testing.T) {
	Reset()
	base := CurrentTuning()

	_, err := ParseTuning(base, []byte("player:\n  max_jumps: 3\n"))
	assert.Error(t, err)

	_, err = ParseTuning(base, []byte("boar:\n  charge_range: 500\n"))
	assert.Error(t, err)

	_, err = ParseTuning(base, []byte("player: [not, a, map]\n"))
	assert.Error(t, err)
}

func TestLoadTuningAppliesGlobals(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boar:\n  stun_duration: 1s\n"), 0o644))

	require.NoError(t, LoadTuning(path))
	assert.Equal(t, time.Second, Boar.StunDuration)

	assert.Error(t, LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Equal(t, time.Second, Boar.StunDuration, "failed load keeps previous values")
}

func TestWatchTuningReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boar:\n  hp: 40\n"), 0o644))

	w, err := WatchTuning(path)
	require.NoError(t, err)
	defer w.Close()

	// Other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("boar:\n  hp: 50\n"), 0o644))

	select {
	case got := <-w.Events:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, got)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for tuning write")
	}

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "close is idempotent")
}

func TestWatchTuningSettlesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boar:\n  hp: 40\n"), 0o644))

	w, err := WatchTuning(path)
	require.NoError(t, err)
	defer w.Close()

	for hp := 41; hp <= 45; hp++ {
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("boar:\n  hp: %d\n", hp)), 0o644))
	}

	select {
	case <-w.Events:
	case <-time.After(2 * time.Second):
		t.Fatal("no event for tuning writes")
	}

	// The settled file is the last write.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hp: 45")

	select {
	case <-w.Events:
		t.Fatal("burst reported more than once")
	case <-time.After(3 * settleDelay):
	}
}
