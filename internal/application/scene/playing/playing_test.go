package playing

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/aquadrift/internal/application/replay"
	"github.com/younwookim/aquadrift/internal/application/scene"
	"github.com/younwookim/aquadrift/internal/application/state"
	"github.com/younwookim/aquadrift/internal/application/system"
	"github.com/younwookim/aquadrift/internal/domain/entity"
	"github.com/younwookim/aquadrift/internal/infrastructure/asset"
	"github.com/younwookim/aquadrift/internal/infrastructure/config"
	"github.com/younwookim/aquadrift/internal/infrastructure/watch"
)

const testDT = 1.0 / 60.0

// createTestConfig returns the shipped tuning
func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics:  config.Default(),
		Entities: config.DefaultEntities(),
	}
}

func createTestClips(t *testing.T) *asset.Registry {
	t.Helper()
	clips := make([]*asset.Clip, 0, len(system.AnimationStates))
	for _, name := range system.AnimationStates {
		frames := []*ebiten.Image{new(ebiten.Image), new(ebiten.Image)}
		loop := name != system.AnimShoot && name != system.AnimHurt
		clip, err := asset.NewClip(name, frames, nil, 10, loop)
		require.NoError(t, err)
		clips = append(clips, clip)
	}
	reg, err := asset.NewRegistry(clips...)
	require.NoError(t, err)
	return reg
}

func createTestLevel() *entity.Level {
	cfg := config.Default()
	return system.LoadLevel(config.DefaultArena(), cfg.Level, config.DefaultEntities().Hazard)
}

func createTestPlaying(t *testing.T, opts Options) *Playing {
	t.Helper()
	p, err := New(createTestConfig(), createTestClips(t), createTestLevel(), opts)
	require.NoError(t, err)
	return p
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := createTestPlaying(t, Options{})

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Nil(t, p.recorder)
	assert.Nil(t, p.replayer)

	player := p.Simulation().Player()
	assert.Equal(t, 352.0, player.X)
	assert.Equal(t, 96.0, player.Y)
}

func TestNewPlaying_MissingClip(t *testing.T) {
	clip, err := asset.NewClip(system.AnimIdle, []*ebiten.Image{new(ebiten.Image)}, nil, 6, true)
	require.NoError(t, err)
	reg, err := asset.NewRegistry(clip)
	require.NoError(t, err)

	_, err = New(createTestConfig(), reg, createTestLevel(), Options{})
	assert.ErrorIs(t, err, asset.ErrUnknownClip)
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p := createTestPlaying(t, Options{})

	// Normal update should return nil (stay on same scene)
	next, err := p.Update(testDT)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
	assert.True(t, p.Simulation().Player().Movement.OnGround)
}

func TestPlaying_OnEnterOnExit(t *testing.T) {
	p := createTestPlaying(t, Options{})

	assert.NotPanics(t, func() {
		p.OnEnter()
		p.OnExit()
	})
}

func TestPlaying_Step(t *testing.T) {
	p := createTestPlaying(t, Options{})

	for i := 0; i < 30; i++ {
		p.Step(entity.InputFrame{MoveX: 1}, testDT)
	}

	assert.Greater(t, p.Simulation().Player().X, 352.0)
	assert.Equal(t, system.AnimSwim, p.Frame().State)
	assert.NotNil(t, p.Frame().Image)
}

func TestPlaying_BreathingOnlyWhenIdle(t *testing.T) {
	p := createTestPlaying(t, Options{})

	seen := map[int]bool{}
	for i := 0; i < 150; i++ {
		p.Step(entity.InputFrame{}, testDT)
		seen[p.breath.Offset()] = true
	}
	assert.True(t, seen[1], "rises while idle")
	assert.True(t, seen[-1], "falls while idle")

	p.Step(entity.InputFrame{MoveX: 1}, testDT)
	assert.Equal(t, 0, p.breath.Offset(), "moving resets the bob")
}

func TestPlaying_SpritePosition(t *testing.T) {
	p := createTestPlaying(t, Options{})
	p.Step(entity.InputFrame{MoveX: 1}, testDT)
	player := p.Simulation().Player()

	camX, camY := p.Camera()
	x, y := p.spritePosition(camX, camY)

	assert.Equal(t, int(player.X)-camX, x)
	assert.Equal(t, int(player.Y)-camY+6, y, "feet offset pushes the sprite down")
}

func TestCameraOffset(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy float64
		wantX  int
		wantY  int
	}{
		{"spawn centre", 384, 128, -256, -232},
		{"rounds half away from zero", 640.5, 360.5, 1, 1},
		{"origin", 640, 360, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := cameraOffset(tt.cx, tt.cy, 1280, 720)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestPlaying_DebugLines(t *testing.T) {
	p := createTestPlaying(t, Options{})
	p.Step(entity.InputFrame{}, testDT)

	lines := p.DebugLines()

	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "state=idle")
	assert.Contains(t, lines[1], "pos=(352.0,96.0)")
	assert.Contains(t, lines[2], "cling_side=0")
	assert.Contains(t, lines[3], "lockout=0.00")
	assert.False(t, p.Debug())
}

func TestPlaying_Reload(t *testing.T) {
	calls := 0
	p := createTestPlaying(t, Options{
		LevelName: "levels/lvl1.txt",
		LoadLevel: func() *entity.Level {
			calls++
			return system.LoadLevel(&config.LevelSource{Rows: []string{
				"#####",
				"#P..#",
				"#...#",
				"#####",
			}}, config.Default().Level, config.DefaultEntities().Hazard)
		},
	})
	for i := 0; i < 10; i++ {
		p.Step(entity.InputFrame{MoveX: 1}, testDT)
	}

	p.Reload()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 32.0, p.Simulation().Player().X)
	assert.Equal(t, 32.0, p.Simulation().Player().Y)
	assert.Equal(t, 5, p.Simulation().Level().Cols)
}

func TestPlaying_DrainsWatcherErrors(t *testing.T) {
	w, err := watch.New(t.TempDir())
	require.NoError(t, err)
	defer w.Close()

	calls := 0
	p := createTestPlaying(t, Options{
		LevelName: "levels/lvl1.txt",
		LoadLevel: func() *entity.Level {
			calls++
			return createTestLevel()
		},
		Watcher: w,
	})

	w.Errors <- errors.New("too many open files")
	w.Errors <- errors.New("queue overflow")
	p.pollWatcher()

	assert.Empty(t, w.Errors)
	assert.Zero(t, calls, "errors never reload the level")
}

func TestPlaying_WithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p := createTestPlaying(t, Options{RecordPath: path, LevelName: "levels/lvl1.txt"})

	require.NotNil(t, p.recorder)

	// Update should record frames
	_, err := p.Update(testDT)
	require.NoError(t, err)
	_, err = p.Update(testDT)
	require.NoError(t, err)

	assert.Equal(t, 2, p.recorder.FrameCount())

	p.OnExit()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var data replay.ReplayData
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Equal(t, replay.Version, data.Version)
	assert.Equal(t, "levels/lvl1.txt", data.Level)
	assert.Equal(t, testDT, data.DT)
	assert.Len(t, data.Frames, 2)
}

func TestPlaying_Replay(t *testing.T) {
	data := replay.CreateTestReplayData(20, entity.InputFrame{MoveX: -1})
	p := createTestPlaying(t, Options{Replay: &data, RecordPath: "ignored.json"})

	assert.Equal(t, state.StateReplaying, p.State())
	assert.Nil(t, p.recorder, "replays are not re-recorded")

	for i := 0; i < 20; i++ {
		_, err := p.Update(testDT)
		require.NoError(t, err)
	}

	assert.Equal(t, state.StateReplayDone, p.State())
	assert.Less(t, p.Simulation().Player().X, 352.0)

	// further updates keep the final frame
	x := p.Simulation().Player().X
	_, err := p.Update(testDT)
	require.NoError(t, err)
	assert.Equal(t, x, p.Simulation().Player().X)
}

func TestPlaying_ReplayMatchesDirectSimulation(t *testing.T) {
	data := replay.CreateTestReplayData(45, entity.InputFrame{MoveX: 1, JumpPressed: true, JumpHeld: true})
	p := createTestPlaying(t, Options{Replay: &data})
	for i := 0; i < 45; i++ {
		_, err := p.Update(testDT)
		require.NoError(t, err)
	}

	direct := system.NewSimulation(config.Default(), config.DefaultEntities(), createTestLevel())
	for _, fi := range data.Frames {
		direct.Step(fi.InputFrame(), data.DT)
	}

	assert.Equal(t, direct.Player().Body, p.Simulation().Player().Body)
	assert.Equal(t, direct.Player().Movement, p.Simulation().Player().Movement)
}

func TestRecorder_StopAndIsRecording(t *testing.T) {
	r := NewRecorder("test", testDT)

	assert.True(t, r.IsRecording())

	r.Stop()

	assert.False(t, r.IsRecording())
}

func TestRecorder_DoesNotRecordWhenStopped(t *testing.T) {
	r := NewRecorder("test", testDT)
	r.Stop()

	// Should not record when stopped
	r.RecordFrame(entity.InputFrame{MoveX: -1})

	assert.Equal(t, 0, r.FrameCount())
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder("test", testDT)

	r.RecordFrame(entity.InputFrame{MoveX: -1, DashPressed: true})
	r.RecordFrame(entity.InputFrame{JumpHeld: true})

	data := r.GetData()
	require.Len(t, data.Frames, 2)
	assert.Equal(t, replay.FrameInput{F: 0, X: -1, Dsh: true}, data.Frames[0])
	assert.Equal(t, replay.FrameInput{F: 1, JH: true}, data.Frames[1])
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder("test", testDT)

	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}
