package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/aquadrift/internal/domain/entity"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (entity.InputFrame, bool) {
	if r.frame >= len(r.data.Frames) {
		return entity.InputFrame{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return fi.InputFrame(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// DT returns the recorded tick length, or fallback when the file has none
func (r *Replayer) DT(fallback float64) float64 {
	if r.data.DT > 0 {
		return r.data.DT
	}
	return fallback
}

// Level returns the level the session was recorded on
func (r *Replayer) Level() string {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing.
// Every frame repeats in; edge flags are set only on the first frame.
func CreateTestReplayData(frames int, in entity.InputFrame) ReplayData {
	data := ReplayData{
		Version:   Version,
		Level:     "test",
		DT:        1.0 / 60.0,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	held := in
	held.JumpPressed = false
	held.JumpReleased = false
	held.DashPressed = false
	held.ShootPressed = false
	held.HurtPressed = false

	for i := 0; i < frames; i++ {
		if i == 0 {
			data.Frames[i] = FromInputFrame(i, in)
			continue
		}
		data.Frames[i] = FromInputFrame(i, held)
	}

	return data
}
