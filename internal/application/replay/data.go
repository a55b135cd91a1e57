package replay

import "github.com/younwookim/aquadrift/internal/domain/entity"

// Version is written into every recording
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int     `json:"f"`             // Frame number
	X   float64 `json:"x,omitempty"`   // Horizontal axis
	Y   float64 `json:"y,omitempty"`   // Vertical axis
	JP  bool    `json:"jp,omitempty"`  // JumpPressed
	JH  bool    `json:"jh,omitempty"`  // JumpHeld
	JR  bool    `json:"jr,omitempty"`  // JumpReleased
	Dsh bool    `json:"dsh,omitempty"` // DashPressed
	Sh  bool    `json:"sh,omitempty"`  // ShootPressed
	Hu  bool    `json:"hu,omitempty"`  // HurtPressed
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	DT        float64      `json:"dt"` // fixed tick length the session ran at
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FromInputFrame captures one tick of input
func FromInputFrame(frame int, in entity.InputFrame) FrameInput {
	return FrameInput{
		F:   frame,
		X:   in.MoveX,
		Y:   in.MoveY,
		JP:  in.JumpPressed,
		JH:  in.JumpHeld,
		JR:  in.JumpReleased,
		Dsh: in.DashPressed,
		Sh:  in.ShootPressed,
		Hu:  in.HurtPressed,
	}
}

// InputFrame converts the recorded frame back into movement input
func (fi FrameInput) InputFrame() entity.InputFrame {
	return entity.InputFrame{
		MoveX:        fi.X,
		MoveY:        fi.Y,
		JumpPressed:  fi.JP,
		JumpHeld:     fi.JH,
		JumpReleased: fi.JR,
		DashPressed:  fi.Dsh,
		ShootPressed: fi.Sh,
		HurtPressed:  fi.Hu,
	}
}
