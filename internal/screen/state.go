package screen

import "users-management/internal/entities"

// Status tracks the mount load of a screen.
type Status int

const (
	// StatusIdle means the screen has not been mounted yet.
	StatusIdle Status = iota
	// StatusLoading means the mount load is in flight.
	StatusLoading
	// StatusReady means the list and form can be rendered.
	StatusReady
	// StatusFailed means the mount load failed; the screen only shows LoadError.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a point-in-time copy of a screen's view state.
type State struct {
	Status    Status
	LoadError string
	Users     []entities.User
	Draft     entities.UserDraft
	EditMode  bool
	// EditID is zero unless EditMode is set.
	EditID int64
}

func (s State) clone() State {
	out := s
	out.Users = make([]entities.User, len(s.Users))
	copy(out.Users, s.Users)
	return out
}

func (s *State) indexOf(id int64) int {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) resetForm() {
	s.Draft = entities.UserDraft{}
	s.EditMode = false
	s.EditID = 0
}
