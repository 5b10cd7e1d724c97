package app

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/domain"
)

// Errors exposed by the service layer. Both mark untrusted input that the
// browser UI never produces on its own.
var (
	ErrBadCell    = errors.New("cell index out of range")
	ErrNoSuchMove = errors.New("no such history move")
)

// Snapshot is an immutable view of the game handed to the rendering layer.
type Snapshot struct {
	ID         string
	Board      domain.Board
	Status     string
	Winner     domain.Cell
	WinLine    [3]int
	HasWinLine bool
	NextPlayer domain.Cell
	Moves      []domain.MoveItem
	Order      domain.Order
	Created    time.Time
	Updated    time.Time
}

// Service owns the single game of the process and serializes all access to
// it; HTTP handlers run concurrently even though the game itself is a
// synchronous state machine.
type Service struct {
	mu      sync.Mutex
	game    *domain.Game
	id      string
	created time.Time
	updated time.Time
}

// NewService creates a service with a fresh game.
func NewService() *Service {
	s := &Service{}
	s.resetLocked()
	return s
}

func (s *Service) resetLocked() {
	now := time.Now()
	s.game = domain.New()
	s.id = uuid.NewString()
	s.created = now
	s.updated = now
}

func (s *Service) snapshotLocked() Snapshot {
	v := s.game.Verdict()
	snap := Snapshot{
		ID:         s.id,
		Board:      s.game.CurrentBoard(),
		Status:     s.game.Status(),
		Winner:     v.Winner,
		NextPlayer: s.game.NextPlayer(),
		Moves:      s.game.MoveList(),
		Order:      s.game.Order(),
		Created:    s.created,
		Updated:    s.updated,
	}
	if v.Winner != domain.Empty {
		snap.WinLine = v.Line
		snap.HasWinLine = true
	}
	return snap
}

// Current returns the present state without mutating anything.
func (s *Service) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Play applies a move at cell index 0..8 and returns the resulting state.
// A legal-move rejection (occupied cell, decided board) is a silent no-op
// reported through applied; an index off the board is a caller error.
func (s *Service) Play(index int) (snap Snapshot, applied bool, err error) {
	if index < 0 || index > 8 {
		return Snapshot{}, false, ErrBadCell
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	applied = s.game.Play(index)
	if applied {
		s.updated = time.Now()
	}
	return s.snapshotLocked(), applied, nil
}

// JumpTo moves the viewer to history entry i. The range check guards the
// domain precondition against forged requests.
func (s *Service) JumpTo(i int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= s.game.Len() {
		return Snapshot{}, ErrNoSuchMove
	}
	s.game.JumpTo(i)
	s.updated = time.Now()
	return s.snapshotLocked(), nil
}

// ToggleOrder flips the move-list display order.
func (s *Service) ToggleOrder() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.ToggleOrder()
	return s.snapshotLocked()
}

// Reset abandons the current game and starts a new one under a new id.
func (s *Service) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	return s.snapshotLocked()
}
