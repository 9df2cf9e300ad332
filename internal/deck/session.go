package deck

// Session is the mutable play state over a Deck. It has a single owner and
// no internal locking.
type Session struct {
	deck      Deck
	index     int
	completed map[int64]struct{}
	flipped   bool
	finished  bool
}

// Snapshot is a read-only copy of session state.
type Snapshot struct {
	CurrentIndex int
	Completed    int
	Total        int
	IsFlipped    bool
	Finished     bool
}

func NewSession(d Deck) *Session {
	return &Session{deck: d, completed: make(map[int64]struct{})}
}

func (s *Session) Deck() Deck { return s.deck }

func (s *Session) Index() int { return s.index }

func (s *Session) IsFlipped() bool { return s.flipped }

func (s *Session) Finished() bool { return s.finished }

// Current returns the card at the current index.
func (s *Session) Current() (Card, error) { return s.deck.CardAt(s.index) }

// HasNext reports whether advancing stays inside the deck.
func (s *Session) HasNext() bool { return s.index+1 < s.deck.Len() }

// HasPrev reports whether retreating stays inside the deck.
func (s *Session) HasPrev() bool { return s.index > 0 }

// SetIndex moves to i and clears the flip flag. Values outside
// [0, len] are rejected.
func (s *Session) SetIndex(i int) error {
	if i < 0 || i > s.deck.Len() {
		return ErrOutOfRange
	}
	s.index = i
	s.flipped = false
	return nil
}

func (s *Session) SetFlipped(v bool) { s.flipped = v }

func (s *Session) SetFinished() { s.finished = true }

// MarkCompleted records id as known. Repeated calls and unknown ids are no-ops.
// It reports whether the set grew.
func (s *Session) MarkCompleted(id int64) bool {
	if !s.deck.contains(id) {
		return false
	}
	if _, ok := s.completed[id]; ok {
		return false
	}
	s.completed[id] = struct{}{}
	return true
}

func (s *Session) IsCompleted(id int64) bool {
	_, ok := s.completed[id]
	return ok
}

func (s *Session) CompletedCount() int { return len(s.completed) }

// Reset returns to the first card with nothing completed.
func (s *Session) Reset() {
	s.index = 0
	s.completed = make(map[int64]struct{})
	s.flipped = false
	s.finished = false
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		CurrentIndex: s.index,
		Completed:    len(s.completed),
		Total:        s.deck.Len(),
		IsFlipped:    s.flipped,
		Finished:     s.finished,
	}
}
