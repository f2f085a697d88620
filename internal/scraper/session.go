package scraper

import "sync"

// Session holds the mutable scan state for one source: the seen-set that
// deduplicates listings across repeated scans, the single-flight guard, and
// the most recent successful result set. The seen-set survives until Clear.
type Session struct {
	mu          sync.Mutex
	seenIDs     map[string]struct{}
	scanning    bool
	lastResults []Listing
}

// NewSession creates an empty scan session
func NewSession() *Session {
	return &Session{
		seenIDs: make(map[string]struct{}),
	}
}

// Begin marks the session as scanning. It returns false when a scan is
// already in flight; the caller must reject the request without queuing.
func (s *Session) Begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scanning {
		return false
	}
	s.scanning = true
	return true
}

// End clears the scanning flag. Called on every scan exit path.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanning = false
}

// Seen reports whether a listing ID was extracted before in this session
func (s *Session) Seen(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seenIDs[id]
	return ok
}

// MarkSeen records a listing ID. Only called on a genuine extraction, so a
// failed card does not poison the seen-set.
func (s *Session) MarkSeen(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seenIDs[id] = struct{}{}
}

// SetLastResults stores the most recent successful scan output
func (s *Session) SetLastResults(listings []Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastResults = listings
}

// LastResults returns the most recent successful scan output
func (s *Session) LastResults() []Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResults
}

// Clear resets the seen-set and the cached results. The scanning flag is
// left alone so an in-flight scan still clears it itself.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seenIDs = make(map[string]struct{})
	s.lastResults = nil
}
