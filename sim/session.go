package sim

import (
	"fmt"
	"sync"

	"github.com/yezhuoyang/HGPCode/hgp"
)

// Session is the mutable companion of an immutable hgp.Code: it owns the
// error vectors and serves syndrome recomputations. Construct via
// NewSession; the zero value is not usable.
type Session struct {
	mu   sync.RWMutex
	code *hgp.Code
	xErr []byte // bit-flip errors, length code.N
	zErr []byte // phase-flip errors, length code.N
}

// NewSession wraps a constructed code with zeroed error vectors.
// Returns hgp.ErrNilCode on a nil code.
// Complexity: O(N).
func NewSession(code *hgp.Code) (*Session, error) {
	if code == nil {
		return nil, fmt.Errorf("sim.NewSession: %w", hgp.ErrNilCode)
	}

	return &Session{
		code: code,
		xErr: make([]byte, code.N),
		zErr: make([]byte, code.N),
	}, nil
}

// Code returns the underlying immutable code record.
func (s *Session) Code() *hgp.Code {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.code
}

// checkQubit validates q against the current code under the caller's lock.
func (s *Session) checkQubit(method string, q int) error {
	if q < 0 || q >= s.code.N {
		return fmt.Errorf("sim.%s(%d): N=%d: %w", method, q, s.code.N, hgp.ErrQubitOutOfRange)
	}

	return nil
}

// ToggleX flips the bit-flip error bit on qubit q.
// Returns hgp.ErrQubitOutOfRange on an invalid index.
// Complexity: O(1).
func (s *Session) ToggleX(q int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkQubit("ToggleX", q); err != nil {
		return err
	}
	s.xErr[q] ^= 1

	return nil
}

// ToggleZ flips the phase-flip error bit on qubit q.
// Returns hgp.ErrQubitOutOfRange on an invalid index.
// Complexity: O(1).
func (s *Session) ToggleZ(q int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkQubit("ToggleZ", q); err != nil {
		return err
	}
	s.zErr[q] ^= 1

	return nil
}

// SetX places (present=true) or clears a bit-flip error on qubit q.
// Complexity: O(1).
func (s *Session) SetX(q int, present bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkQubit("SetX", q); err != nil {
		return err
	}
	s.xErr[q] = bit(present)

	return nil
}

// SetZ places (present=true) or clears a phase-flip error on qubit q.
// Complexity: O(1).
func (s *Session) SetZ(q int, present bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkQubit("SetZ", q); err != nil {
		return err
	}
	s.zErr[q] = bit(present)

	return nil
}

// ClearErrors zeroes both error vectors.
// Complexity: O(N).
func (s *Session) ClearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.xErr)
	clear(s.zErr)
}

// XErrors returns a copy of the bit-flip error vector.
// Complexity: O(N).
func (s *Session) XErrors() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]byte(nil), s.xErr...)
}

// ZErrors returns a copy of the phase-flip error vector.
// Complexity: O(N).
func (s *Session) ZErrors() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]byte(nil), s.zErr...)
}

// Syndromes recomputes both syndromes from the current error vectors:
// xSyn = HZ·xErrors (Z-check outcomes), zSyn = HX·zErrors (X-check
// outcomes). Full recomputation on every call.
// Complexity: O((NumXChecks+NumZChecks)·N).
func (s *Session) Syndromes() (xSyn, zSyn []byte, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	xSyn, err = s.code.XSyndrome(s.xErr)
	if err != nil {
		return nil, nil, fmt.Errorf("sim.Syndromes: %w", err)
	}
	zSyn, err = s.code.ZSyndrome(s.zErr)
	if err != nil {
		return nil, nil, fmt.Errorf("sim.Syndromes: %w", err)
	}

	return xSyn, zSyn, nil
}

// Reset swaps in a new code and zeroes both error vectors. The previous
// code record is untouched; a failed Reset leaves the session unchanged.
// Returns hgp.ErrNilCode on a nil code.
// Complexity: O(N).
func (s *Session) Reset(code *hgp.Code) error {
	if code == nil {
		return fmt.Errorf("sim.Reset: %w", hgp.ErrNilCode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = code
	s.xErr = make([]byte, code.N)
	s.zErr = make([]byte, code.N)

	return nil
}

// bit converts a bool to its GF(2) byte.
func bit(b bool) byte {
	if b {
		return 1
	}

	return 0
}
