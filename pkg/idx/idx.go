// Package idx issues ULID identifiers. IDs from one process sort by creation
// time, including IDs created within the same millisecond.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type ID string

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

// Generator hands out monotonic ULIDs and is safe for concurrent use.
type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewGenerator() *Generator {
	return &Generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// NewAt returns an ID stamped with t.
func (g *Generator) NewAt(t time.Time) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ID(ulid.MustNew(ulid.Timestamp(t), g.entropy).String())
}

func (g *Generator) New() ID { return g.NewAt(time.Now().UTC()) }

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

func generator() *Generator {
	defaultOnce.Do(func() { defaultGen = NewGenerator() })
	return defaultGen
}

// New returns an ID for now from the process-wide generator.
func New() ID { return generator().New() }

// NewAt returns an ID stamped with t from the process-wide generator.
func NewAt(t time.Time) ID { return generator().NewAt(t) }

// Parse validates s as a canonical ULID.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalid
	}
	if _, err := ulid.ParseStrict(s); err != nil {
		return "", ErrInvalid
	}
	return ID(s), nil
}

func (id ID) String() string { return string(id) }

// Time is the creation time embedded in the ID, or the zero time when the
// ID does not parse.
func (id ID) Time() time.Time {
	u, err := ulid.ParseStrict(string(id))
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}

// Compare orders IDs lexically, which for valid IDs is creation order.
func Compare(a, b ID) int { return strings.Compare(string(a), string(b)) }
