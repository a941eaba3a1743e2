package engine

// DefaultLogCapacity is the number of battle log lines kept when no
// capacity is configured.
const DefaultLogCapacity = 5

// BattleLog is a bounded FIFO of player-facing combat lines. Appending past
// capacity evicts the oldest line. Not safe for concurrent use; a Session
// owns its log exclusively.
type BattleLog struct {
	capacity int
	lines    []string
}

// NewBattleLog creates an empty log. A capacity <= 0 falls back to
// DefaultLogCapacity.
func NewBattleLog(capacity int) *BattleLog {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &BattleLog{
		capacity: capacity,
		lines:    make([]string, 0, capacity),
	}
}

// Append adds a line, evicting the oldest when full.
// Postcondition: Len() <= capacity.
func (l *BattleLog) Append(line string) {
	if len(l.lines) == l.capacity {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:l.capacity-1]
	}
	l.lines = append(l.lines, line)
}

// Lines returns a copy of the current lines, oldest first.
func (l *BattleLog) Lines() []string {
	cp := make([]string, len(l.lines))
	copy(cp, l.lines)
	return cp
}

// Len returns the number of retained lines.
func (l *BattleLog) Len() int { return len(l.lines) }
