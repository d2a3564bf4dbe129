package editor

import (
	"slices"
	"strings"
)

// DefaultSlots 科目编辑器默认的物品槽数
// DefaultSlots is the number of item slots the subject editor shows
const DefaultSlots = 4

// SubjectSaver 接收科目物品替换
// SubjectSaver accepts a subject's item list
type SubjectSaver interface {
	SaveSubject(subject string, items []string)
}

// Subject 科目物品编辑缓冲
// Subject is the edit buffer of one subject's items
type Subject struct {
	name  string
	slots []string
}

// NewSubject creates a buffer with DefaultSlots slots, or more when the
// subject already has more items, so that saving never drops an item.
func NewSubject(name string, items []string) *Subject {
	slots := make([]string, max(DefaultSlots, len(items)))
	copy(slots, items)
	return &Subject{name: name, slots: slots}
}

// Name returns the subject name; it may be empty.
func (s *Subject) Name() string { return s.name }

// Len returns the number of slots.
func (s *Subject) Len() int { return len(s.slots) }

// Set updates slot i; out-of-range indices are ignored.
func (s *Subject) Set(i int, text string) {
	if i < 0 || i >= len(s.slots) {
		return
	}
	s.slots[i] = text
}

// Get returns slot i, or "" when out of range.
func (s *Subject) Get(i int) string {
	if i < 0 || i >= len(s.slots) {
		return ""
	}
	return s.slots[i]
}

// Slots returns every slot in order, blanks included.
func (s *Subject) Slots() []string {
	return slices.Clone(s.slots)
}

// Items returns the non-blank slots in slot order.
func (s *Subject) Items() []string {
	out := make([]string, 0, len(s.slots))
	for _, v := range s.slots {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Save 保存非空白槽位到 saver
// Save hands the non-blank slots to saver
func (s *Subject) Save(saver SubjectSaver) {
	saver.SaveSubject(s.name, s.Items())
}
