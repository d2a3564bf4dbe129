package schedule

import (
	"maps"
	"slices"
	"sync"
)

// Weekdays 固定的六个上课日，按显示顺序
// Weekdays are the six fixed school days in display order
var Weekdays = []string{
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
}

// DaySchedule 某一天的课程表
// DaySchedule is one weekday with its ordered subjects
type DaySchedule struct {
	Name     string
	Subjects []string
}

// Change 描述一次被接受的整日替换
// Change describes an accepted whole-day replace
type Change struct {
	Day      string
	Subjects []string
}

// IsWeekday reports whether name is one of the fixed day labels.
func IsWeekday(name string) bool {
	return slices.Contains(Weekdays, name)
}

// Seed 返回初始课程表
// Seed returns the initial schedule
func Seed() []DaySchedule {
	base := []string{"Математика", "Русский язык", "География", "Физ. культура"}
	days := make([]DaySchedule, 0, len(Weekdays))
	for _, name := range Weekdays {
		subjects := slices.Clone(base)
		if name == "Суббота" {
			subjects = append(subjects, "Литература")
		}
		days = append(days, DaySchedule{Name: name, Subjects: subjects})
	}
	return days
}

// Store 持有星期 -> 课程列表的映射
// Store owns the weekday -> subjects mapping
type Store struct {
	mu        sync.RWMutex
	days      []DaySchedule
	version   uint64
	nextID    int
	observers map[int]func(Change)
}

// NewStore 使用种子数据创建 Store
// NewStore creates a store holding the seed schedule
func NewStore() *Store {
	return NewStoreWith(Seed())
}

// NewStoreWith creates a store over a caller-provided schedule. The slice is
// copied.
func NewStoreWith(days []DaySchedule) *Store {
	return &Store{
		days:      cloneDays(days),
		observers: make(map[int]func(Change)),
	}
}

// All 返回当前快照（按固定顺序）
// All returns a snapshot of every day in fixed order
func (s *Store) All() []DaySchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDays(s.days)
}

// Day returns the subjects of the named day, or nil with false when unknown.
func (s *Store) Day(name string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.days {
		if d.Name == name {
			return slices.Clone(d.Subjects), true
		}
	}
	return nil, false
}

// ReplaceDay 替换某天的全部课程；未知的日期被忽略
// ReplaceDay replaces the subject list of an existing day; unknown names are a no-op.
// It reports whether a day was replaced.
func (s *Store) ReplaceDay(name string, subjects []string) bool {
	s.mu.Lock()
	idx := slices.IndexFunc(s.days, func(d DaySchedule) bool { return d.Name == name })
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	next := cloneDays(s.days)
	next[idx] = DaySchedule{Name: name, Subjects: slices.Clone(subjects)}
	s.days = next
	s.version++
	observers := s.snapshotObservers()
	s.mu.Unlock()

	change := Change{Day: name, Subjects: slices.Clone(subjects)}
	for _, fn := range observers {
		fn(change)
	}
	return true
}

// Version 每次成功替换后递增
// Version increases after every accepted replace
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Subscribe registers fn to be called after every accepted replace. The
// returned func removes the subscription.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *Store) snapshotObservers() []func(Change) {
	ids := slices.Sorted(maps.Keys(s.observers))
	out := make([]func(Change), 0, len(ids))
	for _, id := range ids {
		out = append(out, s.observers[id])
	}
	return out
}

func cloneDays(days []DaySchedule) []DaySchedule {
	out := make([]DaySchedule, len(days))
	for i, d := range days {
		out[i] = DaySchedule{Name: d.Name, Subjects: slices.Clone(d.Subjects)}
	}
	return out
}
