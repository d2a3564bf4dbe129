package checklist

import (
	"maps"
	"slices"
	"sync"
)

// Seed 返回初始的 科目 -> 物品 映射
// Seed returns the initial subject -> items mapping
func Seed() map[string][]string {
	return map[string][]string{
		"Математика":    {"Тетрадь", "Учебник", "Линейка"},
		"Русский язык":  {"Тетрадь", "Учебник"},
		"География":     {"Тетрадь", "Атлас", "Контурные карты"},
		"Физ. культура": {"Спортивная форма"},
		"Литература":    {"Тетрадь", "Книга"},
	}
}

// Change 描述一次科目物品替换
// Change describes a replaced (or created) subject entry
type Change struct {
	Subject string
	Items   []string
	Created bool
}

// Store 持有 科目 -> 物品 映射
// Store owns the subject -> items mapping
type Store struct {
	mu        sync.RWMutex
	items     map[string][]string
	version   uint64
	nextID    int
	observers map[int]func(Change)
}

// NewStore 使用种子数据创建 Store
// NewStore creates a store holding the seed checklist
func NewStore() *Store {
	return NewStoreWith(Seed())
}

// NewStoreWith creates a store over a caller-provided mapping. The mapping is
// copied.
func NewStoreWith(items map[string][]string) *Store {
	return &Store{
		items:     cloneItems(items),
		observers: make(map[int]func(Change)),
	}
}

// All 返回当前映射的快照
// All returns a snapshot of the whole mapping
func (s *Store) All() map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items)
}

// Items returns the items of one subject; an unknown subject yields nil.
func (s *Store) Items(subject string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items[subject])
}

// Len returns the number of subject entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// ReplaceSubject 覆盖或新建科目的物品列表（空名字也是合法的键）
// ReplaceSubject upserts the item list of a subject. The empty name is a valid key.
func (s *Store) ReplaceSubject(subject string, items []string) {
	s.mu.Lock()
	_, existed := s.items[subject]
	next := cloneItems(s.items)
	next[subject] = slices.Clone(items)
	s.items = next
	s.version++
	observers := s.snapshotObservers()
	s.mu.Unlock()

	change := Change{Subject: subject, Items: slices.Clone(items), Created: !existed}
	for _, fn := range observers {
		fn(change)
	}
}

// Version 每次替换后递增
// Version increases after every replace
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Subscribe registers fn to be called after every replace. The returned func
// removes the subscription.
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

func cloneItems(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = slices.Clone(v)
	}
	return out
}
