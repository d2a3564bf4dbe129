// Package session holds the state shared by every screen for the lifetime of
// the process. Nothing here is persisted.
package session

import (
	"io"
	"log/slog"
	"sync"

	"schoolbag/internal/checklist"
	"schoolbag/internal/schedule"
)

// Session 应用的共享会话状态
// Session is the application's single shared state
type Session struct {
	Schedule  *schedule.Store
	Checklist *checklist.Store

	logger *slog.Logger
}

// New 创建一个带种子数据的会话
// New creates a session seeded with the initial schedule and checklist
func New(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		Schedule:  schedule.NewStore(),
		Checklist: checklist.NewStore(),
		logger:    logger,
	}
}

var (
	shared     *Session
	sharedOnce sync.Once
)

// Shared returns the process-wide session, creating it on first access.
func Shared(logger *slog.Logger) *Session {
	sharedOnce.Do(func() {
		shared = New(logger)
	})
	return shared
}

// SaveDay 保存某天的课程，未知日期被静默忽略
// SaveDay stores a day's subjects; an unknown day is ignored
func (s *Session) SaveDay(day string, subjects []string) {
	if !s.Schedule.ReplaceDay(day, subjects) {
		s.logger.Debug("ignored schedule replace for unknown day", "day", day)
		return
	}
	s.logger.Debug("schedule replaced", "day", day, "subjects", len(subjects))
}

// SaveSubject 保存科目的物品列表
// SaveSubject upserts a subject's items
func (s *Session) SaveSubject(subject string, items []string) {
	s.Checklist.ReplaceSubject(subject, items)
	s.logger.Debug("checklist replaced", "subject", subject, "items", len(items))
}

// BuildChecklist 计算某天的物品清单
// BuildChecklist derives the items to bring on day from the current snapshots
func (s *Session) BuildChecklist(day string) []checklist.Entry {
	return checklist.Build(day, s.Schedule.All(), s.Checklist.All())
}

// Revision identifies the pair of store snapshots a derived view was computed
// from.
type Revision struct {
	Schedule  uint64
	Checklist uint64
}

// Revision returns the current store versions.
func (s *Session) Revision() Revision {
	return Revision{Schedule: s.Schedule.Version(), Checklist: s.Checklist.Version()}
}
