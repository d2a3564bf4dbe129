package i18n

import (
	"fmt"
	"strings"
	"sync"
)

// DefaultLocale 界面文字的固定语言
// DefaultLocale is the fixed display locale
const DefaultLocale = "ru"

// I18n 界面文字目录
// I18n provides the display string catalog
type I18n struct {
	locale   string
	messages map[string]string
	mu       sync.RWMutex
}

var (
	global     *I18n
	globalOnce sync.Once
)

// Global 返回全局 i18n 实例
// Global returns the global i18n instance
func Global() *I18n {
	globalOnce.Do(func() {
		if global == nil {
			global = New("")
		}
	})
	return global
}

// Init 初始化全局 i18n 实例
// Init initializes the global i18n instance
func Init(locale string) {
	global = New(locale)
}

// New 创建 i18n 实例；空 locale 使用 DefaultLocale
// New creates an i18n instance; an empty locale selects DefaultLocale
func New(locale string) *I18n {
	locale = normalizeLocale(locale)

	i := &I18n{
		locale:   locale,
		messages: make(map[string]string),
	}

	// 先加载英文作为 fallback / Load English as fallback first
	for k, v := range EnMessages {
		i.messages[k] = v
	}
	if locale == "ru" {
		for k, v := range RuMessages {
			i.messages[k] = v
		}
	}
	return i
}

// T 翻译函数 / Translation function
func (i *I18n) T(key string, args ...any) string {
	i.mu.RLock()
	tmpl, ok := i.messages[key]
	i.mu.RUnlock()

	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// Locale 返回当前 locale
// Locale returns current locale
func (i *I18n) Locale() string {
	return i.locale
}

func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLocale
	}
	// 去掉 .UTF-8 等后缀 / Remove .UTF-8 suffix
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.ReplaceAll(s, "_", "-")
	lower := strings.ToLower(s)

	if strings.HasPrefix(lower, "ru") {
		return "ru"
	}
	if strings.HasPrefix(lower, "en") {
		return "en"
	}
	return s
}
