package mvc

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const listSize = 5

// ResourceList is a page-owned list of server items. Every load replaces the
// whole list. An empty load renders its placeholder line.
type ResourceList[T any] struct {
	Items       []T
	Cursor      int
	Placeholder string
	Size        int

	loaded bool
	render func(T) string
}

func NewResourceList[T any](placeholder string, render func(T) string) ResourceList[T] {
	return ResourceList[T]{Placeholder: placeholder, Size: listSize, render: render}
}

func (l *ResourceList[T]) Replace(items []T) {
	l.Items = append([]T(nil), items...)
	l.loaded = true
	l.clamp()
}

func (l *ResourceList[T]) Remove(i int) {
	if i < 0 || i >= len(l.Items) {
		return
	}
	l.Items = append(l.Items[:i:i], l.Items[i+1:]...)
	l.clamp()
}

func (l *ResourceList[T]) Move(delta int) {
	l.Cursor += delta
	l.clamp()
}

func (l *ResourceList[T]) clamp() {
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

func (l ResourceList[T]) Loaded() bool {
	return l.loaded
}

func (l ResourceList[T]) Selected() (T, bool) {
	var zero T
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return zero, false
	}
	return l.Items[l.Cursor], true
}

// window returns the visible range centred on the cursor.
func (l ResourceList[T]) window() (start, end int) {
	size := l.Size
	if size <= 0 {
		size = listSize
	}

	start = l.Cursor - size/2
	end = start + size
	if start < 0 {
		end = size
	}

	n := len(l.Items)
	if end > n {
		end = n
		start = end - size
	}
	if start < 0 {
		start = 0
	}
	return start, end
}

// View renders nothing before the first load.
func (l ResourceList[T]) View(focused bool, cursor lipgloss.Style) string {
	if !l.loaded {
		return ""
	}
	if len(l.Items) == 0 {
		return l.Placeholder + "\n"
	}

	var b strings.Builder
	start, end := l.window()
	for i := start; i < end; i++ {
		line := l.render(l.Items[i])
		if focused && i == l.Cursor {
			line = cursor.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
