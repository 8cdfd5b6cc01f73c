package rowza

import "sync"

// ClipboardProvider abstracts system clipboard access. The GLFW backend
// provides one backed by the window.
type ClipboardProvider interface {
	// GetText returns the clipboard text, or "" for empty or non-text data.
	GetText() string
	SetText(text string)
}

var (
	clipboardMu       sync.RWMutex
	clipboardProvider ClipboardProvider
)

// SetClipboardProvider sets the clipboard used by text inputs.
func SetClipboardProvider(cp ClipboardProvider) {
	clipboardMu.Lock()
	clipboardProvider = cp
	clipboardMu.Unlock()
}

func currentClipboard() ClipboardProvider {
	clipboardMu.RLock()
	defer clipboardMu.RUnlock()
	return clipboardProvider
}

// ClipboardGetText returns the clipboard text, or "" without a provider.
func ClipboardGetText() string {
	if cp := currentClipboard(); cp != nil {
		return cp.GetText()
	}
	return ""
}

// ClipboardSetText copies text to the clipboard. Without a provider it does
// nothing.
func ClipboardSetText(text string) {
	if cp := currentClipboard(); cp != nil {
		cp.SetText(text)
	}
}

// MemoryClipboard is a process-local ClipboardProvider for headless use and
// tests.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// GetText implements ClipboardProvider.
func (m *MemoryClipboard) GetText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// SetText implements ClipboardProvider.
func (m *MemoryClipboard) SetText(text string) {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
}
