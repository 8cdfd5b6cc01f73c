package rowza

// Per-widget state. Each store drops an entry the frame after its widget
// stops drawing, so state never outlives the widget.
var (
	inputTextStore = NewFrameStore[InputTextState]()
	selectStore    = NewFrameStore[SelectState]()
)

// InputTextState tracks state for text input widgets.
type InputTextState struct {
	// Editing is true while the input captures keyboard input.
	Editing bool

	// Cursor position in runes.
	CursorPos int

	// Selection range in runes. SelectionStart is the anchor,
	// SelectionEnd follows the cursor. -1 means no selection.
	SelectionStart int
	SelectionEnd   int

	// Horizontal scroll for text wider than the input.
	ScrollOffset float32
}

func newInputTextState() InputTextState {
	return InputTextState{SelectionStart: -1, SelectionEnd: -1}
}

// HasSelection returns true if there's an active text selection.
func (s *InputTextState) HasSelection() bool {
	return s.SelectionStart >= 0 && s.SelectionStart != s.SelectionEnd
}

// SelectedRange returns the selection as (start, end) with start <= end,
// or (-1, -1) without a selection.
func (s *InputTextState) SelectedRange() (start, end int) {
	if !s.HasSelection() {
		return -1, -1
	}
	if s.SelectionStart < s.SelectionEnd {
		return s.SelectionStart, s.SelectionEnd
	}
	return s.SelectionEnd, s.SelectionStart
}

// ClearSelection removes the selection.
func (s *InputTextState) ClearSelection() {
	s.SelectionStart = -1
	s.SelectionEnd = -1
}

// SelectAll selects all text and moves the cursor to the end.
func (s *InputTextState) SelectAll(textLen int) {
	s.SelectionStart = 0
	s.SelectionEnd = textLen
	s.CursorPos = textLen
}

// SelectState tracks an open select dropdown.
type SelectState struct {
	Open         bool
	ScrollY      float32 // dropdown scroll
	HoveredIndex int     // -1 = none
}

func newSelectState() SelectState {
	return SelectState{HoveredIndex: -1}
}
