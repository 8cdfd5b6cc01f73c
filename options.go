package rowza

// Option configures a UI widget.
type Option func(*options)

// options holds widget configuration keyed by OptKey name.
type options struct {
	values map[string]any
}

// OptKey is a typed key for widget options.
//
// Example:
//
//	var OptBadge = rowza.NewOptKey("badge", "")
//
//	ctx.MyWidget("id", rowza.WithOpt(OptBadge, "new"))
//
//	badge := rowza.ApplyAndGet(opts, OptBadge)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.values == nil {
			o.values = make(map[string]any)
		}
		o.values[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default if unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.values[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.values[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// Built-in option keys.
var (
	OptID                = NewOptKey("id", "")
	OptDisabled          = NewOptKey("disabled", false)
	OptWidth             = NewOptKey[float32]("width", 0)
	OptPlaceholder       = NewOptKey("placeholder", "")
	OptMaxLength         = NewOptKey("maxLength", 0)
	OptMaxDropdownHeight = NewOptKey[float32]("maxDropdownHeight", 200)
	OptTooltip           = NewOptKey("tooltip", "")
)

// WithID overrides the label-derived widget ID.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled greys the widget out and ignores its input.
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth sets an explicit widget width.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithPlaceholder sets the hint text shown while a text input or select is
// empty.
func WithPlaceholder(text string) Option { return WithOpt(OptPlaceholder, text) }

// WithMaxLength limits text input length in runes.
func WithMaxLength(n int) Option { return WithOpt(OptMaxLength, n) }

// WithMaxDropdownHeight caps a select's dropdown height.
func WithMaxDropdownHeight(height float32) Option { return WithOpt(OptMaxDropdownHeight, height) }

// WithTooltip sets an accessible description; the bitmap backend draws it
// under the hovered icon button.
func WithTooltip(text string) Option { return WithOpt(OptTooltip, text) }
