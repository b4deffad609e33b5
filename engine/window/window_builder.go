package window

// WindowBuilderOption is a function that modifies the window configuration.
type WindowBuilderOption func(*windowImpl)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the title displayed in the title bar
//
// Returns:
//   - WindowBuilderOption: the option function
func WithTitle(title string) WindowBuilderOption {
	return func(w *windowImpl) {
		w.title = title
	}
}

// WithSize sets the initial window size in screen coordinates.
//
// Parameters:
//   - width: the initial width
//   - height: the initial height
//
// Returns:
//   - WindowBuilderOption: the option function
func WithSize(width, height int) WindowBuilderOption {
	return func(w *windowImpl) {
		if width > 0 {
			w.width = width
		}
		if height > 0 {
			w.height = height
		}
	}
}
