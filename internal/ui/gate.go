package ui

// InputGate decides whether preview keys reach the session controller.
// The locks belong to the caller: the model raises NavigationLocked while
// the help screen covers the preview and CloseLocked while the auto-show
// preference is being saved.
type InputGate struct {
	CloseLocked      bool
	NavigationLocked bool
}

// CanNavigate reports whether previous/next may run
func (g InputGate) CanNavigate(isLoading bool) bool {
	return !isLoading && !g.NavigationLocked
}

// CanClose reports whether the preview may be closed
func (g InputGate) CanClose(isLoading bool) bool {
	return !isLoading && !g.CloseLocked
}
