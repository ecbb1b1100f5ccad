package ports

// PreferenceStore persists user preferences that outlive a browsing session
type PreferenceStore interface {
	SetAutoShowAlert(enabled bool) error
}
