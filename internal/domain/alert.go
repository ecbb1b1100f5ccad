package domain

import "fmt"

// AlertRetention decides what happens to a manually toggled banner when the
// user moves to another item with issues while auto-show is disabled
type AlertRetention string

const (
	// AlertRetentionPreserve keeps the previous visibility
	AlertRetentionPreserve AlertRetention = "preserve"
	// AlertRetentionReset closes the banner
	AlertRetentionReset AlertRetention = "reset"
)

// ParseAlertRetention accepts "" as the default (preserve)
func ParseAlertRetention(s string) (AlertRetention, error) {
	switch AlertRetention(s) {
	case "", AlertRetentionPreserve:
		return AlertRetentionPreserve, nil
	case AlertRetentionReset:
		return AlertRetentionReset, nil
	}
	return "", fmt.Errorf("invalid alert retention %q (want %q or %q)", s, AlertRetentionPreserve, AlertRetentionReset)
}

// EvaluateAlert derives banner visibility for the current item.
// item is nil when nothing is selected.
func EvaluateAlert(item *PreviewItem, isOpen, autoShow, prior bool, retention AlertRetention) bool {
	if !isOpen || item == nil {
		return false
	}
	if !item.HasIssues() {
		return false
	}
	if autoShow {
		return true
	}
	if retention == AlertRetentionReset {
		return false
	}
	return prior
}
