package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which secondary columns are hidden.
	LayoutCompactWidth = 90

	// LayoutWelcomeMaxWidth caps the wrap width of the dashboard notice.
	LayoutWelcomeMaxWidth = 80
)

// List defaults, used when Options leave them unset.
const (
	DefaultContactsPageSize = 8
	DefaultCreatorsPageSize = 9

	// RecentContactsLimit is how many contacts the dashboard lists.
	RecentContactsLimit = 5
)

// Toasts.
const (
	// ToastTimeout is how long a toast stays visible.
	ToastTimeout = 4 * time.Second

	// MaxToasts is the number of toasts shown at once; older ones are dropped.
	MaxToasts = 3
)
