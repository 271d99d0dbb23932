package chain

import "github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"

var statusLabels = []string{"Processing", "InTransit", "Delivered", "Compromised"}

var statusTexts = map[int]string{
	0: "Processing",
	1: "In Transit",
	2: "Delivered",
	3: "Compromised",
}

var statusBadges = map[int]string{
	0: "warning",
	1: "info",
	2: "success",
	3: "danger",
}

// StatusLabel is the machine label of a batch status, "Unknown" when out of range.
func StatusLabel(status *uint8) string {
	if status == nil || int(*status) >= len(statusLabels) {
		return "Unknown"
	}
	return statusLabels[*status]
}

func StatusText(status int) string {
	if s, ok := statusTexts[status]; ok {
		return s
	}
	return "Unknown"
}

func StatusBadge(status int) string {
	if s, ok := statusBadges[status]; ok {
		return s
	}
	return "secondary"
}

// FormatAddress shortens an address to 0x1234...abcd.
func FormatAddress(address string) string {
	a := store.SanitizeAddress(address)
	if a == "" {
		return ""
	}
	if len(a) <= 10 {
		return a
	}
	return a[:6] + "..." + a[len(a)-4:]
}
