package display

import "fmt"

// FormatFileSize renders a byte count with integer-floored units:
// "B" below 1024, "KB" below 1024^2, "MB" above. No fractional parts
// and no units beyond megabytes.
func FormatFileSize(bytes int64) string {
	const (
		kb = 1024
		mb = kb * 1024
	)

	switch {
	case bytes < kb:
		return fmt.Sprintf("%d B", bytes)
	case bytes < mb:
		return fmt.Sprintf("%d KB", bytes/kb)
	default:
		return fmt.Sprintf("%d MB", bytes/mb)
	}
}
