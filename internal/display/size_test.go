package display

import "testing"

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small file", 512, "512 B"},
		{"just below kilobyte", 1023, "1023 B"},
		{"exact kilobyte", 1024, "1 KB"},
		{"two kilobytes", 2048, "2 KB"},
		{"kilobytes floor", 2560, "2 KB"},
		{"just below megabyte", 1048575, "1023 KB"},
		{"exact megabyte", 1048576, "1 MB"},
		{"five megabytes", 5242880, "5 MB"},
		{"megabytes floor", 5400000, "5 MB"},
		{"no units beyond megabytes", 3221225472, "3072 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatFileSize(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatFileSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
