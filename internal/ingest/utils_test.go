package ingest

import "testing"

func TestAllowedExt(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{".pdf", true},
		{"PDF", true},
		{".TXT", true},
		{".png", false},
		{".docx", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := AllowedExt(tt.ext); got != tt.want {
			t.Errorf("AllowedExt(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}

func TestAllowedPath(t *testing.T) {
	if !AllowedPath("/inbox/invoice-4821.pdf") {
		t.Error("pdf path should be allowed")
	}
	if AllowedPath("/inbox/invoice-4821.pdf.bak") {
		t.Error("bak path should not be allowed")
	}
}

func TestIsHidden(t *testing.T) {
	if !IsHidden("/inbox/.invoice.pdf") {
		t.Error(".invoice.pdf should be hidden")
	}
	if IsHidden("/inbox/invoice.pdf") {
		t.Error("invoice.pdf should not be hidden")
	}
}
