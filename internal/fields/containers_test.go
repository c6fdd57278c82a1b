package fields

import (
	"sort"
	"strings"
	"testing"
)

func TestContainersDedupAndSort(t *testing.T) {
	text := "TCLU7395862 loaded\nABCU1234567 Item\nTCLU7395862 repeated\nABCU1234567\nTCLU7395862"
	got := Containers(text)
	want := "ABCU1234567\nTCLU7395862"
	if got != want {
		t.Fatalf("Containers() = %q, want %q", got, want)
	}

	lines := strings.Split(got, "\n")
	if !sort.StringsAreSorted(lines) {
		t.Errorf("container list not sorted: %v", lines)
	}
	seen := map[string]bool{}
	for _, l := range lines {
		if seen[l] {
			t.Errorf("duplicate container code %q", l)
		}
		seen[l] = true
	}
}

func TestContainersShape(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"none", "no containers here", ""},
		{"too few digits", "ABCU123456", ""},
		{"lowercase ignored", "abcu1234567", ""},
		{"embedded in sentence", "unit MSKU9070323 sealed", "MSKU9070323"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Containers(tt.text); got != tt.want {
				t.Errorf("Containers(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
