package fields

import (
	"strings"
	"testing"
)

func TestBillOfLadingExplicitLabel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "labeled number",
			text: "BILL OF LADING No. MAEU482159007\nSHIPPER: ACME PLASTICS",
			want: "MAEU482159007",
		},
		{
			name: "short label variant",
			text: "B/L No: HLCUVA250614788",
			want: "HLCUVA250614788",
		},
		{
			name: "pure-letter token rejected",
			text: "B/L No: ABCDEFGHIJ",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BillOfLading(tt.text); got != tt.want {
				t.Errorf("BillOfLading() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBillOfLadingAnchorWindow(t *testing.T) {
	text := strings.Join([]string{
		"BOOKING REF: HAM2025X889",
		"",
		"BILL OF LADING",
		"CARRIER: HAPAG LLOYD",
		"HLCUVA250614788",
		"EBKG20250614478",
	}, "\n")

	got := BillOfLading(text)
	if got != "HLCUVA250614788" {
		t.Fatalf("BillOfLading() = %q, want %q", got, "HLCUVA250614788")
	}
}

func TestBillOfLadingNeverReturnsBookingArtifacts(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "only EBKG token",
			text: "BILL OF LADING\nEBKG20250614478",
		},
		{
			name: "only token beside BOOKING REF",
			text: "RIDER PAGE\nBOOKING REF: HAM2025X889",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BillOfLading(tt.text)
			if strings.HasPrefix(got, "EBKG") {
				t.Fatalf("BillOfLading() returned booking reference %q", got)
			}
			if got != "" {
				t.Fatalf("BillOfLading() = %q, want empty", got)
			}
		})
	}
}

func TestBillOfLadingGlobalFallback(t *testing.T) {
	// No anchor keyword anywhere; the global scan takes the first
	// shape-matching token in document order.
	text := "transport document MSCUW6240871 issued at origin"
	if got := BillOfLading(text); got != "MSCUW6240871" {
		t.Fatalf("BillOfLading() = %q, want %q", got, "MSCUW6240871")
	}

	// The same token is skipped when BOOKING REF sits within 40 characters.
	text = "BOOKING REF MSCUW6240871 issued at origin"
	if got := BillOfLading(text); got != "" {
		t.Fatalf("BillOfLading() = %q, want empty", got)
	}
}

func TestBillOfLadingPrefersLongestCandidate(t *testing.T) {
	text := strings.Join([]string{
		"RIDER PAGE",
		"REF CODE: HAM482X59",
		"HLCUVA2506147881",
	}, "\n")
	if got := BillOfLading(text); got != "HLCUVA2506147881" {
		t.Fatalf("BillOfLading() = %q, want %q", got, "HLCUVA2506147881")
	}
}
