package model

import "testing"

func TestParseBody(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Body
		wantErr bool
	}{
		{name: "exact case", input: "Sun", want: Sun},
		{name: "lower case", input: "pluto", want: Pluto},
		{name: "upper case", input: "MARS", want: Mars},
		{name: "unknown body", input: "Ceres", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBody(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseBody(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBody(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseBody(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBodyString(t *testing.T) {
	if got := Jupiter.String(); got != "Jupiter" {
		t.Errorf("Jupiter.String() = %q", got)
	}
	if got := Body(42).String(); got != "Body(42)" {
		t.Errorf("Body(42).String() = %q", got)
	}
}

func TestBodiesOrder(t *testing.T) {
	if len(Bodies) != 10 {
		t.Fatalf("expected 10 bodies, got %d", len(Bodies))
	}
	if Bodies[0] != Sun || Bodies[9] != Pluto {
		t.Errorf("body order wrong: first=%v last=%v", Bodies[0], Bodies[9])
	}
}
