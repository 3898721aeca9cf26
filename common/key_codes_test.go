package common

import "testing"

func TestParseKey(t *testing.T) {
	tests := []struct {
		in     string
		want   Key
		wantOK bool
	}{
		{in: "W", want: KeyW, wantOK: true},
		{in: "w", want: KeyW, wantOK: true},
		{in: "KeyD", want: KeyD, wantOK: true},
		{in: "7", want: Key('7'), wantOK: true},
		{in: "Digit3", want: Key('3'), wantOK: true},
		{in: "Space", want: KeySpace, wantOK: true},
		{in: " escape ", want: KeyEsc, wantOK: true},
		{in: "esc", want: KeyEsc, wantOK: true},
		{in: "ShiftLeft", want: KeyLeftShift, wantOK: true},
		{in: "arrowup", want: KeyUp, wantOK: true},
		{in: "left", want: KeyLeft, wantOK: true},
		{in: "", wantOK: false},
		{in: "Hyper", wantOK: false},
		{in: "!", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := ParseKey(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseKey(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestKeyStringRoundTrip(t *testing.T) {
	keys := []Key{KeyW, KeyZ, Key('5'), KeySpace, KeyEsc, KeyUp, KeyLeftShift, KeyRightAlt}
	for _, k := range keys {
		got, ok := ParseKey(k.String())
		if !ok || got != k {
			t.Errorf("ParseKey(%q) = (%v, %v), want %v", k.String(), got, ok, k)
		}
	}
	if got := Key(999).String(); got != "Key(999)" {
		t.Errorf("unknown key String() = %q", got)
	}
}
