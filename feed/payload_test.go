package feed

import "testing"

func TestKindFromContentType(t *testing.T) {
	tests := []struct {
		ct   string
		want Kind
	}{
		{"application/json", KindJSON},
		{"application/json; charset=utf-8", KindJSON},
		{"application/x-protobuf", KindProtobuf},
		{"application/octet-stream", KindProtobuf},
		{"", KindJSON},
		{"text/plain", KindJSON},
	}

	for _, tt := range tests {
		t.Run(tt.ct, func(t *testing.T) {
			if got := KindFromContentType(tt.ct); got != tt.want {
				t.Errorf("KindFromContentType(%q) = %v, want %v", tt.ct, got, tt.want)
			}
		})
	}
}

func TestKindFromString(t *testing.T) {
	tests := []struct {
		in     string
		want   Kind
		wantOK bool
	}{
		{"json", KindJSON, true},
		{"protobuf", KindProtobuf, true},
		{" Protobuf ", KindProtobuf, true},
		{"", KindJSON, false},
		{"xml", KindJSON, false},
	}

	for _, tt := range tests {
		got, ok := KindFromString(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("KindFromString(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
