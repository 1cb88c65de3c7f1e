package bass

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCodeMessages(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrorFileOpen, "bass: can't open the file (2)"},
		{ErrorEnded, "bass: the channel/file has ended (45)"},
		{ErrorUnknown, "bass: some other mystery problem (-1)"},
		{ErrorCode(99), "bass: error 99"},
	}
	for _, tt := range tests {
		if got := tt.code.Error(); got != tt.want {
			t.Errorf("%d.Error() = %q, want %q", int32(tt.code), got, tt.want)
		}
	}
}

func TestErrorCodeAs(t *testing.T) {
	err := fmt.Errorf("load: %w", ErrorFileForm)

	var code ErrorCode
	if !errors.As(err, &code) {
		t.Fatal("errors.As did not find the ErrorCode")
	}
	if code != ErrorFileForm {
		t.Errorf("code = %d, want %d", code, ErrorFileForm)
	}
}

func TestHiWord(t *testing.T) {
	if got := HiWord(0x02041100); got != Version {
		t.Errorf("HiWord = %#x, want %#x", got, Version)
	}
}

func TestDataLength(t *testing.T) {
	tests := []struct {
		n    int
		want uint32
	}{
		{0, 0},
		{-4, 0},
		{176400, 176400},
		{MaxDataLength, MaxDataLength},
		{1 << 30, MaxDataLength},
	}
	for _, tt := range tests {
		got := DataLength(tt.n)
		if got != tt.want {
			t.Errorf("DataLength(%d) = %#x, want %#x", tt.n, got, tt.want)
		}
		if got&0xF0000000 != 0 {
			t.Errorf("DataLength(%d) sets flag bits %#x", tt.n, got)
		}
	}
}
