package scale

import (
	"errors"
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"major", 8},
		{"minor", 8},
		{"chrom", 13},
		{"ionian", 8},
		{"dorian", 8},
		{"phrygian", 8},
		{"lydian", 8},
		{"mixolydian", 8},
		{"aeolian", 8},
		{"locrian", 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.name, 60, 0, 1)
			if err != nil {
				t.Fatalf("Build(%q) err = %v; want nil", tt.name, err)
			}
			if len(got) != tt.want {
				t.Fatalf("Build(%q) len = %d; want %d", tt.name, len(got), tt.want)
			}
			if got[0] != 60 {
				t.Fatalf("Build(%q)[0] = %d; want 60", tt.name, got[0])
			}
			for i := 1; i < len(got); i++ {
				if got[i] <= got[i-1] {
					t.Fatalf("Build(%q)[%d] = %d; want > %d", tt.name, i, got[i], got[i-1])
				}
			}
			if got[len(got)-1] != 72 {
				t.Fatalf("Build(%q) last = %d; want 72", tt.name, got[len(got)-1])
			}
		})
	}
}

func TestBuildMajor(t *testing.T) {
	got, err := Build("major", 60, 0, 1)
	if err != nil {
		t.Fatalf("Build err = %v; want nil", err)
	}
	want := []int{60, 62, 64, 65, 67, 69, 71, 72}
	if len(got) != len(want) {
		t.Fatalf("Build len = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Build[%d] = %d; want %d", i, got[i], want[i])
		}
	}
}

func TestBuildOctaveRange(t *testing.T) {
	single, err := Build("major", 60, 0, 1)
	if err != nil {
		t.Fatalf("Build err = %v; want nil", err)
	}
	for _, octaves := range []int{1, 2, 3, 4} {
		got, err := Build("major", 60, 0, octaves)
		if err != nil {
			t.Fatalf("Build(octaves=%d) err = %v; want nil", octaves, err)
		}
		if want := octaves*7 + 1; len(got) != want {
			t.Fatalf("Build(octaves=%d) len = %d; want %d", octaves, len(got), want)
		}
		for i := range single {
			if got[i] != single[i] {
				t.Fatalf("Build(octaves=%d)[%d] = %d; want %d", octaves, i, got[i], single[i])
			}
		}
		for i := 1; i < len(got); i++ {
			if got[i] <= got[i-1] {
				t.Fatalf("Build(octaves=%d)[%d] = %d; want > %d", octaves, i, got[i], got[i-1])
			}
		}
		if want := 60 + 12*octaves; got[len(got)-1] != want {
			t.Fatalf("Build(octaves=%d) last = %d; want %d", octaves, got[len(got)-1], want)
		}
	}
}

func TestBuildOctaveRangeClamped(t *testing.T) {
	single, err := Build("major", 60, 0, 1)
	if err != nil {
		t.Fatalf("Build err = %v; want nil", err)
	}
	// Values below 1 mean no replication.
	for _, octaves := range []int{0, -1} {
		got, err := Build("major", 60, 0, octaves)
		if err != nil {
			t.Fatalf("Build(octaves=%d) err = %v; want nil", octaves, err)
		}
		if len(got) != len(single) {
			t.Fatalf("Build(octaves=%d) len = %d; want %d", octaves, len(got), len(single))
		}
		for i := range single {
			if got[i] != single[i] {
				t.Fatalf("Build(octaves=%d)[%d] = %d; want %d", octaves, i, got[i], single[i])
			}
		}
	}
}

func TestBuildOctaveOffset(t *testing.T) {
	tests := []struct {
		offset int
		first  int
	}{
		{-2, 36},
		{-1, 48},
		{0, 60},
		{1, 72},
	}
	for _, tt := range tests {
		got, err := Build("minor", 60, tt.offset, 1)
		if err != nil {
			t.Fatalf("Build(offset=%d) err = %v; want nil", tt.offset, err)
		}
		if got[0] != tt.first {
			t.Fatalf("Build(offset=%d)[0] = %d; want %d", tt.offset, got[0], tt.first)
		}
		if want := tt.first + 12; got[len(got)-1] != want {
			t.Fatalf("Build(offset=%d) last = %d; want %d", tt.offset, got[len(got)-1], want)
		}
	}
}

func TestBuildUnknownScale(t *testing.T) {
	if _, err := Build("klingon", 60, 0, 1); !errors.Is(err, ErrUnknownScale) {
		t.Fatalf("Build err = %v; want ErrUnknownScale", err)
	}
}

func TestBuildCaseInsensitive(t *testing.T) {
	if _, err := Build("Major", 60, 0, 1); err != nil {
		t.Fatalf("Build(%q) err = %v; want nil", "Major", err)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"C", 60},
		{"c", 60},
		{"C#", 61},
		{"d#", 63},
		{"F#", 66},
		{"b", 71},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Key(tt.name)
			if err != nil {
				t.Fatalf("Key(%q) err = %v; want nil", tt.name, err)
			}
			if got != tt.want {
				t.Fatalf("Key(%q) = %d; want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestKeyUnknown(t *testing.T) {
	if _, err := Key("H"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("Key err = %v; want ErrUnknownKey", err)
	}
}
