package util

import "testing"

func TestValidSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		slug string
		want bool
	}{
		{
			name: "okSimple",
			slug: "telnyx",
			want: true,
		},
		{
			name: "okDashed",
			slug: "ntt-communications",
			want: true,
		},
		{
			name: "failEmpty",
			slug: "",
			want: false,
		},
		{
			name: "failUpper",
			slug: "Telnyx",
			want: false,
		},
		{
			name: "failSpace",
			slug: "ntt communications",
			want: false,
		},
		{
			name: "failLeadingDash",
			slug: "-telnyx",
			want: false,
		},
		{
			name: "failTrailingDash",
			slug: "telnyx-",
			want: false,
		},
		{
			name: "failSlash",
			slug: "a/b",
			want: false,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := ValidSlug(testCase.slug)
			if got != testCase.want {
				t.Errorf("ValidSlug() = %v, want %v", got, testCase.want)
			}
		})
	}
}

func TestValidObjectName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		objName string
		want    bool
	}{
		{
			name:    "okSimple",
			objName: "NTT Communications",
			want:    true,
		},
		{
			name:    "okAmp",
			objName: "AT&T",
			want:    true,
		},
		{
			name:    "failEmpty",
			objName: "",
			want:    false,
		},
		{
			name:    "failLeadingSpace",
			objName: " NTT",
			want:    false,
		},
		{
			name:    "failNewline",
			objName: "NTT\n",
			want:    false,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := ValidObjectName(testCase.objName)
			if got != testCase.want {
				t.Errorf("ValidObjectName() = %v, want %v", got, testCase.want)
			}
		})
	}
}

func TestValidCircuitID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cid  string
		want bool
	}{
		{
			name: "okTypical",
			cid:  "TWC-10012-DAL/FTW",
			want: true,
		},
		{
			name: "okColon",
			cid:  "IC-101:202",
			want: true,
		},
		{
			name: "failEmpty",
			cid:  "",
			want: false,
		},
		{
			name: "failSpace",
			cid:  "TWC 10012",
			want: false,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := ValidCircuitID(testCase.cid)
			if got != testCase.want {
				t.Errorf("ValidCircuitID() = %v, want %v", got, testCase.want)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple",
			input: "Telnyx",
			want:  "telnyx",
		},
		{
			name:  "spaces",
			input: "NTT Communications",
			want:  "ntt-communications",
		},
		{
			name:  "punctuation",
			input: "AT&T Inc.",
			want:  "at-t-inc",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := Slugify(testCase.input)
			if got != testCase.want {
				t.Errorf("Slugify() = %v, want %v", got, testCase.want)
			}

			if !ValidSlug(got) {
				t.Errorf("Slugify() produced invalid slug %q", got)
			}
		})
	}
}
