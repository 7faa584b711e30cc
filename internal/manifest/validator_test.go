package manifest

import "testing"

func TestValidateAcceptsGoodManifest(t *testing.T) {
	result, err := Validate([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("Validate rejected a good manifest: %+v", result.Issues)
	}
}

func TestValidateRejectsBadManifests(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing name", "model:\n  key: VW\n"},
		{"uppercase name", "name: News-Ranking\n"},
		{"ref without key", "name: loop\nmodel: {}\n"},
		{"empty key", "name: loop\ntrace_logger:\n  key: \"\"\n"},
		{"empty senders", "name: loop\nsenders: []\n"},
		{"unknown field", "name: loop\nextra: true\n"},
		{"non-string option", "name: loop\noptions:\n  batch.size: 10\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Validate([]byte(tc.yaml))
			if err != nil {
				t.Fatalf("Validate returned error: %v", err)
			}
			if result.Valid {
				t.Fatal("Validate accepted an invalid manifest")
			}
			if len(result.Issues) == 0 {
				t.Fatal("invalid manifest produced no issues")
			}
		})
	}
}

func TestCheckRequires(t *testing.T) {
	cases := []struct {
		name     string
		requires string
		current  string
		wantErr  bool
	}{
		{"empty constraint", "", "1.0.0", false},
		{"satisfied", ">=1.0.0", "1.2.0", false},
		{"satisfied with v prefix", ">=1.0.0", "v1.0.0", false},
		{"too old", ">=2.0.0", "1.2.0", true},
		{"range excluded", ">=1.0.0 <1.2.0", "1.2.0", true},
		{"bad constraint", "not-a-constraint", "1.0.0", true},
		{"bad version", ">=1.0.0", "garbage", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckRequires(tc.requires, tc.current)
			if (err != nil) != tc.wantErr {
				t.Fatalf("CheckRequires(%q, %q) = %v, wantErr %v", tc.requires, tc.current, err, tc.wantErr)
			}
		})
	}
}
