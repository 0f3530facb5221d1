package capability

import (
	"testing"
)

func TestFromEnv(t *testing.T) {
	if err := BindEnv(); err != nil {
		t.Fatalf("BindEnv() error: %v", err)
	}

	tests := []struct {
		name string
		env  map[string]string
		want map[Name]bool
	}{
		{
			name: "absent variables are unset",
			env:  map[string]string{},
			want: map[Name]bool{RunAll: false, RunVoronoi: false, NoMessageQueue: false},
		},
		{
			name: "empty variables are unset",
			env:  map[string]string{"RUN_VORONOI": "", "NO_RMQ": ""},
			want: map[Name]bool{RunVoronoi: false, NoMessageQueue: false},
		},
		{
			name: "any non-empty value is set",
			env:  map[string]string{"RUN_VORONOI": "true", "RUN_KKRHOST": "1", "NO_RMQ": "yes"},
			want: map[Name]bool{RunVoronoi: true, RunKKRHost: true, NoMessageQueue: true, RunKKRImp: false},
		},
		{
			name: "even a falsy-looking value is set",
			env:  map[string]string{"RUN_ALL": "0"},
			want: map[Name]bool{RunAll: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, n := range Known() {
				t.Setenv(string(n), "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			flags := FromEnv()
			for n, want := range tt.want {
				if got := flags.IsSet(n); got != want {
					t.Errorf("IsSet(%s) = %v, want %v", n, got, want)
				}
			}
		})
	}
}

func TestFlagsIsSetMissingEntry(t *testing.T) {
	f := Flags{}
	if f.IsSet(RunAll) {
		t.Error("missing entry should be unset")
	}
}

func TestKnownCoversAllFlags(t *testing.T) {
	want := []Name{RunAll, SkipNonWorkflow, RunVoronoi, RunKKRHost, RunKKRImp, NoMessageQueue}
	got := Known()
	if len(got) != len(want) {
		t.Fatalf("Known() has %d flags, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Known()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
