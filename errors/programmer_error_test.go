package errors

import "testing"

func TestProgrammerErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *ProgrammerError
		want string
	}{
		{
			name: "transition from final",
			err:  New(TransitionFromFinal, "add transition from final state"),
			want: "[nfa.transition-from-final] add transition from final state",
		},
		{
			name: "formatted message",
			err:  New(TransitionFromFinal, "state %d is final", 0),
			want: "[nfa.transition-from-final] state 0 is final",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAs(t *testing.T) {
	defer func() {
		r := recover()
		pe, ok := As(r)
		if !ok {
			t.Fatalf("As(%v) ok = false, want true", r)
		}
		if pe.Code != TransitionFromFinal {
			t.Fatalf("Code = %q, want %q", pe.Code, TransitionFromFinal)
		}
	}()
	panic(New(TransitionFromFinal, "boom"))
}

func TestAsRejectsOtherValues(t *testing.T) {
	if _, ok := As("not a programmer error"); ok {
		t.Fatal("As(string) ok = true, want false")
	}
}
