package pathway

import (
	"errors"
	"slices"
	"testing"
)

func TestNewNavigator_StartsAtStart(t *testing.T) {
	n := NewNavigator(Leukemia())
	if got := n.Path(); !slices.Equal(got, []string{"start"}) {
		t.Errorf("Path() = %v, want [start]", got)
	}
	if n.Current().Key != "start" {
		t.Errorf("Current() = %q", n.Current().Key)
	}
	if _, ok := n.Diagnosis(); ok {
		t.Error("fresh navigator has a diagnosis")
	}
}

func TestChoose_TransitionAppendsPath(t *testing.T) {
	n := NewNavigator(Leukemia())
	n.Choose(Option{Text: "≥20% blasts", Next: "acute"})
	if got := n.Path(); !slices.Equal(got, []string{"start", "acute"}) {
		t.Errorf("Path() = %v", got)
	}
	if n.Current().Key != "acute" {
		t.Errorf("Current() = %q, want acute", n.Current().Key)
	}
}

func TestChoose_TerminalOptionKeepsNode(t *testing.T) {
	n := NewNavigator(Leukemia())
	mustChoose(t, n, 1) // chronic
	mustChoose(t, n, 0) // cml_suspect
	mustChoose(t, n, 0) // BCR::ABL1 positive

	if n.Current().Key != "cml_suspect" {
		t.Errorf("Current() = %q, want cml_suspect", n.Current().Key)
	}
	d, ok := n.Diagnosis()
	if !ok || d != "Chronic Myeloid Leukemia (CML)" {
		t.Errorf("Diagnosis() = %q, %v", d, ok)
	}
	if n.Info() == "" {
		t.Error("Info() empty after terminal choice")
	}
	if !n.Done() {
		t.Error("Done() = false at terminal node with diagnosis")
	}
}

func TestChoose_TransitionAndDiagnosisFireTogether(t *testing.T) {
	n := NewNavigator(Leukemia())
	mustChoose(t, n, 0) // acute
	mustChoose(t, n, 0) // Auer rods -> aml_confirmed + "Likely AML"

	if n.Current().Key != "aml_confirmed" {
		t.Errorf("Current() = %q, want aml_confirmed", n.Current().Key)
	}
	if d, _ := n.Diagnosis(); d != "Likely AML" {
		t.Errorf("Diagnosis() = %q, want Likely AML", d)
	}
	if n.Done() {
		t.Error("Done() should be false until the terminal node is answered")
	}

	mustChoose(t, n, 0) // t(15;17)
	if d, _ := n.Diagnosis(); d != "APL - Acute Promyelocytic Leukemia" {
		t.Errorf("Diagnosis() = %q", d)
	}
	want := []string{"start", "acute", "aml_confirmed"}
	if got := n.Path(); !slices.Equal(got, want) {
		t.Errorf("Path() = %v, want %v", got, want)
	}
}

func TestDone_OnlyAfterTerminalChoice(t *testing.T) {
	tests := []struct {
		name    string
		choices []int
		done    []bool
		want    string
	}{
		{"auer rods then t(8;21)", []int{0, 0, 1}, []bool{false, false, true}, "AML with t(8;21)"},
		{"flow MPO then inv(16)", []int{0, 1, 0, 2}, []bool{false, false, false, true}, "AML with inv(16)"},
		{"T-ALL", []int{0, 1, 2, 0}, []bool{false, false, false, true}, "T-Acute Lymphoblastic Leukemia"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNavigator(Leukemia())
			for step, c := range tt.choices {
				mustChoose(t, n, c)
				if n.Done() != tt.done[step] {
					t.Errorf("step %d at %q: Done() = %v, want %v", step, n.Current().Key, n.Done(), tt.done[step])
				}
			}
			if d, _ := n.Diagnosis(); d != tt.want {
				t.Errorf("Diagnosis() = %q, want %q", d, tt.want)
			}
			n.Reset()
			if n.Done() {
				t.Error("Done() survived reset")
			}
		})
	}
}

func TestReset_RestoresInitialState(t *testing.T) {
	n := NewNavigator(Leukemia())
	mustChoose(t, n, 0)
	mustChoose(t, n, 1)
	mustChoose(t, n, 2) // t_all
	mustChoose(t, n, 0)

	n.Reset()
	if got := n.Path(); !slices.Equal(got, []string{"start"}) {
		t.Errorf("Path() = %v after reset", got)
	}
	if _, ok := n.Diagnosis(); ok {
		t.Error("diagnosis survived reset")
	}
	if n.Info() != "" {
		t.Error("info survived reset")
	}
}

func TestChooseIndex_OutOfRange(t *testing.T) {
	n := NewNavigator(Leukemia())
	if err := n.ChooseIndex(9); !errors.Is(err, ErrNoSuchOption) {
		t.Errorf("err = %v, want ErrNoSuchOption", err)
	}
	if err := n.ChooseIndex(-1); !errors.Is(err, ErrNoSuchOption) {
		t.Errorf("err = %v, want ErrNoSuchOption", err)
	}
}

func TestPath_ReturnsCopy(t *testing.T) {
	n := NewNavigator(Leukemia())
	p := n.Path()
	p[0] = "mutated"
	if n.Path()[0] != "start" {
		t.Error("Path() exposes internal slice")
	}
}

func TestEveryWalkEndsInDiagnosis(t *testing.T) {
	g := Leukemia()
	var walk func(n *Navigator, depth int)
	walk = func(n *Navigator, depth int) {
		if depth > g.Len() {
			t.Fatalf("walk deeper than node count at %v", n.Path())
		}
		cur := n.Current()
		for i, o := range cur.Options {
			child := *n
			child.path = n.Path()
			if err := child.ChooseIndex(i); err != nil {
				t.Fatal(err)
			}
			if o.Terminal() {
				if _, ok := child.Diagnosis(); !ok {
					t.Errorf("terminal option %q at %q has no diagnosis", o.Text, cur.Key)
				}
				continue
			}
			walk(&child, depth+1)
		}
	}
	walk(NewNavigator(g), 0)
}

func mustChoose(t *testing.T, n *Navigator, i int) {
	t.Helper()
	if err := n.ChooseIndex(i); err != nil {
		t.Fatalf("ChooseIndex(%d) at %q: %v", i, n.Current().Key, err)
	}
}
