package cmds

import "testing"

func TestVar(t *testing.T) {
	limit := Var[int]("TestVar-step-limit")
	mode := Var[string]("TestVar-eof")
	GlobalExecutor.MustExecute([]string{
		"TestVar-step-limit", "4597",
		"TestVar-eof", "zero",
	})
	if *limit != 4597 {
		t.Fatal()
	}
	if *mode != "zero" {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	trace := Switch("TestSwitch-trace")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch-trace",
	})
	if *trace != true {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch-trace",
	})
	if *trace != false {
		t.Fatal()
	}
}

func TestTypedVar(t *testing.T) {
	type ModeName string
	v := Var[ModeName]("TestTypedVar-mode")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar-mode", "minus-one",
	})
	if *v != "minus-one" {
		t.Fatal()
	}
}
