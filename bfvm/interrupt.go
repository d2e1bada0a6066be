package bfvm

type Interrupt struct {
	Break bool
}

var InterruptBreak = &Interrupt{
	Break: true,
}
