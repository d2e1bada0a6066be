package bflang

type Op byte

const (
	OpRight Op = iota + 1
	OpLeft
	OpInc
	OpDec
	OpOutput
	OpInput
	OpLoopStart
	OpLoopEnd
)

// opTable maps source bytes to operations. Zero means comment byte.
var opTable = func() (ret [256]Op) {
	ret['>'] = OpRight
	ret['<'] = OpLeft
	ret['+'] = OpInc
	ret['-'] = OpDec
	ret['.'] = OpOutput
	ret[','] = OpInput
	ret['['] = OpLoopStart
	ret[']'] = OpLoopEnd
	return
}()

var opChars = [...]byte{
	OpRight:     '>',
	OpLeft:      '<',
	OpInc:       '+',
	OpDec:       '-',
	OpOutput:    '.',
	OpInput:     ',',
	OpLoopStart: '[',
	OpLoopEnd:   ']',
}

func (o Op) String() string {
	if int(o) < len(opChars) && opChars[o] != 0 {
		return string(opChars[o])
	}
	return "?"
}
