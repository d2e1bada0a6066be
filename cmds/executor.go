package cmds

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/bf/vars"
)

// Executor maps flag names to commands and walks an argument list,
// invoking each named command with the arguments it declares.
type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}

	ret.Define("-h", Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).Desc("show this usage").Alias("-help", "--help", "help"))

	return ret
}

func (p *Executor) Define(name string, command *Command) {
	names := append([]string{name}, command.Aliases...)
	for _, name := range names {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated flag %s", name))
		}
		p.commands[name] = command
	}
}

func (p *Executor) Execute(args []string) error {
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := p.commands[name]
		if !ok {
			return fmt.Errorf("unknown flag: %s", name)
		}

		fnType := command.Func.Type()
		callArgs := make([]reflect.Value, fnType.NumIn())
		for i := range callArgs {
			if len(args) == 0 {
				return fmt.Errorf("%s: expecting argument, got nothing", name)
			}
			value, err := parseArg(fnType.In(i), args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			args = args[1:]
			callArgs[i] = value
		}
		command.Func.Call(callArgs)
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

func parseArg(t reflect.Type, str string) (reflect.Value, error) {
	ret := reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.String:
		ret.SetString(str)

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)

	default:
		return ret, fmt.Errorf("unsupported type: %v", t)
	}

	return ret, nil
}
