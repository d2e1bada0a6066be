package cmds

import (
	"fmt"
	"reflect"
)

// Command is a named flag with an optional handler argument list.
type Command struct {
	Func        reflect.Value
	Description string
	Aliases     []string
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	if fnValue.Type().NumOut() != 0 {
		panic(fmt.Errorf("handler must not return values"))
	}
	return &Command{
		Func: fnValue,
	}
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}
