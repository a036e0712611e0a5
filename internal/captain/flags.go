package captain

import (
	"github.com/taskenv/cli/internal/errs"
)

// FlagMarshaler is what custom flag values need to implement, it's a subset of pflag.Value
type FlagMarshaler interface {
	String() string
	Set(string) error
	Type() string
}

// ArgMarshaler is what custom argument values need to implement
type ArgMarshaler interface {
	Set(string) error
}

// Flag is used to define flags in our Command construction
type Flag struct {
	Name        string
	Shorthand   string
	Description string
	Persist     bool
	Value       interface{}
	OnUse       func()
}

func (c *Command) setFlags(flags []*Flag) error {
	c.flags = flags
	for _, flag := range flags {
		flagSetter := c.cobra.Flags
		if flag.Persist {
			flagSetter = c.cobra.PersistentFlags
		}

		switch v := flag.Value.(type) {
		case nil:
			return errs.New("flag value must not be nil (%v)", flag)
		case *string:
			flagSetter().StringVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case *int:
			flagSetter().IntVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case *bool:
			flagSetter().BoolVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case FlagMarshaler:
			flagSetter().VarP(v, flag.Name, flag.Shorthand, flag.Description)
		default:
			return errs.New("unknown flag value type: %T (%s)", v, flag.Name)
		}
	}

	return nil
}

// Argument is used to define positional arguments in our Command construction
type Argument struct {
	Name        string
	Description string
	Required    bool
	Value       interface{}
}
