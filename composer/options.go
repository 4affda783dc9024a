package composer

// props collects settings from Options.
type props struct {
	arity int    // -1: not set
	name  string // label for traces
}

func configure(opts []Option) props {
	p := props{arity: -1}
	for _, option := range opts {
		p = option.config(p)
	}
	return p
}

// Option is a type to configure currying.
type Option struct {
	config func(props) props
}

// Arity declares the number of arguments a curried function awaits.
// It is mandatory for Curry, as an Fn does not reveal its arity, and
// overrides the reflected arity in CurryFunc, e.g. for variadic functions:
//
//	sum, err := composer.CurryFunc(sumAll, composer.Arity(3))
func Arity(n int) Option {
	conf := func(p props) props {
		p.arity = n
		return p
	}
	return Option{config: conf}
}

// Name sets a label for the curried function, which will show up in traces.
func Name(name string) Option {
	conf := func(p props) props {
		p.name = name
		return p
	}
	return Option{config: conf}
}
