// Package command declares the four contract commands: their options, which
// of them are required, their defaults, and the typed option structs the
// dispatcher consumes.
package command

// Name identifies a command.
type Name string

const (
	Execute      Name = "execute"
	Invoke       Name = "invoke"
	Init         Name = "init"
	GenerateText Name = "generateText"
)

// Option names as they appear on the command line (without "--").
const (
	OptContract    = "contract"
	OptState       = "state"
	OptRequest     = "request"
	OptCurrentTime = "currentTime"
	OptClauseName  = "clauseName"
	OptParams      = "params"
)

// Option describes one command-line option of a command.
type Option struct {
	Name        string
	Description string
	Required    bool
	// Array options collect several values (e.g. --request r1.json r2.json).
	Array bool
	// Default is the help text for the value used when the option is omitted.
	Default string
}

// Spec is the static descriptor of a command.
type Spec struct {
	Name    Name
	Short   string
	Usage   string
	Options []Option
}

// Required returns the names of the mandatory options, in declaration order.
func (s Spec) Required() []string {
	var names []string
	for _, o := range s.Options {
		if o.Required {
			names = append(names, o.Name)
		}
	}
	return names
}

// Optional returns the names of the optional options, in declaration order.
func (s Spec) Optional() []string {
	var names []string
	for _, o := range s.Options {
		if !o.Required {
			names = append(names, o.Name)
		}
	}
	return names
}

// Option looks up an option by name.
func (s Spec) Option(name string) (Option, bool) {
	for _, o := range s.Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

var (
	contractOpt = Option{Name: OptContract, Description: "path to the contract data", Required: true}
	timeOpt     = Option{Name: OptCurrentTime, Description: "the current time (ISO-8601)", Default: "now"}
)

var specs = []Spec{
	{
		Name:  Execute,
		Short: "execute an Ergo contract with a request",
		Usage: "ergorun execute --contract [file] --state [file] --request [file] [ctos] [ergos]",
		Options: []Option{
			contractOpt,
			{Name: OptState, Description: "path to the state data"},
			timeOpt,
			{Name: OptRequest, Description: "path to the request data", Required: true, Array: true},
		},
	},
	{
		Name:  Invoke,
		Short: "invoke a clause for an Ergo contract",
		Usage: "ergorun invoke --clauseName [name] --contract [file] --state [file] --params [file] [ctos] [ergos]",
		Options: []Option{
			{Name: OptClauseName, Description: "the name of the clause to invoke", Required: true},
			contractOpt,
			{Name: OptState, Description: "path to the state data", Required: true},
			timeOpt,
			{Name: OptParams, Description: "path to the parameters", Required: true},
		},
	},
	{
		Name:  Init,
		Short: "invoke init for an Ergo contract",
		Usage: "ergorun init --contract [file] --params [file] [ctos] [ergos]",
		Options: []Option{
			contractOpt,
			timeOpt,
			{Name: OptParams, Description: "path to the parameters", Default: "{}"},
		},
	},
	{
		Name:  GenerateText,
		Short: "invoke generateText for an Ergo contract",
		Usage: "ergorun generateText --contract [file] [ctos] [ergos]",
		Options: []Option{
			contractOpt,
			timeOpt,
		},
	},
}

// Specs returns the descriptors of all commands in display order.
func Specs() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// Lookup returns the descriptor for name.
func Lookup(name Name) (Spec, bool) {
	for _, s := range specs {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name Name) Spec {
	s, ok := Lookup(name)
	if !ok {
		panic("command: unknown command " + string(name))
	}
	return s
}
