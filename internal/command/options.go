package command

// Option structs hold raw command-line values. A nil pointer means the option
// was not given; a non-nil pointer to "" means it was given empty, which is
// rejected by Validate. Files holds the positional arguments.

// ExecuteOptions are the options of the execute command.
type ExecuteOptions struct {
	Contract    *string  `option:"contract" validate:"required,min=1"`
	State       *string  `option:"state" validate:"omitnil,min=1"`
	CurrentTime *string  `option:"currentTime" validate:"omitnil,iso8601"`
	Request     []string `option:"request" validate:"required,min=1,dive,required"`
	Files       []string `option:"-"`
}

// InvokeOptions are the options of the invoke command.
type InvokeOptions struct {
	ClauseName  *string  `option:"clauseName" validate:"required,min=1"`
	Contract    *string  `option:"contract" validate:"required,min=1"`
	State       *string  `option:"state" validate:"required,min=1"`
	CurrentTime *string  `option:"currentTime" validate:"omitnil,iso8601"`
	Params      *string  `option:"params" validate:"required,min=1"`
	Files       []string `option:"-"`
}

// InitOptions are the options of the init command.
type InitOptions struct {
	Contract    *string  `option:"contract" validate:"required,min=1"`
	CurrentTime *string  `option:"currentTime" validate:"omitnil,iso8601"`
	Params      *string  `option:"params" validate:"omitnil,min=1"`
	Files       []string `option:"-"`
}

// GenerateTextOptions are the options of the generateText command.
type GenerateTextOptions struct {
	Contract    *string  `option:"contract" validate:"required,min=1"`
	CurrentTime *string  `option:"currentTime" validate:"omitnil,iso8601"`
	Files       []string `option:"-"`
}
