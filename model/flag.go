package model

type Flags struct {
	// Positional arguments
	Login string
	Begin string
	End   string

	// Presentation flags
	GUI         bool
	Table       bool
	Chart       bool
	NoAnimation bool

	Verbose bool
}
