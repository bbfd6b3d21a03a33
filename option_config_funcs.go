package opttab

// NewOpt builds an option entry using functional configuration, as an
// alternative to the direct constructors and their chainable methods.
//
//	opt := NewOpt("count", Value, []string{"--count", "-n"},
//		WithPlaceholder[string]("VALUE"),
//		WithHelp[string]("number of items to process"),
//		SetRequired[string](true))
func NewOpt[ID comparable](id ID, kind OptionKind, names []string, configs ...ConfigureOptionFunc[ID]) Option[ID] {
	o := newOption(id, names, "", kind)
	for _, config := range configs {
		config(&o)
	}
	return o
}

// WithHelp sets the option's help text.
func WithHelp[ID comparable](text string) ConfigureOptionFunc[ID] {
	return func(o *Option[ID]) {
		o.helpText = text
	}
}

// WithPlaceholder sets the display name of a value option's argument.
func WithPlaceholder[ID comparable](name string) ConfigureOptionFunc[ID] {
	return func(o *Option[ID]) {
		o.valueName = name
	}
}

// SetRequired marks or unmarks the option as mandatory. Panics when
// applied to a help flag.
func SetRequired[ID comparable](required bool) ConfigureOptionFunc[ID] {
	return func(o *Option[ID]) {
		if required && o.IsHelp() {
			panic("opttab: help flag cannot be made required")
		}
		if required {
			o.flags |= optRequired
		} else {
			o.flags &^= optRequired
		}
	}
}

// AsHelpFlag marks the option as the interface's help flag. Panics when the
// option is not a flag or is required.
func AsHelpFlag[ID comparable]() ConfigureOptionFunc[ID] {
	return func(o *Option[ID]) {
		if o.kind != Flag {
			panic("opttab: only flags are allowed to be help options")
		}
		if o.IsRequired() {
			panic("opttab: help flag cannot be made required")
		}
		o.flags |= optHelp
	}
}

// HiddenFrom excludes the option from the given help surfaces.
func HiddenFrom[ID comparable](from HideUsage) ConfigureOptionFunc[ID] {
	return func(o *Option[ID]) {
		*o = o.Hide(from)
	}
}
