package opttab

import "unicode/utf8"

// NewPositional describes an argument matched by position in the token
// stream rather than by a flag name.
func NewPositional[ID comparable](id ID, name string) Option[ID] {
	return newOption(id, []string{name}, "", Positional)
}

// NewFlag describes a boolean option that takes no value. Panics when names
// is empty.
func NewFlag[ID comparable](id ID, names ...string) Option[ID] {
	return newOption(id, names, "", Flag)
}

// NewValue describes an option that requires exactly one value. valueName
// is the placeholder shown in usage and help text. Panics when names is
// empty.
func NewValue[ID comparable](id ID, valueName string, names ...string) Option[ID] {
	return newOption(id, names, valueName, Value)
}

// NewHelpFlag describes the flag that triggers the interface's help output.
func NewHelpFlag[ID comparable](id ID, names ...string) Option[ID] {
	o := newOption(id, names, "", Flag)
	o.flags |= optHelp
	return o
}

func newOption[ID comparable](id ID, names []string, valueName string, kind OptionKind) Option[ID] {
	if len(names) == 0 {
		panic("opttab: option names cannot be empty")
	}
	return Option[ID]{
		id:        id,
		names:     names,
		valueName: valueName,
		kind:      kind,
		flags:     optVisibleDefault,
	}
}

// Required marks the option as mandatory; parsing fails when it is absent.
// Panics when applied to a help flag.
func (o Option[ID]) Required() Option[ID] {
	if o.IsHelp() {
		panic("opttab: help flag cannot be made required")
	}
	o.flags |= optRequired
	return o
}

// WithHelpText sets the description shown in the full help listing.
func (o Option[ID]) WithHelpText(text string) Option[ID] {
	o.helpText = text
	return o
}

// Hide excludes the option from the short usage line, the full help
// listing, or both.
func (o Option[ID]) Hide(from HideUsage) Option[ID] {
	switch from {
	case HideShort:
		o.flags &^= optVisibleShort
	case HideFull:
		o.flags &^= optVisibleFull
	case HideAll:
		o.flags &^= optVisibleShort | optVisibleFull
	}
	return o
}

// ID returns the caller-defined tag.
func (o *Option[ID]) ID() ID { return o.id }

// Kind returns the option's kind.
func (o *Option[ID]) Kind() OptionKind { return o.kind }

// Names returns the option's aliases in definition order.
func (o *Option[ID]) Names() []string { return o.names }

// ValueName returns the display placeholder of a value option's argument.
func (o *Option[ID]) ValueName() string { return o.valueName }

// HelpText returns the option's help description.
func (o *Option[ID]) HelpText() string { return o.helpText }

// IsRequired reports whether parsing fails when the option is absent.
func (o *Option[ID]) IsRequired() bool { return o.flags&optRequired != 0 }

// IsHelp reports whether this is the interface's help flag.
func (o *Option[ID]) IsHelp() bool { return o.flags&optHelp != 0 }

// ShownInShortUsage reports whether the option appears in the short usage line.
func (o *Option[ID]) ShownInShortUsage() bool { return o.flags&optVisibleShort != 0 }

// ShownInFullHelp reports whether the option appears in the full help listing.
func (o *Option[ID]) ShownInFullHelp() bool { return o.flags&optVisibleFull != 0 }

// FirstName returns the option's first (canonical) name.
func (o *Option[ID]) FirstName() string { return o.names[0] }

// FirstLongName returns the first alias with at least three visible
// characters, or "" when none exists. Classification is presentation-only
// and never affects matching.
func (o *Option[ID]) FirstLongName() string {
	for _, name := range o.names {
		if utf8.RuneCountInString(name) >= 3 {
			return name
		}
	}
	return ""
}

// FirstShortName returns the first alias consisting of a flag-prefix
// character followed by exactly one distinct character, or "".
func (o *Option[ID]) FirstShortName() string {
	for _, name := range o.names {
		if isShortName(name) {
			return name
		}
	}
	return ""
}

// ShortNameRune returns the distinguishing character of the first short
// alias.
func (o *Option[ID]) ShortNameRune() (rune, bool) {
	if short := o.FirstShortName(); short != "" {
		runes := []rune(short)
		return runes[1], true
	}
	return 0, false
}

func isShortName(name string) bool {
	runes := []rune(name)
	return len(runes) == 2 && runes[1] != runes[0]
}

// matchName compares candidate against each alias with the first skip runes
// ignored on both sides, returning the canonical alias on an exact match.
// An empty remainder never matches, so a bare prefix token matches nothing.
func (o *Option[ID]) matchName(candidate string, skip int) (string, bool) {
	rhs := skipRunes(candidate, skip)
	if rhs == "" {
		return "", false
	}
	for _, name := range o.names {
		if skipRunes(name, skip) == rhs {
			return name, true
		}
	}
	return "", false
}

func skipRunes(s string, n int) string {
	for i := 0; i < n; i++ {
		_, size := utf8.DecodeRuneInString(s)
		if size == 0 {
			return ""
		}
		s = s[size:]
	}
	return s
}
