package opttab

import "io"

// WithFlagChars sets the characters that mark a token as an option
// reference rather than a positional value. The default is "-".
func WithFlagChars[ID comparable](chars string) ConfigureTableFunc[ID] {
	return func(t *Table[ID]) {
		t.flagChars = []rune(chars)
	}
}

// WithDescription sets the program description shown in full help output.
func WithDescription[ID comparable](description string) ConfigureTableFunc[ID] {
	return func(t *Table[ID]) {
		t.description = description
	}
}

// WithEnvPrefix enables environment collection for ParseOS and ParseMapOS:
// named options are looked up as PREFIX_SCREAMING_SNAKE environment
// variables and any values found are parsed ahead of the argument vector.
func WithEnvPrefix[ID comparable](prefix string) ConfigureTableFunc[ID] {
	return func(t *Table[ID]) {
		t.envPrefix = prefix
	}
}

// WithStdout overrides the writer help output is printed to. Defaults to
// os.Stdout.
func WithStdout[ID comparable](w io.Writer) ConfigureTableFunc[ID] {
	return func(t *Table[ID]) {
		t.stdout = w
	}
}

// WithStderr overrides the writer error output is printed to. Defaults to
// os.Stderr.
func WithStderr[ID comparable](w io.Writer) ConfigureTableFunc[ID] {
	return func(t *Table[ID]) {
		t.stderr = w
	}
}
