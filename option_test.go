package opttab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption_Builders(t *testing.T) {
	opt := NewValue(idCount, "VALUE", "--count", "-n").
		Required().
		WithHelpText("how many times to run")

	assert.Equal(t, idCount, opt.ID())
	assert.Equal(t, Value, opt.Kind())
	assert.Equal(t, []string{"--count", "-n"}, opt.Names())
	assert.Equal(t, "VALUE", opt.ValueName())
	assert.Equal(t, "how many times to run", opt.HelpText())
	assert.True(t, opt.IsRequired())
	assert.False(t, opt.IsHelp())
}

func TestOption_EmptyNamesPanics(t *testing.T) {
	assert.Panics(t, func() { NewFlag[testID](idVerbose) })
	assert.Panics(t, func() { NewValue[testID](idCount, "VALUE") })
}

func TestOption_RequiredHelpPanics(t *testing.T) {
	assert.Panics(t, func() { NewHelpFlag(idHelp, "--help").Required() })
}

func TestOption_Hide(t *testing.T) {
	opt := NewFlag(idVerbose, "--verbose")
	assert.True(t, opt.ShownInShortUsage())
	assert.True(t, opt.ShownInFullHelp())

	hidden := opt.Hide(HideShort)
	assert.False(t, hidden.ShownInShortUsage())
	assert.True(t, hidden.ShownInFullHelp())

	hidden = opt.Hide(HideFull)
	assert.True(t, hidden.ShownInShortUsage())
	assert.False(t, hidden.ShownInFullHelp())

	hidden = opt.Hide(HideAll)
	assert.False(t, hidden.ShownInShortUsage())
	assert.False(t, hidden.ShownInFullHelp())
}

func TestOption_NameClassification(t *testing.T) {
	opt := NewFlag(idVerbose, "-v", "--verbose")
	assert.Equal(t, "-v", opt.FirstName())
	assert.Equal(t, "--verbose", opt.FirstLongName())
	assert.Equal(t, "-v", opt.FirstShortName())

	r, ok := opt.ShortNameRune()
	assert.True(t, ok)
	assert.Equal(t, 'v', r)

	longOnly := NewFlag(idVerbose, "--verbose")
	assert.Equal(t, "", longOnly.FirstShortName())
	_, ok = longOnly.ShortNameRune()
	assert.False(t, ok)

	shortOnly := NewFlag(idVerbose, "-v")
	assert.Equal(t, "", shortOnly.FirstLongName())

	// "--" is two identical runes, so it is not a short alias.
	doubled := NewFlag(idVerbose, "--")
	assert.Equal(t, "", doubled.FirstShortName())
}

func TestOption_MatchName(t *testing.T) {
	opt := NewValue(idCount, "VALUE", "--count", "-n")

	name, ok := opt.matchName("--count", 1)
	assert.True(t, ok)
	assert.Equal(t, "--count", name)

	name, ok = opt.matchName("-n", 1)
	assert.True(t, ok)
	assert.Equal(t, "-n", name)

	// Remainder comparison ignores the prefix character on both sides.
	name, ok = opt.matchName("/n", 1)
	assert.True(t, ok)
	assert.Equal(t, "-n", name)

	_, ok = opt.matchName("--counts", 1)
	assert.False(t, ok, "matching is exact, never a prefix match")

	_, ok = opt.matchName("-", 1)
	assert.False(t, ok, "an empty remainder never matches")

	_, ok = opt.matchName("", 1)
	assert.False(t, ok)
}
