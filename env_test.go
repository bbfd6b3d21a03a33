package opttab

import (
	"testing"

	"github.com/napalu/opttab/types/queue"
	"github.com/stretchr/testify/assert"
)

func envTable() *Table[testID] {
	return MustTable([]Option[testID]{
		NewPositional(idFile, "file"),
		NewFlag(idVerbose, "--verbose", "-v"),
		NewValue(idCount, "VALUE", "--count", "-n"),
		NewValue(idExtra, "BYTES", "--max-size"),
		NewFlag(idMode, "-q"),
	}, WithEnvPrefix[testID]("APP"))
}

func TestEnvName(t *testing.T) {
	tab := envTable()
	opts := tab.Options()

	assert.Equal(t, "APP_VERBOSE", tab.envName(&opts[1]))
	assert.Equal(t, "APP_COUNT", tab.envName(&opts[2]))
	assert.Equal(t, "APP_MAX_SIZE", tab.envName(&opts[3]), "dashed aliases become snake case")
	assert.Equal(t, "", tab.envName(&opts[4]), "short-only options have no environment name")
}

func TestCollectEnvTokens(t *testing.T) {
	tab := envTable()

	t.Setenv("APP_VERBOSE", "true")
	t.Setenv("APP_COUNT", "7")
	t.Setenv("APP_MAX_SIZE", "1024")

	q := queue.New[string]()
	tab.collectEnvTokens(q)
	assert.Equal(t, []string{"--verbose", "--count=7", "--max-size=1024"}, q.Drain(),
		"tokens are synthesized in table order")
}

func TestCollectEnvTokens_FalseFlagSkipped(t *testing.T) {
	tab := envTable()

	t.Setenv("APP_VERBOSE", "0")
	t.Setenv("APP_COUNT", "7")

	q := queue.New[string]()
	tab.collectEnvTokens(q)
	assert.Equal(t, []string{"--count=7"}, q.Drain(), "a falsy flag variable produces no token")
}

func TestCollectEnvTokens_MalformedFlagValueSkipped(t *testing.T) {
	tab := envTable()

	t.Setenv("APP_VERBOSE", "yes please")

	q := queue.New[string]()
	tab.collectEnvTokens(q)
	assert.Empty(t, q.Drain(), "an unparsable flag variable produces no token")
}

func TestCollectEnvTokens_NoPrefix(t *testing.T) {
	tab := MustTable([]Option[testID]{
		NewFlag(idVerbose, "--verbose"),
	})

	t.Setenv("VERBOSE", "true")

	q := queue.New[string]()
	tab.collectEnvTokens(q)
	assert.Empty(t, q.Drain(), "environment collection is opt-in via the prefix")
}

func TestEnvTokens_ParsedBeforeArgv(t *testing.T) {
	tab := envTable()

	t.Setenv("APP_COUNT", "1")

	q := queue.New[string]()
	tab.collectEnvTokens(q)
	q.Enqueue("--count=2")
	q.Enqueue("in.txt")

	var calls []invocation
	result := tab.parseStream("prog", &queueSource{q: q}, recordingHandler(&calls), nil)
	assert.Equal(t, ContinueSuccess, result)
	assert.Equal(t, []invocation{
		{id: idCount, name: "--count", value: "1", hasValue: true},
		{id: idCount, name: "--count", value: "2", hasValue: true},
		{id: idFile, name: "file", value: "in.txt", hasValue: true},
	}, calls, "argv tokens follow environment tokens, so they win for last-value semantics")
}
