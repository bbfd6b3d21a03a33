package opttab

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/opttab/types/queue"
)

// osArgs returns the invocation name and raw argument tokens of the
// hosting process.
func osArgs() (string, []string) {
	if len(os.Args) == 0 {
		return "", nil
	}
	return filepath.Base(os.Args[0]), os.Args[1:]
}

// osTokens assembles the token stream for OS-level parsing: tokens derived
// from the environment first, then the argument vector.
func (t *Table[ID]) osTokens() (string, *queue.Q[string]) {
	programName, args := osArgs()
	q := queue.New[string]()
	t.collectEnvTokens(q)
	for _, arg := range args {
		q.Enqueue(arg)
	}
	return programName, q
}

// collectEnvTokens enqueues tokens synthesized from environment variables
// for named entries, in table order. Value options become "--name=value"
// tokens; flags are enqueued bare, and only when the variable holds a
// truthy value. Positionals never come from the environment.
func (t *Table[ID]) collectEnvTokens(q *queue.Q[string]) {
	if t.envPrefix == "" {
		return
	}
	for i := range t.options {
		opt := &t.options[i]
		if opt.kind == Positional {
			continue
		}
		name := t.envName(opt)
		if name == "" {
			continue
		}
		value, found := os.LookupEnv(name)
		if !found {
			continue
		}
		if opt.kind == Flag {
			if on, err := strconv.ParseBool(value); err == nil && on {
				q.Enqueue(opt.FirstLongName())
			}
			continue
		}
		q.Enqueue(opt.FirstLongName() + "=" + value)
	}
}

// envName derives the environment variable name for an option: the
// configured prefix joined with the SCREAMING_SNAKE form of the first long
// alias, flag-prefix characters stripped. Options without a long alias are
// not resolvable from the environment.
func (t *Table[ID]) envName(opt *Option[ID]) string {
	long := opt.FirstLongName()
	if long == "" {
		return ""
	}
	bare := strings.TrimLeft(long, string(t.flagChars))
	if bare == "" {
		return ""
	}
	return t.envPrefix + "_" + strcase.ToScreamingSnake(bare)
}
