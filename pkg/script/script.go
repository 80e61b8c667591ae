// Package script provides a Lisp evaluation front end over pkg/kernel and
// pkg/compose. It wraps zygomys in a sandboxed environment and produces a
// kernel.Session populated with whatever solids the source built and
// named, the Go-native analogue of a code-first model program.
package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/kernel"
	"github.com/chazu/brep/pkg/topo"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Output names one or more solids a script designated as a finished model
// via the (model ...) builtin, distinct from any scratch solids the script
// built along the way and never named.
type Output struct {
	Name   string
	Solids []handle.Handle[topo.Solid]
}

// EvalResult bundles a successful evaluation's session and named outputs.
type EvalResult struct {
	Session *kernel.Session
	Outputs []Output
}

// Engine wraps the zygomys interpreter for model-script evaluation. It is
// safe for concurrent use; each call to Evaluate creates a fresh sandboxed
// environment and a fresh kernel.Session for deterministic evaluation.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate takes Lisp source code and produces an EvalResult.
//
// Return semantics:
//   - On success: returns a result + nil errors + nil error
//   - On parse/eval failure: returns nil result + eval errors + nil error
//   - On fatal failure (timeout, panic): returns nil + nil + error
func (e *Engine) Evaluate(source string) (*EvalResult, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalOutcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalOutcome{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		res, evalErrs, err := e.evaluate(source)
		ch <- evalOutcome{result: res, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox over a
// fresh session.
func (e *Engine) evaluate(source string) (*EvalResult, []EvalError, error) {
	if strings.TrimSpace(source) == "" {
		return &EvalResult{Session: kernel.NewSession()}, nil, nil
	}

	session := kernel.NewSession()
	var outputs []Output

	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, session, &outputs)

	err := env.LoadString(preprocessSource(source))
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	_, err = env.Run()
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	return &EvalResult{Session: session, Outputs: outputs}, nil, nil
}

var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError
// values, extracting a line number from the message where present.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
