package system

import (
	"strings"
	"sync"
)

// MockCommandRunner records invocations instead of executing them and
// implements CommandRunner for tests.
type MockCommandRunner struct {
	mu sync.Mutex

	// Calls holds each Run invocation as "name arg1 arg2 ...".
	Calls []string

	// Output and Err are returned by every Run call.
	Output string
	Err    error

	// MissingCommands lists command names LookPath reports as not found.
	MissingCommands []string
}

// NewMockCommandRunner creates a new MockCommandRunner.
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{}
}

// Run records the invocation and returns the configured output and error.
func (m *MockCommandRunner) Run(name string, args ...string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, strings.Join(append([]string{name}, args...), " "))
	return m.Output, m.Err
}

// LookPath resolves every command to itself unless it is listed as missing.
func (m *MockCommandRunner) LookPath(name string) (string, error) {
	for _, missing := range m.MissingCommands {
		if missing == name {
			return "", &notFoundError{name: name}
		}
	}
	return "/usr/bin/" + name, nil
}

// RunCount returns the number of recorded Run invocations.
func (m *MockCommandRunner) RunCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

type notFoundError struct {
	name string
}

func (e *notFoundError) Error() string {
	return "executable file not found in $PATH: " + e.name
}
