package system

import "os/exec"

// CommandRunner defines an interface for running external commands.
type CommandRunner interface {
	Run(name string, args ...string) (string, error)
	LookPath(name string) (string, error)
}

// ExecCommandRunner executes commands on the local system.
type ExecCommandRunner struct{}

// NewCommandRunner returns a default command runner implementation.
func NewCommandRunner() CommandRunner {
	return &ExecCommandRunner{}
}

// Run executes a command and returns its combined output.
func (r *ExecCommandRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// LookPath reports where a command resolves to in PATH.
func (r *ExecCommandRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
