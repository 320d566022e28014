package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// RunExtension finds and executes an external habits-<name> binary from
// PATH, git style. It returns (true, exitCode) when an extension ran,
// and (false, 0) when none was found.
func RunExtension(name string, args []string) (bool, int) {
	lp, err := exec.LookPath("habits-" + name)
	if err != nil {
		return false, 0
	}

	c := exec.Command(lp, args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	// Extensions see the resolved configuration, not just the raw
	// environment, so they read the same document this tool does.
	c.Env = append(os.Environ(),
		EnvHome+"="+homeDir(),
		EnvSyncURL+"="+os.Getenv(EnvSyncURL),
	)

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing extension %q: %v\n", lp, err)
		return true, 1
	}
	return true, 0
}
