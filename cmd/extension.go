package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// EnvConfigFile carries the -config flag to extension processes.
const EnvConfigFile = "KOS_CONFIG_FILE"

// RunExtension looks for an external kos-<name> binary on PATH and executes
// it with the remaining arguments, wiring the standard streams through. It
// returns (true, exitCode) when an extension ran and (false, 0) when none
// was found, letting the caller fall back to the builtin dispatch.
func RunExtension(name string, args []string) (bool, int) {
	lp, err := exec.LookPath("kos-" + name)
	if err != nil {
		return false, 0
	}

	c := exec.Command(lp, args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	c.Env = append(os.Environ(), EnvConfigFile+"="+*configPath)

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error running %s: %v\n", lp, err)
		return true, 1
	}
	return true, 0
}
