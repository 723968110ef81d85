//go:build !windows

package shell

import "os/exec"

func hideWindow(_ *exec.Cmd) {}
