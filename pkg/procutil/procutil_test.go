package procutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPIDAliveSelf(t *testing.T) {
	assert.True(t, PIDAlive(os.Getpid()))
}

func TestPIDAliveInvalid(t *testing.T) {
	assert.False(t, PIDAlive(0))
	assert.False(t, PIDAlive(-7))
}

func TestPIDAliveNonexistent(t *testing.T) {
	// PID numbers this large are rejected by the kernel on Linux
	// (pid_max defaults to 4194304 and we probe well past it).
	assert.False(t, PIDAlive(99999999))
}
