package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	require.Equal(t, 0, exitCode(nil))
	require.Equal(t, 1, exitCode(fmt.Errorf("open list: no such file")))
	require.Equal(t, 2, exitCode(errAllGroupsFailed))
	require.Equal(t, 2, exitCode(fmt.Errorf("extract: %w", errAllGroupsFailed)))
}
