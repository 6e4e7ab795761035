package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_LogFlag_DefaultsToWarn(t *testing.T) {
	// GIVEN the root command with its registered persistent flags
	flag := rootCmd.PersistentFlags().Lookup("log")

	// WHEN we check the default value
	// THEN it MUST be "warn"
	assert.NotNil(t, flag, "log flag must be registered")
	assert.Equal(t, "warn", flag.DefValue)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	// GIVEN the root command
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	// WHEN listing its registered subcommands
	// THEN both decode and score MUST be present
	assert.True(t, names["decode"], "decode subcommand must be registered")
	assert.True(t, names["score"], "score subcommand must be registered")
}

func TestDecodeCmd_RequiredFlagsRegistered(t *testing.T) {
	// GIVEN the decode subcommand
	// WHEN checking for its required flags
	// THEN logprob and config MUST both be registered
	for _, name := range []string{"logprob", "config"} {
		t.Run(name, func(t *testing.T) {
			flag := decodeCmd.Flags().Lookup(name)
			assert.NotNil(t, flag, "%s flag must be registered", name)
		})
	}
}

func TestScoreCmd_RequiredFlagsRegistered(t *testing.T) {
	// GIVEN the score subcommand
	// WHEN checking for its required flags
	// THEN tpost, config and seq MUST all be registered
	for _, name := range []string{"tpost", "config", "seq"} {
		t.Run(name, func(t *testing.T) {
			flag := scoreCmd.Flags().Lookup(name)
			assert.NotNil(t, flag, "%s flag must be registered", name)
		})
	}
}
