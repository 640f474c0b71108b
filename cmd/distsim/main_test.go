package main

import (
	"strings"
	"testing"

	"github.com/kprusa/distsim/config"
)

func TestSimulate_RunsToCompletion(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(`
n: 5
topology: Line
id_type: Sequential
root: MinID
delay: Constant
logging: Short
algorithm: broadcast
seed: 1
`))
	if err != nil {
		t.Fatalf("config.Load error: %v", err)
	}

	if code := simulate(cfg); code != exitOK {
		t.Errorf("simulate() = %d, want %d", code, exitOK)
	}
}

func TestSimulate_RandomTopologyExitsOKOrNotConnected(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(`
n: 20
topology: Random
root: NoRoot
logging: Short
algorithm: broadcast
seed: 2
`))
	if err != nil {
		t.Fatalf("config.Load error: %v", err)
	}

	if code := simulate(cfg); code != exitNotConnected && code != exitOK {
		t.Errorf("simulate() = %d, want %d or %d", code, exitNotConnected, exitOK)
	}
}

func TestSimulate_UnknownAlgorithmReportsLoadFailure(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(`
n: 3
topology: Clique
root: NoRoot
logging: Short
algorithm: does-not-exist
seed: 3
`))
	if err != nil {
		t.Fatalf("config.Load error: %v", err)
	}

	if code := simulate(cfg); code != exitAlgorithmLoadFailed {
		t.Errorf("simulate() = %d, want %d", code, exitAlgorithmLoadFailed)
	}
}
