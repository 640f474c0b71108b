package core

import "testing"

type noopAlgorithm struct{ inits int }

func (a *noopAlgorithm) Init(node *Node, comm Communicator) { a.inits++ }
func (a *noopAlgorithm) OnMessage(node *Node, comm Communicator, arrivalTime float64, content string) {
}

func TestRegisterAndLoad(t *testing.T) {
	Register("test-noop", func() Algorithm { return &noopAlgorithm{} })

	alg, err := Load("test-noop")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if _, ok := alg.(*noopAlgorithm); !ok {
		t.Fatalf("Load returned %T, want *noopAlgorithm", alg)
	}
}

func TestLoad_UnknownName(t *testing.T) {
	_, err := Load("does-not-exist")
	if err == nil {
		t.Fatalf("expected an error for an unregistered algorithm name")
	}
	var loadErr *ErrAlgorithmLoadFailed
	if _, ok := err.(*ErrAlgorithmLoadFailed); !ok {
		t.Fatalf("err = %T, want *ErrAlgorithmLoadFailed", err)
	}
	_ = loadErr
}

func TestFactory_FreshInstancePerCall(t *testing.T) {
	Register("test-fresh", func() Algorithm { return &noopAlgorithm{} })

	a, _ := Load("test-fresh")
	b, _ := Load("test-fresh")
	if a == b {
		t.Errorf("Load should hand back a fresh instance on each call")
	}
}
