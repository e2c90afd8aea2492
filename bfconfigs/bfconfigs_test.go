package bfconfigs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
)

func TestFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bf.cue")
	if err := os.WriteFile(path, []byte(`
tape_size: 100
eof: "max"
trace: true
dump: "state.yaml"
`), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(new(Module), new(logs.Module), modes.ForTest(t)).Fork(
		func() ConfigFiles {
			return ConfigFiles{path}
		},
	).Call(func(
		size TapeSize,
		eof EOFMode,
		trace Trace,
		dump DumpPath,
		interval YieldInterval,
	) {
		if size != 100 {
			t.Fatalf("got %v", size)
		}
		if eof != "max" {
			t.Fatalf("got %v", eof)
		}
		if !trace {
			t.Fatal("trace should be on")
		}
		if dump != "state.yaml" {
			t.Fatalf("got %v", dump)
		}
		if interval != 0 {
			t.Fatalf("got %v", interval)
		}
	})
}

func TestFlagOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bf.cue")
	if err := os.WriteFile(path, []byte(`tape_size: 100`), 0644); err != nil {
		t.Fatal(err)
	}
	*tapeSizeFlag = 7
	defer func() {
		*tapeSizeFlag = 0
	}()

	dscope.New(new(Module), new(logs.Module), modes.ForTest(t)).Fork(
		func() ConfigFiles {
			return ConfigFiles{path}
		},
	).Call(func(
		size TapeSize,
	) {
		if size != 7 {
			t.Fatalf("got %v", size)
		}
	})
}

func TestDefaults(t *testing.T) {
	dscope.New(new(Module), new(logs.Module), modes.ForTest(t)).Fork(
		func() ConfigFiles {
			return nil
		},
	).Call(func(
		size TapeSize,
		eof EOFMode,
		trace Trace,
		tap TapOnFault,
	) {
		if size != 0 {
			t.Fatalf("got %v", size)
		}
		if eof != "" {
			t.Fatalf("got %v", eof)
		}
		if trace {
			t.Fatal("trace should be off")
		}
		if tap {
			t.Fatal("tap should be off")
		}
	})
}

func TestEOFFlag(t *testing.T) {
	if err := cmds.Execute([]string{"-eof", "abort"}); err == nil ||
		!strings.Contains(err.Error(), "unknown eof policy") {
		t.Fatalf("got %v", err)
	}
	if *eofFlag != "" {
		t.Fatalf("got %v", *eofFlag)
	}

	if err := cmds.Execute([]string{"-eof", "keep"}); err != nil {
		t.Fatal(err)
	}
	defer cmds.GlobalExecutor.MustExecute([]string{"-eof."})

	path := filepath.Join(t.TempDir(), "bf.cue")
	if err := os.WriteFile(path, []byte(`eof: "max"`), 0644); err != nil {
		t.Fatal(err)
	}
	dscope.New(new(Module), new(logs.Module), modes.ForTest(t)).Fork(
		func() ConfigFiles {
			return ConfigFiles{path}
		},
	).Call(func(
		eof EOFMode,
	) {
		if eof != "keep" {
			t.Fatalf("got %v", eof)
		}
	})
}

func TestBrokenConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bf.cue")
	if err := os.WriteFile(path, []byte(`tape_size: -5`), 0644); err != nil {
		t.Fatal(err)
	}
	dscope.New(new(Module), new(logs.Module), modes.ForTest(t)).Fork(
		func() ConfigFiles {
			return ConfigFiles{path}
		},
	).Call(func(
		loader configs.Loader,
		size TapeSize,
		dump DumpPath,
	) {
		if loader.Err() == nil {
			t.Fatal("should error")
		}
		if size != 0 || dump != "" {
			t.Fatalf("got %v %v", size, dump)
		}
	})
}
