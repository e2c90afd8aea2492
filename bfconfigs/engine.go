package bfconfigs

import (
	"fmt"
	"slices"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

var (
	tapeSizeFlag      = cmds.Var[int]("-tape-size", "number of tape cells, default 32768")
	eofFlag           = cmds.Var[EOFMode]("-eof", "input at end of file: zero, keep, max or error")
	traceFlag         = cmds.Switch("-trace", "log every instruction, shown with -log-debug")
	yieldIntervalFlag = cmds.Var[int]("-yield-interval", "instructions between cancellation checks")
)

// TapeSize is zero when neither flag nor config sets it.
type TapeSize int

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return TapeSize(vars.FirstNonZero(
		*tapeSizeFlag,
		lookup[int](loader, "tape_size"),
	))
}

// EOFMode is the name of an input end policy, empty for the default.
type EOFMode string

var eofModes = []EOFMode{"zero", "keep", "max", "error"}

func (m *EOFMode) UnmarshalText(text []byte) error {
	mode := EOFMode(text)
	if !slices.Contains(eofModes, mode) {
		return fmt.Errorf("unknown eof policy: %q", text)
	}
	*m = mode
	return nil
}

func (Module) EOFMode(
	loader configs.Loader,
) EOFMode {
	return vars.FirstNonZero(
		*eofFlag,
		EOFMode(lookup[string](loader, "eof")),
	)
}

type Trace bool

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(*traceFlag || lookup[bool](loader, "trace"))
}

type YieldInterval int

func (Module) YieldInterval(
	loader configs.Loader,
) YieldInterval {
	return YieldInterval(vars.FirstNonZero(
		*yieldIntervalFlag,
		lookup[int](loader, "yield_interval"),
	))
}
