package bfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

var (
	dumpFlag = cmds.Var[string]("-dump", "write the machine state to this file when the program faults")
	tapFlag  = cmds.Switch("-tap", "open a starlark shell when the program faults")
)

// DumpPath is where the snapshot of a faulted run goes. Empty disables it.
type DumpPath string

func (Module) DumpPath(
	loader configs.Loader,
) DumpPath {
	return DumpPath(vars.FirstNonZero(
		*dumpFlag,
		lookup[string](loader, "dump"),
	))
}

type TapOnFault bool

func (Module) TapOnFault() TapOnFault {
	return TapOnFault(*tapFlag)
}
