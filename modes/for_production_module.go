package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction is used by the bf binary. Logs go to the journal when available.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}
