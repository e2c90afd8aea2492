package bfconfigs

import (
	"github.com/reusee/dscope"
)

// Module depends on logs.Module.
type Module struct {
	dscope.Module
}
