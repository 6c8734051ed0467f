package actions

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pal/contexts"
	"github.com/reusee/pal/logs"
)

type Module struct {
	dscope.Module
	Contexts contexts.Module
	Logs     logs.Module
}
