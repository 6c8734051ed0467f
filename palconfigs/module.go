package palconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pal/logs"
	"github.com/reusee/pal/starlarks"
)

type Module struct {
	dscope.Module
	Logs      logs.Module
	Starlarks starlarks.Module
}
