package dispatches

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pal/strategies"
)

type Module struct {
	dscope.Module
	Strategies strategies.Module
}
