package strategies

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pal/renders"
)

type Module struct {
	dscope.Module
	Renders renders.Module
}
