package renders

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pal/actions"
)

type Module struct {
	dscope.Module
	Actions actions.Module
}
