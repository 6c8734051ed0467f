package storages

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pal/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
