package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pal/dispatches"
	"github.com/reusee/pal/palconfigs"
	"github.com/reusee/pal/terms"
)

type Module struct {
	dscope.Module
	Dispatches dispatches.Module
	Configs    palconfigs.Module
	Terms      terms.Module
}
