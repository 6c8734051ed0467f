package palconfigs

import (
	"github.com/reusee/pal/cmds"
	"github.com/reusee/pal/configs"
	"github.com/reusee/pal/renders"
)

var sendCodeSwitch = cmds.Switch("-send-code")

// SendCode defaults to false. The command line switch wins over the config
// file so a session can opt in without editing config.
func (Module) SendCode(
	loader configs.Loader,
) renders.SendCode {
	if *sendCodeSwitch {
		return true
	}
	return renders.SendCode(configs.First[bool](loader, "send_code"))
}
