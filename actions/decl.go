package actions

import (
	"github.com/reusee/pal/contexts"
	"github.com/reusee/pal/hosts"
)

// Decl declares one palette action: a strategy tag, display metadata,
// options, and an ordered prompt sequence. Name is the identity; declaring
// the same name again merges onto the earlier declaration.
type Decl struct {
	Name        string
	Strategy    string
	Description string
	Opts        Opts
	Prompts     []PromptSpec
}

type Opts struct {
	Mapping              string
	Modes                []string
	SlashCmd             string
	AutoSubmit           *bool
	StopContextInsertion *bool
	UserPrompt           *bool
	Adapter              *Adapter
	Placement            string
	PreHook              PreHook
	Condition            Condition
	Picker               map[string]any
}

type Adapter struct {
	Name  string
	Model string
}

// PreHook runs before prompt rendering. It may touch the host environment
// and may return a resource handle for the strategy.
type PreHook func(ctx contexts.Context) (hosts.Handle, error)

type PromptSpec struct {
	Role         string
	Content      Content
	ContainsCode bool
	Condition    Condition
}

const (
	RoleSystem     = "system"
	RoleUser       = "user"
	RoleUserHeader = "user_header"
)
