package node

import (
	"github.com/jinyuli/uvm/src/internal/constants"
	"github.com/jinyuli/uvm/src/internal/runtime"
)

// Scripts returns the activation scripts of a Node.js virtual environment
func (p *Provider) Scripts(goos string) []runtime.Script {
	if goos == constants.OSWindows {
		return []runtime.Script{
			{Name: "activate.ps1", Template: ps1Activate},
			{Name: "deactivate.ps1", Template: ps1Deactivate},
		}
	}
	return []runtime.Script{
		{Name: "activate.sh", Template: shellActivate},
		{Name: "deactivate.sh", Template: shellDeactivate},
	}
}

const shellActivate = `# Source this file to use the Node.js linked into {{.EnvDir}}:
#   . "{{.EnvDir}}/activate.sh"

if [ ! -x "{{.LinkDir}}/bin/node" ]; then
    echo "ERROR: Node.js is not installed at {{.LinkDir}}" >&2
    return 2 2>/dev/null || exit 2
fi

if [ -z "${UVM_NODE_ENV:-}" ]; then
    export UVM_NODE_ENV="{{.EnvDir}}"
    export UVM_NODE_OLD_PATH="$PATH"
    export UVM_NODE_OLD_PS1="${PS1:-}"

    export PATH="{{.LinkDir}}/bin:$PATH"
    export PS1="{{.Prompt}}${PS1:-}"
fi
`

const shellDeactivate = `# Source this file to leave the Node.js environment in {{.EnvDir}}:
#   . "{{.EnvDir}}/deactivate.sh"

if [ -n "${UVM_NODE_ENV:-}" ]; then
    export PATH="$UVM_NODE_OLD_PATH"
    export PS1="$UVM_NODE_OLD_PS1"
    unset UVM_NODE_ENV UVM_NODE_OLD_PATH UVM_NODE_OLD_PS1
fi
`

const ps1Activate = `# Run this script to use the Node.js linked into {{.EnvDir}}:
#   . "{{.EnvDir}}\activate.ps1"

$NodeDir = "{{.LinkDir}}"
if (-not (Test-Path "$NodeDir\node.exe")) {
    Write-Host "ERROR: Node.js is not installed at $NodeDir"
    return
}

if (-not $Env:UVM_NODE_ENV) {
    $Env:UVM_NODE_ENV = "{{.EnvDir}}"
    $Env:UVM_NODE_OLD_PATH = $Env:Path
    $Env:Path = "$NodeDir;$Env:Path"

    $Function:global:_uvm_node_old_prompt = $Function:prompt
    function global:prompt {
        Write-Host "{{.Prompt}}" -NoNewline
        & $Function:_uvm_node_old_prompt
    }
}
`

const ps1Deactivate = `# Run this script to leave the Node.js environment in {{.EnvDir}}:
#   . "{{.EnvDir}}\deactivate.ps1"

if ($Env:UVM_NODE_ENV) {
    $Env:Path = $Env:UVM_NODE_OLD_PATH
    Remove-Item Env:UVM_NODE_ENV, Env:UVM_NODE_OLD_PATH -ErrorAction SilentlyContinue

    if (Test-Path Function:_uvm_node_old_prompt) {
        $Function:global:prompt = $Function:_uvm_node_old_prompt
        Remove-Item Function:_uvm_node_old_prompt
    }
}
`
