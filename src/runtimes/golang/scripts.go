package golang

import (
	"github.com/jinyuli/uvm/src/internal/constants"
	"github.com/jinyuli/uvm/src/internal/runtime"
)

// Scripts returns the activation scripts of a Go virtual environment
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

const shellActivate = `# Source this file to use the Go linked into {{.EnvDir}}:
#   . "{{.EnvDir}}/activate.sh"

if [ ! -x "{{.LinkDir}}/bin/go" ]; then
    echo "ERROR: Go is not installed at {{.LinkDir}}" >&2
    return 2 2>/dev/null || exit 2
fi

if [ -z "${UVM_GO_ENV:-}" ]; then
    export UVM_GO_ENV="{{.EnvDir}}"
    export UVM_GO_OLD_GOROOT="${GOROOT:-}"
    export UVM_GO_OLD_GOPATH="${GOPATH:-}"
    export UVM_GO_OLD_PATH="$PATH"
    export UVM_GO_OLD_PS1="${PS1:-}"

    export GOROOT="{{.LinkDir}}"
    export GOPATH="{{.EnvDir}}/go_path"
    mkdir -p "$GOPATH"
    export PATH="$GOROOT/bin:$GOPATH/bin:$PATH"
    export PS1="{{.Prompt}}${PS1:-}"
fi
`

const shellDeactivate = `# Source this file to leave the Go environment in {{.EnvDir}}:
#   . "{{.EnvDir}}/deactivate.sh"

if [ -n "${UVM_GO_ENV:-}" ]; then
    export PATH="$UVM_GO_OLD_PATH"
    export PS1="$UVM_GO_OLD_PS1"
    if [ -n "$UVM_GO_OLD_GOROOT" ]; then export GOROOT="$UVM_GO_OLD_GOROOT"; else unset GOROOT; fi
    if [ -n "$UVM_GO_OLD_GOPATH" ]; then export GOPATH="$UVM_GO_OLD_GOPATH"; else unset GOPATH; fi
    unset UVM_GO_ENV UVM_GO_OLD_GOROOT UVM_GO_OLD_GOPATH UVM_GO_OLD_PATH UVM_GO_OLD_PS1
fi
`

const ps1Activate = `# Run this script to use the Go linked into {{.EnvDir}}:
#   . "{{.EnvDir}}\activate.ps1"

$GoRoot = "{{.LinkDir}}"
if (-not (Test-Path "$GoRoot\bin\go.exe")) {
    Write-Host "ERROR: Go is not installed at $GoRoot"
    return
}

if (-not $Env:UVM_GO_ENV) {
    $Env:UVM_GO_ENV = "{{.EnvDir}}"
    $Env:UVM_GO_OLD_GOROOT = $Env:GOROOT
    $Env:UVM_GO_OLD_GOPATH = $Env:GOPATH
    $Env:UVM_GO_OLD_PATH = $Env:Path

    $Env:GOROOT = $GoRoot
    $Env:GOPATH = "{{.EnvDir}}\go_path"
    New-Item -ItemType Directory -Force -Path $Env:GOPATH | Out-Null
    $Env:Path = "$GoRoot\bin;$Env:GOPATH\bin;$Env:Path"

    $Function:global:_uvm_go_old_prompt = $Function:prompt
    function global:prompt {
        Write-Host "{{.Prompt}}" -NoNewline
        & $Function:_uvm_go_old_prompt
    }
}
`

const ps1Deactivate = `# Run this script to leave the Go environment in {{.EnvDir}}:
#   . "{{.EnvDir}}\deactivate.ps1"

if ($Env:UVM_GO_ENV) {
    $Env:Path = $Env:UVM_GO_OLD_PATH
    $Env:GOROOT = $Env:UVM_GO_OLD_GOROOT
    $Env:GOPATH = $Env:UVM_GO_OLD_GOPATH
    Remove-Item Env:UVM_GO_ENV, Env:UVM_GO_OLD_GOROOT, Env:UVM_GO_OLD_GOPATH, Env:UVM_GO_OLD_PATH -ErrorAction SilentlyContinue

    if (Test-Path Function:_uvm_go_old_prompt) {
        $Function:global:prompt = $Function:_uvm_go_old_prompt
        Remove-Item Function:_uvm_go_old_prompt
    }
}
`
