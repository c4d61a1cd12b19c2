package java

import (
	"github.com/jinyuli/uvm/src/internal/constants"
	"github.com/jinyuli/uvm/src/internal/runtime"
)

// Scripts returns the activation scripts of a Java virtual environment
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

const shellActivate = `# Source this file to use the Java linked into {{.EnvDir}}:
#   . "{{.EnvDir}}/activate.sh"

if [ ! -x "{{.LinkDir}}/bin/java" ]; then
    echo "ERROR: Java is not installed at {{.LinkDir}}" >&2
    return 2 2>/dev/null || exit 2
fi

if [ -z "${UVM_JAVA_ENV:-}" ]; then
    export UVM_JAVA_ENV="{{.EnvDir}}"
    export UVM_JAVA_OLD_PATH="$PATH"
    export UVM_JAVA_OLD_PS1="${PS1:-}"
    if [ -n "${JAVA_HOME+x}" ]; then
        export UVM_JAVA_OLD_JAVA_HOME="$JAVA_HOME"
    fi

    export JAVA_HOME="{{.LinkDir}}"
    export PATH="$JAVA_HOME/bin:$PATH"
    export PS1="{{.Prompt}}${PS1:-}"
fi
`

const shellDeactivate = `# Source this file to leave the Java environment in {{.EnvDir}}:
#   . "{{.EnvDir}}/deactivate.sh"

if [ -n "${UVM_JAVA_ENV:-}" ]; then
    if [ -n "${UVM_JAVA_OLD_JAVA_HOME+x}" ]; then
        export JAVA_HOME="$UVM_JAVA_OLD_JAVA_HOME"
    else
        unset JAVA_HOME
    fi
    export PATH="$UVM_JAVA_OLD_PATH"
    export PS1="$UVM_JAVA_OLD_PS1"
    unset UVM_JAVA_ENV UVM_JAVA_OLD_PATH UVM_JAVA_OLD_PS1 UVM_JAVA_OLD_JAVA_HOME
fi
`

const ps1Activate = `# Run this script to use the Java linked into {{.EnvDir}}:
#   . "{{.EnvDir}}\activate.ps1"

$JavaDir = "{{.LinkDir}}"
if (-not (Test-Path "$JavaDir\bin\java.exe")) {
    Write-Host "ERROR: Java is not installed at $JavaDir"
    return
}

if (-not $Env:UVM_JAVA_ENV) {
    $Env:UVM_JAVA_ENV = "{{.EnvDir}}"
    $Env:UVM_JAVA_OLD_PATH = $Env:Path
    $Env:UVM_JAVA_OLD_JAVA_HOME = $Env:JAVA_HOME

    $Env:JAVA_HOME = $JavaDir
    $Env:Path = "$JavaDir\bin;$Env:Path"

    $Function:global:_uvm_java_old_prompt = $Function:prompt
    function global:prompt {
        Write-Host "{{.Prompt}}" -NoNewline
        & $Function:_uvm_java_old_prompt
    }
}
`

const ps1Deactivate = `# Run this script to leave the Java environment in {{.EnvDir}}:
#   . "{{.EnvDir}}\deactivate.ps1"

if ($Env:UVM_JAVA_ENV) {
    $Env:Path = $Env:UVM_JAVA_OLD_PATH
    if ($Env:UVM_JAVA_OLD_JAVA_HOME) {
        $Env:JAVA_HOME = $Env:UVM_JAVA_OLD_JAVA_HOME
    } else {
        Remove-Item Env:JAVA_HOME -ErrorAction SilentlyContinue
    }
    Remove-Item Env:UVM_JAVA_ENV, Env:UVM_JAVA_OLD_PATH, Env:UVM_JAVA_OLD_JAVA_HOME -ErrorAction SilentlyContinue

    if (Test-Path Function:_uvm_java_old_prompt) {
        $Function:global:prompt = $Function:_uvm_java_old_prompt
        Remove-Item Function:_uvm_java_old_prompt
    }
}
`
