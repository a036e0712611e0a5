// Package constants holds constants that are shared throughout the codebase.
package constants

// CommandName is the name of our main binary
const CommandName = "taskenv"

// ConfigFileName is the name of the project file that marks the workspace root
const ConfigFileName = "taskenv.yaml"

// InternalConfigFileName is the name of the database file holding our internal config
const InternalConfigFileName = "config.db"

// ConfigEnvVarName is the env var used to override the config dir that taskenv uses
const ConfigEnvVarName = "TASKENV_CONFIG_DIR"

// LogFileName is the name of the log file we write under the config dir
const LogFileName = "taskenv.log"

// RootDirEnvVarName is the exported variable holding the resolved workspace root
const RootDirEnvVarName = "ROOT_DIR"

// ActivatedEnvVarName is the exported variable that marks a session as activated
const ActivatedEnvVarName = "TASKENV_ACTIVATED"

// ActivatedIDEnvVarName is the exported variable holding the unique activation ID
const ActivatedIDEnvVarName = "TASKENV_ACTIVATED_ID"

// VirtualEnvVarName is the exported variable holding the active virtualenv path
const VirtualEnvVarName = "VIRTUAL_ENV"

// GoVersionEnvVarName is the exported variable that pins the selected Go toolchain
const GoVersionEnvVarName = "GOENV_VERSION"

// PyenvRootEnvVarName overrides where we look for pyenv virtualenvs
const PyenvRootEnvVarName = "PYENV_ROOT"

// GoenvRootEnvVarName overrides where we look for goenv toolchains
const GoenvRootEnvVarName = "GOENV_ROOT"

// DefaultVenvName is the virtualenv we activate when the project file doesn't name one
const DefaultVenvName = "todo-manager"

// DefaultGoVersion is the toolchain constraint we use when the project file doesn't name one
const DefaultGoVersion = "1.21"

// DefaultTodoFileName is the todo.txt file we manage relative to the workspace root
const DefaultTodoFileName = "todo.txt"

// RCAppendStartLine is the first line of the rc file block we manage
const RCAppendStartLine = "# -- START TASKENV RUNTIME ENVIRONMENT --"

// RCAppendStopLine is the last line of the rc file block we manage
const RCAppendStopLine = "# -- STOP TASKENV RUNTIME ENVIRONMENT --"
