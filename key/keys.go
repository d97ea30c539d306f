// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// List Construction - these keys seed every list created by the CLI, the playground and Lua scripts.
const (
	ListInitialCapacity = "list.initial_capacity"
	ListMaxCapacity     = "list.max_capacity"
	ListMaxBytes        = "list.max_bytes"
	ListElementType     = "list.element_type"
)

// Script Execution - these keys govern how operation scripts are run and reported.
const (
	ExecFormat      = "exec.format"
	ExecStopOnError = "exec.stop_on_error"
)

// History Tracking - these keys configure the persistence of executed scripts.
const (
	HistorySave = "history.save"
	HistorySize = "history.size"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Playground - these keys define the interactive environment's rendering.
const (
	TUIShowSlots = "tui.show_slots"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-interactive application behavior.
const (
	CliColored = "cli.colored"
)
