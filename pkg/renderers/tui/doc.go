// Package tui is the reference consumer of the validation core: a terminal
// form renderer that walks a validated field set, wiring each field's
// derived validator and default value into survey prompts. The PromptDriver
// seam keeps the walk testable without a terminal.
package tui
