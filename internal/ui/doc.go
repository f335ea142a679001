// Package ui provides the terminal user interface for ladle.
//
// # Architecture Overview
//
// The UI is a Bubble Tea application with two views sharing one Model:
//
//   - Home view: landing screen with navigation hints
//   - API demo view: backend selector, action row and response area
//
// A persistent header shows the active backend address and the outcome phase;
// a two-entry nav bar switches views (1/2, tab, esc). Exactly one view
// renders at a time; an unknown view value falls back to home.
//
// # Package Structure
//
//   - ui.go: Model, Update loop, messages/commands, and the main Run function
//   - demo.go: demo view key handling, trigger dispatch, response sync
//   - header.go: header, nav bar and footer rendering
//   - home.go, help.go: static views
//   - theme.go: lipgloss themes and styles
//   - keys.go: key bindings
//   - render.go: JSON pretty-printing and text helpers
//
// # Request Flow
//
//  1. An action key calls Model.trigger, which declines if the panel is busy
//     (the model-level guard; the footer merely renders the disabled state).
//  2. panel.Trigger moves the outcome to Loading synchronously and returns
//     the function that performs the single HTTP call.
//  3. That function runs as a tea.Cmd; its result arrives as a resolutionMsg.
//  4. panel.Apply drops stale resolutions; applied ones re-render the
//     response area: pretty-printed JSON (2-space indent) on success, a
//     styled error block on failure, a spinner while loading.
//
// # External Dependencies
//
//   - panel: demo panel core (selection + outcome state machine)
//   - bubbles: textinput (address entry), spinner, viewport, key
//   - lipgloss: styling and themes
//   - atotto/clipboard: copy the raw response body ("y")
//   - prefs: theme choice persistence
package ui
