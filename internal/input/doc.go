// Package input normalizes raw user input into domain.Action values.
//
// Keyboard key names, widget button attributes and CLI tokens all end up as
// the same small set of actions, so the editor never sees where an action
// came from.
package input
