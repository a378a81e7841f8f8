// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (actions, display and snapshot state) and contracts
// (interfaces) only.
package domain
