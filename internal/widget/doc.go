// Package widget serves the browser calculator.
//
// HTTP API
//
//	GET /
//	    The keypad page. It posts key names to /press and renders the
//	    returned display.
//
//	GET /display
//	    The current DisplayState as JSON.
//
//	POST /press { "keys": ["1", "+", "2", "Enter"] }
//	    Apply keys in order and return the resulting DisplayState. Keys use
//	    the names accepted by input.ParseAll. An unknown key answers 400;
//	    keys before it have already been applied.
//
//	POST /clear
//	    Clear the expression and return the DisplayState.
//
// Behaviour
//
//   - One editor serves every client; a mutex makes each request's actions
//     complete before the next request's start.
//   - A failed evaluation is not an HTTP error: the display carries the
//     error marker and "error": true.
//   - Each request is logged with method, path, status, bytes and duration.
package widget
