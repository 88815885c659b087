// Package services implements the driving port interfaces.
// Services hold the exercise walkthroughs, the file handlers and the
// settings logic, and reach the outside world only through driven ports.
//
// Services are pure Go with no CGO or external dependencies.
package services
