// Package notifications pushes operator-facing events to ntfy. With no
// topic configured the service degrades to a noop.
package notifications
