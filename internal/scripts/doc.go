// Package scripts turns facts into structured narration scripts.
//
// A script has exactly four sections ordered intro, body, transition,
// outro. Template text comes from a pluggable TemplateProvider; the
// duration allocation across sections is the contracted behavior and does
// not depend on which provider is plugged in.
package scripts
