// Package videos assembles scripts into video records, delegating media
// synthesis to a Renderer collaborator. Assembly is append-only: rendering
// the same script twice yields two distinct video records.
package videos
