// Package facts manages the fact store: manual creation, curated-pool
// generation, and seeding of sample content on first run.
package facts
