// Package publish uploads rendered videos to the external platform and
// records the result. Each video is published at most once unless the
// caller forces a re-publish.
package publish
