// Package ui draws the stats panel and parameter overlay of the ebiten
// driver. Its widgets are only built with the ebiten tag.
package ui
