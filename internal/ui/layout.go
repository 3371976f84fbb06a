package ui

import "time"

// Terminal width thresholds and card sizes for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// TileWidth is the outer width of a home module tile.
	TileWidth = 20

	// CardWidth is the outer width of a library card in grid view.
	CardWidth = 30

	// MenuWidth is the width of the quick menu modal.
	MenuWidth = 48

	// MenuResults caps the matches listed in the quick menu.
	MenuResults = 8
)

// Input monitor log tail.
const (
	// LogTailLines is the number of log lines the input monitor shows.
	LogTailLines = 5

	// LogRefresh is how often the log tail is re-read while visible.
	LogRefresh = 2 * time.Second
)
