// constants.go - Application-wide constants and configuration values
package main

// Option defaults
const (
	// DefaultTheme is the image subdirectory and palette used when none is configured
	DefaultTheme = "default"

	// DefaultSortOrder is the direction the first click on a header produces
	DefaultSortOrder = SortAscending

	// MaxLevel is the deepest supported group nesting
	MaxLevel = Level3
)

// HTML attribute names recognised on the source table
const (
	AttrLevel         = "data-level"
	AttrSortType      = "data-sort-type"
	AttrSortSource    = "data-sort-attr"
	AttrSortDirection = "data-sort-direction"

	SortTypeNumericAttr = "numeric"
	SortTypeStringAttr  = "string"
	SortTypeLexicalAttr = "lexical"
)

// Markers and handler names
const (
	// SortableClass is added to the table while a sorter is attached
	SortableClass = "sortable-table"

	// IndicatorClass is the class of the sort-direction slot in each header
	IndicatorClass = "sort-direction-container"

	// ResizableIndicatorClass is added to the slot when columns may resize
	ResizableIndicatorClass = "allow-col-resize"

	// EventClick is the header click event
	EventClick = "click"

	// HandlerNamespace scopes the sorter's click handler so teardown removes only it
	HandlerNamespace = "sortableTable"
)

// Indicator images, resolved as {imageBase}/{theme}/{name}
const (
	ImagePlaceholder = "Transparent.gif"
	ImageArrowUp     = "arrow-up.png"
	ImageArrowDown   = "arrow-down.png"

	// IndicatorWidth and IndicatorHeight size the placeholder image
	IndicatorWidth  = 7
	IndicatorHeight = 4
)
