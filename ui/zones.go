package ui

import "github.com/kastheco/capsule/ui/tabbar"

// Zone ID constants for bubblezone hit detection.
// These are used both in render paths (zone.Mark) and input paths (zone.Get).
const (
	ZoneTabBar = tabbar.ZoneID
	ZoneHelp   = "zone-help"
)
