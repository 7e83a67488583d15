package commands

import (
	"ufc/pkg/colors"
	"ufc/pkg/palette"
)

func rule(pattern string, cs ...colors.Color) palette.Spec {
	return palette.Spec{Pattern: pattern, Colors: cs}
}

// Size patterns shared by the storage and memory tables, largest unit first.
var (
	sizeT = rule(`\s\d*[.,]?\dTi?\s|\b\d{10,12}\b`, colors.BoldRed)
	sizeG = rule(`\s\d*[.,]?\dGi?\s|\b\d{7,9}\b`, colors.Red)
	sizeM = rule(`\s\d*[.,]?\dMi?\s|\b\d{4,6}\b`, colors.Yellow)
	sizeK = rule(`\s\d*[.,]?\d(?:K|B)i?\s|\b\d{1,3}\b`, colors.Green)
)

var dfSpecs = []palette.Spec{
	// filesystem
	rule(`^(/[-\w.]+)+\s`, colors.Blue, colors.BoldBlue),
	rule(`^tmpfs.*`, colors.BoldBlack),
	// mounted on
	rule(`/$|(/[-\w. ]+)+$`, colors.Green, colors.BoldGreen),
	// use%
	rule(`\s[1-6]?[0-9]%\s`, colors.Green),
	rule(`\s[78][0-9]%\s`, colors.Yellow),
	rule(`\s9[0-7]%\s`, colors.Red),
	rule(`\s9[89]%|100%\s`, colors.BoldRed),
	sizeT,
	sizeG,
	sizeM,
	sizeK,
}

var duSpecs = []palette.Spec{
	// path
	rule(`\s+[./]+([\w\s\-.]+)(/.*)?$`, colors.Default, colors.BoldBlue, colors.Blue),
	rule(`.*\s+total$`, colors.BoldYellow),
	rule(`^ ?\d*[.,]?\dTi?`, colors.BoldRed),
	rule(`^ ?\d*[.,]?\dGi?`, colors.Red),
	rule(`^\d{7,9}`, colors.Red),
	rule(`^ ?\d*[.,]?\dMi?`, colors.Yellow),
	rule(`^\d{4,6}`, colors.Yellow),
	rule(`^ ?\d*[.,]?\dKi?`, colors.Green),
	rule(`^\d{1,3}`, colors.Green),
	// cannot read
	rule(`^du.*`, colors.Red),
}

var fdiskSpecs = []palette.Spec{
	rule(`\s\d+[.,]?\d*\s?Gi?B?`, colors.Red),
	rule(`\s\d*[.,]?\d*\s?Mi?B?`, colors.Yellow),
	rule(`\s\d*[.,]?\d*\s?Ki?B?`, colors.Green),
	rule(`identifier: (.*)$`, colors.Inherit, colors.Cyan),
	rule(`type: (.*)$`, colors.Inherit, colors.BoldCyan),
	// partitions
	rule(`^(?:/([^/: ]+))+`, colors.Green, colors.BoldGreen),
	// boot flag
	rule(`\*\s\s\s`, colors.OnRed),
	rule(`^(Disk) (?:/([^/: ]+))+`, colors.Yellow, colors.OnYellow, colors.BoldYellow),
	rule(`fdisk: cannot open ([^:]+).*$`, colors.Red, colors.BoldRed),
}

var findmntSpecs = []palette.Spec{
	rule(`\b(?:fat|vfat|ntfs|msdos)\b`, colors.OnCyan),
	rule(`\b(?:ext\d|xfs|btrfs|nfs)\b`, colors.Cyan),
	// pseudo filesystems are dimmed as a whole
	rule(`^.*(?:cgroup|tmpfs).*$`, colors.BoldBlack),
	rule(`\sro\b`, colors.BoldGreen),
	rule(`\srw\b`, colors.BoldRed),
	// mount path after the tree glyph
	rule(`(?:─|-)(?:/([^/ ]+))+`, colors.Inherit, colors.BoldYellow),
	rule(`\s/dev(?:/([^/ ]+))+`, colors.Green, colors.BoldGreen),
}

var freeSpecs = []palette.Spec{
	rule(`\s+0\w?(?:\s|$)`, colors.Green),
	rule(`^Swap`, colors.BoldMagenta),
	rule(`^Mem`, colors.BoldCyan),
	rule(`\s\d*[.,]?\dTi?|\b\d{10,12}\b`, colors.BoldRed),
	rule(`\s\d*[.,]?\dGi?|\b\d{7,9}\b`, colors.Red),
	rule(`\s\d*[.,]?\dMi?|\b\d{4,6}\b`, colors.Yellow),
	rule(`\s\d*[.,]?\dKi?|\b\d{1,3}\b`, colors.Green),
}
