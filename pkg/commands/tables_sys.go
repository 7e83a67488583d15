package commands

import (
	"ufc/pkg/colors"
	"ufc/pkg/palette"
)

var envSpecs = []palette.Spec{
	rule(`^([^=]+)(=)(.*)$`, colors.Default, colors.Cyan, colors.White, colors.Yellow),
}

var idSpecs = []palette.Spec{
	// SELinux context
	rule(`(\w+_u):(\w+_r):(\w+_t):([\w\-.:]+)`,
		colors.Inherit, colors.Green, colors.Yellow, colors.Cyan, colors.Magenta),
	rule(`uid.(\d+)\((\w+)\)`, colors.Inherit, colors.Green, colors.BoldGreen),
	rule(`(\d+)\((\w+)\)`, colors.Inherit, colors.Yellow, colors.BoldYellow),
}

var topSpecs = []palette.Spec{
	rule(`\s+PID.+COMMAND.+$`, colors.BlackOnGreen),
	rule(`Swap`, colors.BoldMagenta),
	rule(`Mem`, colors.BoldCyan),
	rule(`\d+:\d+[:.]\d+`, colors.BoldBlue),
	rule(`\s\d*[.,]?\dt|\b\d{10,12}\b`, colors.BoldRed),
	rule(`\s\d*[.,]?\dg|\b\d{7,9}\b`, colors.Red),
	rule(`\s\d*[.,]?\dm|\b\d{4,6}\b`, colors.Yellow),
	rule(`\s\d*[.,]?\dk?`, colors.Green),
}

var journalctlSpecs = []palette.Spec{
	rule(`connect`, colors.OnRed),
	rule(`status=deferred|Connection refused`, colors.Red),
	// HTTP status classes
	rule(`\s\b5\d{2}\b\s`, colors.Red),
	rule(`\s\b4\d{2}\b\s`, colors.Red),
	rule(`\s\b3\d{2}\b\s`, colors.Yellow),
	rule(`\s\b2\d{2}\b\s`, colors.Green),
	rule(`GET|POST|PUT|DELETE|PATCH|HEAD`, colors.Green),
	// email address
	rule(`[a-zA-Z0-9.\-+]+@[\w\-.]+`, colors.Green),
	// date and hostname
	rule(`^... (\d| )\d \d\d:\d\d:\d\d(\s[-.\w]+?\s)`, colors.Green, colors.Green, colors.Yellow),
	rule(ipv6Pattern, colors.BoldYellow),
	rule(ipv4Pattern+`(?::\d{1,5})?`, colors.BoldYellow),
	// process name and pid
	rule(`([\w/.\-]+)(\[\d+?\])`, colors.Default, colors.BoldBlue, colors.BoldRed),
	rule(`<.*?>`, colors.Blue),
	// probably a path
	rule(`\s/[a-zA-Z_/.\-?\d=&]+`, colors.Blue),
	rule(`".*?"`, colors.Blue),
	rule("`.+?'", colors.BoldYellow),
	rule(`\(.*?\)`, colors.Blue),
	rule(`.*last message repeated \d+ times$`, colors.Yellow),
}

var dockerSpecs = []palette.Spec{
	// ps / images header
	rule(`^(?:CONTAINER ID|REPOSITORY)\s.*$`, colors.BlackOnGreen),
	rule(`\bExited \((\d+)\)`, colors.Red, colors.BoldRed),
	rule(`\bUp\b`, colors.BoldGreen),
	rule(`\(healthy\)`, colors.Green),
	rule(`\(unhealthy\)|\bRestarting\b|\bDead\b`, colors.Red),
	rule(`\bPaused\b|\bCreated\b`, colors.Yellow),
	// published ports
	rule(`(\d+)->(\d+)/(tcp|udp|sctp)`, colors.Default, colors.BoldCyan, colors.Cyan, colors.Magenta),
	// container and image IDs
	rule(`\b(?:sha256:)?[0-9a-f]{12}\b`, colors.Yellow),
	rule(`<none>`, colors.DimDefault),
	rule(`\b\d+(?:\.\d+)?[kMG]?B\b`, colors.Yellow),
	rule(`\b(?:\d+|About an?|Less than a) \w+ ago\b`, colors.Blue),
}
