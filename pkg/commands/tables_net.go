package commands

import (
	"ufc/pkg/colors"
	"ufc/pkg/palette"
)

const (
	ipv4Pattern = `\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`
	ipv6Pattern = `\b[0-9a-fA-F]{1,4}(?:::?[0-9a-fA-F]{1,4})+`
)

var pingSpecs = []palette.Spec{
	rule(ipv4Pattern, colors.BoldBlue),
	rule(`(?:(?:[0-9a-fA-F]{1,4})?::?[0-9a-fA-F]{1,4})+`, colors.Magenta),
	rule(`icmp_seq=(\d+)`, colors.Default, colors.Magenta),
	rule(`ttl=(\d+)`, colors.Default, colors.Magenta),
	// host name
	rule(`(?:[fF]rom|PING)\s(\S+)\s`, colors.Default, colors.Blue),
	rule(`DUP!`, colors.Red),
	rule(` 0(?:\.0)?% packet loss`, colors.Green),
	rule(`Destination Host Unreachable|100(?:\.0)?% packet loss`, colors.Red),
	rule(`.+unknown\shost\s(.+)`, colors.Red, colors.BoldRed),
	rule(`--- (\S+) ping statistics ---`, colors.BoldDefault, colors.BoldBlue),
	// summary labels and values
	rule(`rtt (min)/(avg)/(max)/(mdev)`,
		colors.Default, colors.BoldYellow, colors.BoldBlue, colors.BoldRed, colors.BoldMagenta),
	rule(`=\s([0-9.]+)/([0-9.]+)/([0-9.]+)/([0-9.]+)`,
		colors.Default, colors.BoldYellow, colors.BoldBlue, colors.BoldRed, colors.BoldMagenta),
	// nping
	rule(`SENT|RCVD`, colors.Red),
	rule(`unreachable`, colors.Red),
	rule(`([0-9.]+)?\s?ms`, colors.Green, colors.BoldGreen),
}

var digSpecs = []palette.Spec{
	rule(`; <<>> DiG.* <<>> (\S+)`, colors.Default, colors.BoldMagenta),
	// comments
	rule(`^;;[\s\w]+`, colors.Yellow),
	rule(`\t(?:(?:[0-9a-fA-F]{1,4})?::?[0-9a-fA-F]{1,4})+`, colors.DimGreen),
	rule(ipv4Pattern, colors.Green),
	// answer record: name, ttl, class, type
	rule(`^(\S+).*?(\d+)\t(\w+)\t(\w+)\t`,
		colors.Inherit, colors.Magenta, colors.Red, colors.Yellow, colors.Cyan),
	rule(`\S+\.`, colors.BoldMagenta),
}

var ifconfigSpecs = []palette.Spec{
	rule(`collisions[\s:]\d+`, colors.Red),
	rule(`carrier[\s:]\d+`, colors.Cyan),
	rule(`frame[\s:]\d+`, colors.White),
	rule(`overruns[\s:]\d+`, colors.Green),
	rule(`dropped[\s:]\d+`, colors.White),
	rule(`errors[\s:]\d+`, colors.Red),
	rule(`(?i)mtu[\s:]\d+`, colors.Green),
	// flags=4163<UP,BROADCAST,RUNNING>
	rule(`<([A-Z0-9_,]+)>`, colors.Default, colors.Blue),
	rule(`inet6?|netmask|broadcast`, colors.Cyan),
	// interface name
	rule(`^[a-z0-9.]{2,}\d*:?\s`, colors.BoldGreen),
	rule(`\d+\.?\d*\s+[TGMK]?i?B`, colors.Yellow),
	// hardware address
	rule(`[\da-f]{2}(?::[\da-f]{2}){5}`, colors.Yellow),
	rule(ipv6Pattern, colors.BoldGreen),
	rule(ipv4Pattern, colors.BoldGreen),
}
