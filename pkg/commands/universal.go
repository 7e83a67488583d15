package commands

import (
	"ufc/pkg/colors"
	"ufc/pkg/palette"
)

// universalSpecs covers status words, addresses, percentages, sizes and bare numbers.
var universalSpecs = []palette.Spec{
	rule(`[Ww]arning|[Aa]lert`, colors.Yellow),
	rule(`[Dd]isabled?|[Ee]rrors?|[Ss]topped|[Ff]alse|[Nn]one|[Tt]erminated|[Ff]aile?d?`, colors.Red),
	rule(`[Ee]nabled?|[Oo]k|[Rr]unning|[Tt]rue|[Rr]eady|[Aa]ctive|[Aa]vailable|[Aa]pproved|[Cc]reated|[Cc]ompleted`,
		colors.Green),
	rule(ipv6Pattern, colors.BoldCyan),
	rule(ipv4Pattern, colors.Cyan),
	rule(`9[89]%|100%`, colors.BoldRed),
	rule(`9[0-7]%`, colors.Red),
	rule(`[78][0-9]%`, colors.Yellow),
	rule(`[1-6]?[0-9]%`, colors.Green),
	rule(`\s\d*[.,]?\dTi?|\b\d{10,12}\b`, colors.BoldRed),
	rule(`\s\d*[.,]?\dGi?|\b\d{7,9}\b`, colors.Red),
	rule(`\s\d*[.,]?\dMi?|\b\d{4,6}\b`, colors.Yellow),
	rule(`\s\d*[.,]?\dKi?|\b\d{1,3}\b`, colors.Green),
	rule(`\d*\.?\d+`, colors.BoldBlue),
}
