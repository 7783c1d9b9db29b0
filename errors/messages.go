package errors

import (
	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
)

const width = 78

func renderTroubleshooting(troubleshooting string) string {
	return `

` + color.HiYellowString("TROUBLESHOOTING:") + `

` + wordwrap.WrapString(troubleshooting, width) + `

` + wordwrap.WrapString("If the suggestions do not help, re-run the command with "+color.HiGreenString("--debug")+" and attach the output when filing a bug.", width)
}
