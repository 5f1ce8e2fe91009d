package utils

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawBanner(w io.Writer) {
	banner := figure.NewFigure("LOGTIME", "", true)
	fmt.Fprintln(w, text.FgHiCyan.Sprint(banner.String()))
	fmt.Fprintln(w, text.FgHiBlue.Sprint(" 42 intra logtime tracker"))
	fmt.Fprintln(w)
}
