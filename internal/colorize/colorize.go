// Package colorize renders our color tag convention ([HEADING], [ERROR],
// [/RESET], ..) to ANSI escape codes.
package colorize

import (
	"fmt"
	"io"
	"regexp"

	"github.com/fatih/color"
)

var colorRx = regexp.MustCompile(`\[(HEADING|NOTICE|SUCCESS|ERROR|DISABLED|ACTIONABLE|CYAN|GREEN|RED|ORANGE|YELLOW|MAGENTA|/RESET)!?\]`)

var styles = map[string]*color.Color{
	"HEADING":    color.New(color.FgYellow, color.Bold),
	"NOTICE":     color.New(color.FgCyan),
	"SUCCESS":    color.New(color.FgGreen),
	"ERROR":      color.New(color.FgRed),
	"DISABLED":   color.New(color.FgHiBlack),
	"ACTIONABLE": color.New(color.FgCyan, color.Bold),
	"CYAN":       color.New(color.FgCyan),
	"GREEN":      color.New(color.FgGreen),
	"RED":        color.New(color.FgRed),
	"ORANGE":     color.New(color.FgHiYellow),
	"YELLOW":     color.New(color.FgYellow),
	"MAGENTA":    color.New(color.FgMagenta),
}

// Colorize writes the given text to the writer, turning color tags into ANSI
// escape sequences
func Colorize(value string, writer io.Writer) (int, error) {
	return writeColorized(value, writer, true)
}

// ColorizedOrStrip writes the given text to the writer, either colorizing or
// stripping the tags depending on the strip argument
func ColorizedOrStrip(value string, writer io.Writer, colorize bool) (int, error) {
	return writeColorized(value, writer, colorize)
}

// StripColorTags removes all color tags from the given text
func StripColorTags(value string) string {
	return colorRx.ReplaceAllString(value, "")
}

func writeColorized(value string, writer io.Writer, colorize bool) (int, error) {
	pos := 0
	total := 0
	for _, match := range colorRx.FindAllStringSubmatchIndex(value, -1) {
		start, end := match[0], match[1]
		n, err := writer.Write([]byte(value[pos:start]))
		total += n
		if err != nil {
			return total, err
		}

		if colorize {
			groupName := value[match[2]:match[3]]
			if err := writeStyle(writer, groupName); err != nil {
				return total, err
			}
		}

		pos = end
	}

	n, err := writer.Write([]byte(value[pos:]))
	return total + n, err
}

func writeStyle(writer io.Writer, groupName string) error {
	if groupName == "/RESET" {
		_, err := fmt.Fprint(writer, "\x1b[0m")
		return err
	}

	c, ok := styles[groupName]
	if !ok {
		return nil
	}

	// Set the style without printing any content; the reset tag closes it
	c.SetWriter(writer)
	return nil
}
