// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// Colorizer wraps an io.Writer. The first line of every write is passed
// through unchanged and any following lines are dimmed. Useful for output
// that leads with a summary and follows with detail.
type Colorizer struct {
	out io.Writer
	dim *color.Color
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out: out,
		dim: color.New(color.FgRed, color.Faint),
	}
}

func (c Colorizer) Write(p []byte) (int, error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")

	n, err := io.WriteString(c.out, l[0]+"\n")
	if err != nil || len(l) == 1 {
		return n, err
	}

	m, err := c.dim.Fprint(c.out, strings.Join(l[1:], "\n")+"\n")
	return n + m, err
}
