package rectclip

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// ParseSVGPath parses SVG path data consisting of the M, L, H, V and Z commands (and their relative counterparts) into paths. Every M and every command following a Z starts a new path. A closing point that equals the first point of a path is removed.
func ParseSVGPath(s string) (Paths[float64], error) {
	path := []byte(s)
	var ps Paths[float64]
	var p Path[float64]
	flush := func() {
		if 0 < len(p) {
			ps = append(ps, p)
			p = nil
		}
	}

	var cmd byte
	x, y := 0.0, 0.0   // current position
	x0, y0 := 0.0, 0.0 // start of the current path
	i := skipCommaWhitespace(path)
	for i < len(path) {
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("bad path: path should start with command")
		} else if cmd == 'Z' || cmd == 'z' {
			return nil, fmt.Errorf("bad path: command should follow 'Z' at position %d", i)
		}

		var n int
		switch cmd {
		case 'M', 'm', 'L', 'l':
			var a, b float64
			var m int
			if a, n = parseNum(path[i:]); n != 0 {
				b, m = parseNum(path[i+n:])
			}
			if n == 0 || m == 0 {
				return nil, fmt.Errorf("bad path: 2 numbers should follow command '%c' at position %d", cmd, i)
			}
			n += m
			if cmd == 'm' || cmd == 'l' {
				a += x
				b += y
			}
			if cmd == 'M' || cmd == 'm' {
				flush()
				x0, y0 = a, b
				// subsequent coordinate pairs are implicit line commands
				if cmd == 'M' {
					cmd = 'L'
				} else {
					cmd = 'l'
				}
			} else if len(p) == 0 {
				p = append(p, Point[float64]{x, y})
			}
			x, y = a, b
			p = append(p, Point[float64]{x, y})
		case 'H', 'h', 'V', 'v':
			var a float64
			if a, n = parseNum(path[i:]); n == 0 {
				return nil, fmt.Errorf("bad path: 1 number should follow command '%c' at position %d", cmd, i)
			}
			switch cmd {
			case 'H':
				x = a
			case 'h':
				x += a
			case 'V':
				y = a
			case 'v':
				y += a
			}
			if len(p) == 0 {
				p = append(p, Point[float64]{x0, y0})
			}
			p = append(p, Point[float64]{x, y})
		case 'Z', 'z':
			if 1 < len(p) && p[len(p)-1] == p[0] {
				p = p[:len(p)-1]
			}
			flush()
			x, y = x0, y0
		default:
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i-1)
		}
		i += n
		i += skipCommaWhitespace(path[i:])
	}
	flush()
	return ps, nil
}

// MustParseSVGPath parses SVG path data and panics on error.
func MustParseSVGPath(s string) Paths[float64] {
	ps, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return ps
}

// ToSVG returns the path as SVG path data, closed with a Z command if closed is set.
func (p Path[T]) ToSVG(closed bool) string {
	if len(p) == 0 {
		return ""
	}
	sb := strings.Builder{}
	for i, pt := range p {
		if i == 0 {
			sb.WriteByte('M')
		} else {
			sb.WriteByte('L')
		}
		sb.WriteString(formatNum(pt.X))
		sb.WriteByte(' ')
		sb.WriteString(formatNum(pt.Y))
	}
	if closed {
		sb.WriteByte('z')
	}
	return sb.String()
}

// ToSVG returns all paths as SVG path data.
func (ps Paths[T]) ToSVG(closed bool) string {
	sb := strings.Builder{}
	for _, p := range ps {
		sb.WriteString(p.ToSVG(closed))
	}
	return sb.String()
}
